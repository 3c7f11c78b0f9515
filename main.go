// iconsmith generates the CursorConnector app icon set: a minimal white
// cursor arrow on a black canvas, written as PNG at each required size.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cursorconnector/iconsmith/internal/app"
	"github.com/cursorconnector/iconsmith/internal/manifest"
)

func main() {
	outDir := flag.String("out", ".", "directory the icon files are written into")
	label := flag.Bool("label", false, "stamp the pixel size onto each icon (proofing builds)")
	qrURL := flag.String("qr-url", "", "also write Link-QR.png carrying this URL")
	preview := flag.Bool("preview", false, "blit the master icon to /dev/fb0 after writing")
	debug := flag.Bool("debug", false, "enable debug logging to ./iconsmith-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via ICONSMITH_STDIO_LOG")
	flag.Parse()

	// Best-effort: redirect all stdout/stderr output (including panic stack
	// traces) to a file so failures on headless devices are diagnosable.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("ICONSMITH_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./iconsmith-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	a := app.New(manifest.Default(), *outDir)
	a.Logger = logger
	a.Label = *label
	a.QRURL = *qrURL
	a.Preview = *preview

	if err := a.Run(context.Background()); err != nil {
		fmt.Println("icon generation error:", err)
		os.Exit(1)
	}
}
