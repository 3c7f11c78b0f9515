// Package app runs the icon batch: one canvas, one file per manifest entry.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cursorconnector/iconsmith/internal/manifest"
	"github.com/cursorconnector/iconsmith/internal/render"
)

const linkQRName = "Link-QR.png"

type App struct {
	Manifest []manifest.Entry
	OutDir   string
	Label    bool   // stamp the pixel size onto each icon
	QRURL    string // when set, also write a link QR asset
	Preview  bool   // blit the master icon to the framebuffer after writing
	Logger   Logger
	Out      io.Writer // confirmation lines; defaults to os.Stdout
}

func New(entries []manifest.Entry, outDir string) *App {
	return &App{Manifest: entries, OutDir: outDir, Logger: NoopLogger{}, Out: os.Stdout}
}

// Run renders and writes every manifest entry in order, printing one
// confirmation line per file. The first error aborts the run: files already
// written stay on disk and later entries are not attempted. Existing files
// are overwritten without warning.
func (app *App) Run(ctx context.Context) error {
	for _, entry := range app.Manifest {
		if err := entry.Validate(); err != nil {
			return err
		}
	}

	var master *render.Canvas
	for _, entry := range app.Manifest {
		if err := ctx.Err(); err != nil {
			return err
		}
		canvas, err := render.NewCanvas(entry.Size)
		if err != nil {
			return err
		}
		canvas.DrawCursor()
		if app.Label {
			if err := canvas.DrawLabel(strconv.Itoa(entry.Size)); err != nil {
				return err
			}
		}
		path := filepath.Join(app.OutDir, entry.Name)
		if err := canvas.WriteFile(path); err != nil {
			app.Logger.Errorf("app", "write %s: %v", entry.Name, err)
			return err
		}
		app.Logger.Infof("app", "rendered %s at %dpx", entry.Name, entry.Size)
		fmt.Fprintf(app.Out, "Wrote %s\n", entry.Name)
		if master == nil || entry.Size > master.Size() {
			master = canvas
		}
	}

	if app.QRURL != "" {
		qr, err := render.NewLinkQR(app.QRURL, 0)
		if err != nil {
			return err
		}
		if err := qr.WriteFile(filepath.Join(app.OutDir, linkQRName)); err != nil {
			app.Logger.Errorf("app", "write %s: %v", linkQRName, err)
			return err
		}
		fmt.Fprintf(app.Out, "Wrote %s\n", linkQRName)
	}

	// Preview is a proofing aid; a headless box without /dev/fb0 should not
	// fail the batch.
	if app.Preview && master != nil {
		if err := render.PreviewFramebuffer(master.Image()); err != nil {
			app.Logger.Errorf("fb", "preview failed: %v", err)
		} else {
			app.Logger.Infof("fb", "previewed %dpx master", master.Size())
		}
	}
	return nil
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
