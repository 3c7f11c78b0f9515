// Package manifest defines the fixed set of icon outputs.
package manifest

import "fmt"

// Entry pairs a square pixel size with the file name it is written under.
type Entry struct {
	Size int
	Name string
}

func (e Entry) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("manifest entry: empty file name")
	}
	if e.Size <= 0 {
		return fmt.Errorf("manifest entry %q: size must be positive, got %d", e.Name, e.Size)
	}
	return nil
}

// Default returns the app icon set: the iPhone/iPad home-screen sizes plus
// the 1024px App Store master. Every entry produces exactly one output file.
func Default() []Entry {
	return []Entry{
		{Size: 120, Name: "Icon-120.png"},
		{Size: 180, Name: "Icon-180.png"},
		{Size: 152, Name: "Icon-152.png"},
		{Size: 1024, Name: "AppIcon.png"},
	}
}
