// Package ansi provides the ANSI escape sequences and palette helpers used
// by psfmt's log wrapper to highlight severities. The exported strings can
// be overridden or swapped via SetPalette so hosts can restyle log output
// without touching the render path.
package ansi

import "sync"

// Reset is the ANSI escape code that clears all terminal styling; the
// remaining constants expose the color sequences the default palettes use.
const (
	Reset        = "\x1b[0m"
	Bold         = "\x1b[1m"
	Faint        = "\x1b[90m"
	Red          = "\x1b[31m"
	Green        = "\x1b[32m"
	Yellow       = "\x1b[33m"
	Blue         = "\x1b[34m"
	Magenta      = "\x1b[35m"
	Cyan         = "\x1b[36m"
	BrightRed    = "\x1b[1;31m"
	BrightYellow = "\x1b[1;33m"
	BrightCyan   = "\x1b[1;36m"
)

// Semantic variables describing how the log wrapper colors each severity.
// Empty means "no highlighting for this level".
var (
	Trace   = ""
	Debug   = ""
	Info    = ""
	Warn    = Yellow
	Error   = Red
	Fatal   = Cyan
	Message = ""
)

var paletteMu sync.RWMutex

// Palette is the input type to SetPalette; see the Palette* variables for
// ready-made schemes. Empty fields keep the current value.
type Palette struct {
	Trace   string
	Debug   string
	Info    string
	Warn    string
	Error   string
	Fatal   string
	Message string
}

// PaletteDefault mirrors the package defaults: warnings yellow, errors red,
// fatals cyan, everything else unstyled.
var PaletteDefault = Palette{
	Trace:   None,
	Debug:   None,
	Info:    None,
	Warn:    Yellow,
	Error:   Red,
	Fatal:   Cyan,
	Message: None,
}

// PaletteBright styles every severity, using bold variants for the loud
// ones.
var PaletteBright = Palette{
	Trace:   Faint,
	Debug:   Blue,
	Info:    Green,
	Warn:    BrightYellow,
	Error:   BrightRed,
	Fatal:   BrightCyan,
	Message: Bold,
}

// PaletteMono disables all highlighting.
var PaletteMono = Palette{
	Trace:   None,
	Debug:   None,
	Info:    None,
	Warn:    None,
	Error:   None,
	Fatal:   None,
	Message: None,
}

// None is a non-empty sentinel so palettes can express "explicitly no
// color" while an empty Palette field still means "keep the current value".
const None = "\x00"

// SetPalette sets the package-level color variables.
//
//	ansi.SetPalette(ansi.PaletteBright)
//	// Reset to default
//	ansi.SetPalette(ansi.PaletteDefault)
func SetPalette(palette Palette) {
	paletteMu.Lock()
	defer paletteMu.Unlock()

	Trace = pick(palette.Trace, Trace)
	Debug = pick(palette.Debug, Debug)
	Info = pick(palette.Info, Info)
	Warn = pick(palette.Warn, Warn)
	Error = pick(palette.Error, Error)
	Fatal = pick(palette.Fatal, Fatal)
	Message = pick(palette.Message, Message)
}

// Snapshot returns the current palette values.
//
// Typical usage in tests:
//
//	snap := ansi.Snapshot()
//	defer ansi.SetPalette(snap)
//	ansi.SetPalette(ansi.PaletteBright)
//	// run assertions...
func Snapshot() Palette {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return snapshotLocked()
}

// snapshotLocked encodes "no color" as the none sentinel so feeding a
// snapshot back into SetPalette restores unstyled levels too.
func snapshotLocked() Palette {
	return Palette{
		Trace:   enc(Trace),
		Debug:   enc(Debug),
		Info:    enc(Info),
		Warn:    enc(Warn),
		Error:   enc(Error),
		Fatal:   enc(Fatal),
		Message: enc(Message),
	}
}

func enc(value string) string {
	if value == "" {
		return None
	}
	return value
}

func pick(value, fallback string) string {
	switch value {
	case "":
		return fallback
	case None:
		return ""
	default:
		return value
	}
}
