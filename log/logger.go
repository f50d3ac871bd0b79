package log

import (
	"io"
	"sync"

	"pkt.systems/psfmt"
	"pkt.systems/psfmt/ansi"
)

// Logger is the leveled wrapper over the psfmt engine. Every entry renders
// as
//
//	[seconds.mmm] LEVEL component: <literal with args>\r\n
//
// where the tick comes from the logger's Clock through the %t specifier.
// Line formats are composed and parsed once per (level, literal) pair and
// memoized, so steady-state logging re-renders previously discovered
// specifier positions without rescanning anything.
type Logger interface {
	// Message logs lit unconditionally, ignoring the minimum level.
	Message(lit psfmt.Lit, args ...psfmt.Arg)
	// Trace logs lit at TraceLevel.
	Trace(lit psfmt.Lit, args ...psfmt.Arg)
	// Debug logs lit at DebugLevel.
	Debug(lit psfmt.Lit, args ...psfmt.Arg)
	// Info logs lit at InfoLevel.
	Info(lit psfmt.Lit, args ...psfmt.Arg)
	// Warn logs lit at WarnLevel.
	Warn(lit psfmt.Lit, args ...psfmt.Arg)
	// Error logs lit at ErrorLevel.
	Error(lit psfmt.Lit, args ...psfmt.Arg)
	// Fatal logs lit at FatalLevel. It does not terminate the process;
	// embedded hosts decide what a fatal condition means.
	Fatal(lit psfmt.Lit, args ...psfmt.Arg)

	// Log emits lit at the supplied level, subject to level filtering.
	Log(level Level, lit psfmt.Lit, args ...psfmt.Arg)

	// Dump emits lit at the supplied level followed by a hex dump of data,
	// one " XX" group per byte. A nil data slice emits nothing.
	Dump(level Level, lit psfmt.Lit, data []byte, args ...psfmt.Arg)

	// Per-level dump variants; MessageDump ignores the minimum level like
	// Message does.
	MessageDump(lit psfmt.Lit, data []byte, args ...psfmt.Arg)
	TraceDump(lit psfmt.Lit, data []byte, args ...psfmt.Arg)
	DebugDump(lit psfmt.Lit, data []byte, args ...psfmt.Arg)
	InfoDump(lit psfmt.Lit, data []byte, args ...psfmt.Arg)
	WarnDump(lit psfmt.Lit, data []byte, args ...psfmt.Arg)
	ErrorDump(lit psfmt.Lit, data []byte, args ...psfmt.Arg)
	FatalDump(lit psfmt.Lit, data []byte, args ...psfmt.Arg)

	// LogLevel returns a logger derived from the receiver whose minimum
	// level is set to level. The receiver itself is not modified.
	LogLevel(level Level) Logger

	// LogLevelFromEnv configures the logger's level from the value of key
	// in the environment. Recognised values are the same as ParseLevel;
	// missing or invalid values leave the logger unchanged.
	LogLevelFromEnv(key string) Logger
}

// Options controls construction of a Logger.
type Options struct {
	// Component tags every line; rendered between the level label and the
	// colon.
	Component psfmt.Lit

	// MinLevel sets the minimum level the logger emits. Defaults to
	// AllLevel.
	MinLevel Level

	// NoColor forces highlighting off regardless of terminal detection.
	NoColor bool

	// ForceColor bypasses terminal detection and highlights even when the
	// sink is not a TTY. Useful for tests and forced-color logs.
	ForceColor bool

	// Palette overrides the level colors. When nil, the logger snapshots
	// the ansi package's current palette.
	Palette *ansi.Palette

	// Clock supplies the %t tick on every line. Defaults to a monotonic
	// clock counting from construction.
	Clock Clock
}

// New constructs a Logger writing to w with default options: every level
// enabled, highlighting on when w is a terminal.
func New(w io.Writer) Logger {
	return NewWithOptions(w, Options{})
}

// NewComponent constructs a Logger tagged with a component literal.
func NewComponent(w io.Writer, component psfmt.Lit) Logger {
	return NewWithOptions(w, Options{Component: component})
}

// NewWithOptions builds a Logger with explicit settings.
func NewWithOptions(w io.Writer, opts Options) Logger {
	if w == nil {
		w = io.Discard
	}
	l := &logger{
		w:       w,
		min:     opts.MinLevel,
		comp:    opts.Component,
		clock:   opts.Clock,
		formats: new(sync.Map),
	}
	if l.clock == nil {
		l.clock = NewClock()
	}
	if !opts.NoColor && (opts.ForceColor || isTerminal(w)) {
		palette := ansi.Snapshot()
		if opts.Palette != nil {
			palette = *opts.Palette
		}
		l.colors = levelColors(palette)
		l.colored = true
	}
	return l
}

type logger struct {
	w       io.Writer
	min     Level
	comp    psfmt.Lit
	clock   Clock
	colors  [NoneLevel + 1]string
	colored bool
	formats *sync.Map // formatKey -> lineEntry
}

type formatKey struct {
	level Level
	dump  bool
	lit   psfmt.Lit
}

type lineEntry struct {
	f     *psfmt.Format
	err   error
	color bool
}

func levelColors(p ansi.Palette) [NoneLevel + 1]string {
	var colors [NoneLevel + 1]string
	colors[AllLevel] = colorValue(p.Message)
	colors[TraceLevel] = colorValue(p.Trace)
	colors[DebugLevel] = colorValue(p.Debug)
	colors[InfoLevel] = colorValue(p.Info)
	colors[WarnLevel] = colorValue(p.Warn)
	colors[ErrorLevel] = colorValue(p.Error)
	colors[FatalLevel] = colorValue(p.Fatal)
	return colors
}

func colorValue(v string) string {
	if v == ansi.None {
		return ""
	}
	return v
}

func (l *logger) Message(lit psfmt.Lit, args ...psfmt.Arg) { l.emit(AllLevel, lit, args) }

func (l *logger) Trace(lit psfmt.Lit, args ...psfmt.Arg) {
	if l.shouldLog(TraceLevel) {
		l.emit(TraceLevel, lit, args)
	}
}

func (l *logger) Debug(lit psfmt.Lit, args ...psfmt.Arg) {
	if l.shouldLog(DebugLevel) {
		l.emit(DebugLevel, lit, args)
	}
}

func (l *logger) Info(lit psfmt.Lit, args ...psfmt.Arg) {
	if l.shouldLog(InfoLevel) {
		l.emit(InfoLevel, lit, args)
	}
}

func (l *logger) Warn(lit psfmt.Lit, args ...psfmt.Arg) {
	if l.shouldLog(WarnLevel) {
		l.emit(WarnLevel, lit, args)
	}
}

func (l *logger) Error(lit psfmt.Lit, args ...psfmt.Arg) {
	if l.shouldLog(ErrorLevel) {
		l.emit(ErrorLevel, lit, args)
	}
}

func (l *logger) Fatal(lit psfmt.Lit, args ...psfmt.Arg) {
	if l.shouldLog(FatalLevel) {
		l.emit(FatalLevel, lit, args)
	}
}

func (l *logger) Log(level Level, lit psfmt.Lit, args ...psfmt.Arg) {
	if level == AllLevel {
		l.emit(AllLevel, lit, args)
		return
	}
	if l.shouldLog(level) {
		l.emit(level, lit, args)
	}
}

func (l *logger) Dump(level Level, lit psfmt.Lit, data []byte, args ...psfmt.Arg) {
	if level != AllLevel && !l.shouldLog(level) {
		return
	}
	entry := l.line(level, lit, true)
	if entry.err != nil {
		l.reportBadFormat(entry.err)
		return
	}
	n, err := entry.f.RenderDump(l.w, data, l.withTick(args)...)
	if err != nil {
		l.reportBadFormat(err)
		return
	}
	// The dump literal carries the level color but no trailing reset; the
	// reset follows the dump's own line terminator.
	if entry.color && n > 0 {
		_, _ = io.WriteString(l.w, ansi.Reset)
	}
}

func (l *logger) MessageDump(lit psfmt.Lit, data []byte, args ...psfmt.Arg) {
	l.Dump(AllLevel, lit, data, args...)
}

func (l *logger) TraceDump(lit psfmt.Lit, data []byte, args ...psfmt.Arg) {
	l.Dump(TraceLevel, lit, data, args...)
}

func (l *logger) DebugDump(lit psfmt.Lit, data []byte, args ...psfmt.Arg) {
	l.Dump(DebugLevel, lit, data, args...)
}

func (l *logger) InfoDump(lit psfmt.Lit, data []byte, args ...psfmt.Arg) {
	l.Dump(InfoLevel, lit, data, args...)
}

func (l *logger) WarnDump(lit psfmt.Lit, data []byte, args ...psfmt.Arg) {
	l.Dump(WarnLevel, lit, data, args...)
}

func (l *logger) ErrorDump(lit psfmt.Lit, data []byte, args ...psfmt.Arg) {
	l.Dump(ErrorLevel, lit, data, args...)
}

func (l *logger) FatalDump(lit psfmt.Lit, data []byte, args ...psfmt.Arg) {
	l.Dump(FatalLevel, lit, data, args...)
}

func (l *logger) LogLevel(level Level) Logger {
	clone := *l
	clone.min = level
	return &clone
}

func (l *logger) LogLevelFromEnv(key string) Logger {
	if level, ok := LevelFromEnv(key); ok {
		return l.LogLevel(level)
	}
	return l
}

func (l *logger) shouldLog(level Level) bool {
	return level != NoneLevel && level >= l.min
}

func (l *logger) emit(level Level, lit psfmt.Lit, args []psfmt.Arg) {
	entry := l.line(level, lit, false)
	if entry.err != nil {
		l.reportBadFormat(entry.err)
		return
	}
	if _, err := entry.f.Render(l.w, l.withTick(args)...); err != nil {
		l.reportBadFormat(err)
	}
}

func (l *logger) withTick(args []psfmt.Arg) []psfmt.Arg {
	all := make([]psfmt.Arg, 0, len(args)+1)
	all = append(all, psfmt.Uint64(l.clock.Tick()))
	return append(all, args...)
}

// line returns the composed, parsed format for one (level, literal) pair,
// building it on first use. Dump lines leave out the trailing reset and
// terminator because RenderDump appends its own.
func (l *logger) line(level Level, lit psfmt.Lit, dump bool) lineEntry {
	key := formatKey{level: level, dump: dump, lit: lit}
	if v, ok := l.formats.Load(key); ok {
		return v.(lineEntry)
	}

	color := ""
	if l.colored && int(level) < len(l.colors) {
		color = l.colors[level]
	}
	composed := psfmt.Lit(color) + "[%t] " + psfmt.Lit(level.label()) + " " + l.comp + ": " + lit
	if !dump {
		if color != "" {
			composed += ansi.Reset
		}
		composed += "\r\n"
	}

	f, err := psfmt.Parse(composed)
	entry := lineEntry{f: f, err: err, color: color != ""}
	v, _ := l.formats.LoadOrStore(key, entry)
	return v.(lineEntry)
}

// reportBadFormat surfaces argument or literal misuse without making the
// logging methods fallible: one diagnostic line naming the error. Misuse is
// a programming bug, so staying loud beats staying quiet.
func (l *logger) reportBadFormat(err error) {
	_, _ = io.WriteString(l.w, "!BADFMT "+err.Error()+lineEnd)
}

const lineEnd = "\r\n"
