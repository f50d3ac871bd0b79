package log

import "pkt.systems/psfmt"

// Noop returns a Logger that discards everything.
func Noop() Logger { return noopLogger{} }

type noopLogger struct{}

func (noopLogger) Message(psfmt.Lit, ...psfmt.Arg)             {}
func (noopLogger) Trace(psfmt.Lit, ...psfmt.Arg)               {}
func (noopLogger) Debug(psfmt.Lit, ...psfmt.Arg)               {}
func (noopLogger) Info(psfmt.Lit, ...psfmt.Arg)                {}
func (noopLogger) Warn(psfmt.Lit, ...psfmt.Arg)                {}
func (noopLogger) Error(psfmt.Lit, ...psfmt.Arg)               {}
func (noopLogger) Fatal(psfmt.Lit, ...psfmt.Arg)               {}
func (noopLogger) Log(Level, psfmt.Lit, ...psfmt.Arg)          {}
func (noopLogger) Dump(Level, psfmt.Lit, []byte, ...psfmt.Arg) {}
func (noopLogger) MessageDump(psfmt.Lit, []byte, ...psfmt.Arg) {}
func (noopLogger) TraceDump(psfmt.Lit, []byte, ...psfmt.Arg)   {}
func (noopLogger) DebugDump(psfmt.Lit, []byte, ...psfmt.Arg)   {}
func (noopLogger) InfoDump(psfmt.Lit, []byte, ...psfmt.Arg)    {}
func (noopLogger) WarnDump(psfmt.Lit, []byte, ...psfmt.Arg)    {}
func (noopLogger) ErrorDump(psfmt.Lit, []byte, ...psfmt.Arg)   {}
func (noopLogger) FatalDump(psfmt.Lit, []byte, ...psfmt.Arg)   {}
func (n noopLogger) LogLevel(Level) Logger                     { return n }
func (n noopLogger) LogLevelFromEnv(string) Logger             { return n }
