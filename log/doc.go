// Package log layers tick-stamped, leveled, optionally colorized logging
// over the psfmt rendering engine. Each line renders as
//
//	[seconds.mmm] LEVEL component: <formatted literal>\r\n
//
// with the tick supplied by a Clock (milliseconds since an epoch the host
// defines) and highlighted per severity when the sink is a terminal.
//
//	logger := log.NewComponent(os.Stderr, "UART")
//	logger.Info("link up after %t, speed %u kbps", psfmt.Millis(elapsed), psfmt.Uint32(speed))
//	logger.Dump(log.DebugLevel, "rx frame len=%u:", frame, psfmt.Uint(uint(len(frame))))
//
// Line formats are composed and parsed once per (level, literal) pair;
// afterwards every emission is a bounded render into a pooled buffer and a
// single write to the sink. Misused literals or arguments never corrupt
// output: the offending entry is replaced by a !BADFMT diagnostic line
// naming the error.
package log
