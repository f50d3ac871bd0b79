package psfmt_test

import (
	"bytes"
	"testing"

	"pkt.systems/psfmt"
)

func TestRenderDumpGroups(t *testing.T) {
	var buf bytes.Buffer
	f := psfmt.MustParse("frame len=%u:")
	data := []byte{0x00, 0xAB, 0x7F, 0x10}
	n, err := f.RenderDump(&buf, data, psfmt.Uint(uint(len(data))))
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	want := "frame len=4: 00 AB 7F 10\r\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
	if n != len(want) {
		t.Fatalf("reported %d bytes, want %d", n, len(want))
	}
}

func TestRenderDumpNilFailsFast(t *testing.T) {
	f := psfmt.MustParse("never emitted")
	sink := &recordingWriter{}
	n, err := f.RenderDump(sink, nil)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 bytes for nil data, got %d", n)
	}
	if sink.writes != 0 {
		t.Fatalf("sink must not be invoked for nil data")
	}
}

func TestRenderDumpEmptyData(t *testing.T) {
	var buf bytes.Buffer
	f := psfmt.MustParse("empty:")
	n, err := f.RenderDump(&buf, []byte{})
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if buf.String() != "empty:\r\n" {
		t.Fatalf("got %q", buf.String())
	}
	if n != buf.Len() {
		t.Fatalf("reported %d bytes, sink saw %d", n, buf.Len())
	}
}

func TestRenderDumpSingleWrite(t *testing.T) {
	sink := &recordingWriter{}
	f := psfmt.MustParse("hdr %X:")
	if _, err := f.RenderDump(sink, []byte{1, 2, 3}, psfmt.Uint8(0xFF)); err != nil {
		t.Fatalf("dump: %v", err)
	}
	if sink.writes != 1 {
		t.Fatalf("expected a single sink write, got %d", sink.writes)
	}
	if string(sink.bytes) != "hdr 0xFF: 01 02 03\r\n" {
		t.Fatalf("got %q", sink.bytes)
	}
}

func TestRenderDumpValidatesBeforeWriting(t *testing.T) {
	sink := &recordingWriter{}
	f := psfmt.MustParse("len=%u:")
	n, err := f.RenderDump(sink, []byte{1}, psfmt.Int(1))
	if err == nil {
		t.Fatalf("expected type error")
	}
	if n != 0 || sink.writes != 0 {
		t.Fatalf("rejection must not touch the sink (n=%d writes=%d)", n, sink.writes)
	}
}
