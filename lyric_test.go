package main

import (
	"strings"
	"testing"
)

func TestClassifyLyric(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want SyncStatus
	}{
		{"empty", "", StatusUnsynced},
		{"plain text", "Hello\nWorld", StatusUnsynced},
		{"metadata without timestamps", "[ar:Someone]\nHello", StatusUnsynced},
		{"clean synced", "[00:00.00]Hello\n[00:02.50]World", StatusSynced},
		{"timestamps are not metadata", "[00:01.00]La la", StatusSynced},
		{"instrumental", "[au:instrumental]\n[00:01.00]La la", StatusInstrumental},
		{"instrumental with space", "[au: instrumental]\n[00:01.00]La la", StatusInstrumental},
		{"artist tag", "[ar:Someone]\n[00:00.00]Hello\n[00:02.50]World", StatusSyncedWithMetadata},
		{"offset tag", "[ti:Song]\n[al:Album]\n[00:00.00]Hello", StatusSyncedWithMetadata},
		{"netease credit line", "[00:00.00]作曲 : Someone\n[00:01.00]Hello", StatusSyncedWithMetadata},
		{"credit line full-width colon", "[00:00.00]编曲：Someone\n[00:01.00]Hello", StatusSyncedWithMetadata},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyLyric(tt.in); got != tt.want {
				t.Errorf("classifyLyric(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDeconstructLyric(t *testing.T) {
	content := "[00:12.00]Hello\nno timestamp here\n[00:15.30]World\n\n[bad:line"
	lines := deconstructLyric(content)
	if len(lines) != 2 {
		t.Fatalf("deconstructLyric returned %d lines, want 2: %+v", len(lines), lines)
	}
	if lines[0].Text != "Hello" || lines[0].Timing.ToMilliseconds() != 12000 {
		t.Errorf("first line = %+v", lines[0])
	}
	if lines[1].Text != "World" || lines[1].Timing.ToMilliseconds() != 15300 {
		t.Errorf("second line = %+v", lines[1])
	}
}

func TestDeconstructLyricCRLF(t *testing.T) {
	lines := deconstructLyric("[00:01.00]A\r\n[00:02.00]B\r\n")
	if len(lines) != 2 {
		t.Fatalf("deconstructLyric returned %d lines, want 2", len(lines))
	}
	if lines[0].Text != "A" || lines[1].Text != "B" {
		t.Errorf("lines = %+v", lines)
	}
}

func TestConstructLyric(t *testing.T) {
	lines := []LyricLine{
		{Timing: Timing{Seconds: 1}, Text: "A"},
		{Timing: Timing{Seconds: 2, Milliseconds: 500}, Text: "B"},
	}
	got := constructLyric(lines, "\n")
	want := "[00:01.000]A\n[00:02.500]B"
	if got != want {
		t.Errorf("constructLyric = %q, want %q", got, want)
	}

	if got := constructLyric(lines, "\r\n"); !strings.Contains(got, "\r\n") {
		t.Errorf("constructLyric with CRLF terminator = %q", got)
	}
}

func TestConstructDeconstructStable(t *testing.T) {
	content := "[00:00.00]Hello\n[00:02.50]World\n[00:04.00]Again"
	once := constructLyric(deconstructLyric(content), "\n")
	twice := constructLyric(deconstructLyric(once), "\n")
	if once != twice {
		t.Errorf("reconstruction is not stable: %q vs %q", once, twice)
	}
	if classifyLyric(once) != StatusSynced {
		t.Errorf("reconstructed document classified as %v", classifyLyric(once))
	}
	if len(deconstructLyric(once)) != 3 {
		t.Errorf("reconstructed document has %d lines", len(deconstructLyric(once)))
	}
}

func TestMetadataTags(t *testing.T) {
	tags := metadataTags("[ar:Someone]\n[00:01.00]Hello\n[ti:A Song]")
	if len(tags) != 2 {
		t.Fatalf("metadataTags returned %d tags, want 2: %+v", len(tags), tags)
	}
	if tags[0] != [2]string{"ar", "Someone"} || tags[1] != [2]string{"ti", "A Song"} {
		t.Errorf("tags = %+v", tags)
	}
}
