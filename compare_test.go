package main

import (
	"path/filepath"
	"testing"
)

func TestCompareLyrics(t *testing.T) {
	synced := "[00:00.00]A\n[00:01.00]B"
	syncedOther := "[00:00.00]A\n[00:02.00]C"
	unsynced := "A\nB"
	instrumental := "[au:instrumental]\n[00:01.00]La la"
	withMetadata := "[ar:Someone]\n[00:00.00]A"

	tests := []struct {
		name     string
		sidecar  string
		embedded string
		want     Comparison
	}{
		{"sidecar synced, embedded unsynced", synced, unsynced, ComparisonSidecarIsSynced},
		{"embedded synced, sidecar unsynced", unsynced, synced, ComparisonEmbeddedIsSynced},
		{"both synced and equal", synced, synced, ComparisonEqual},
		{"both synced, embedded wins ties", synced, syncedOther, ComparisonEmbeddedIsSynced},
		{"both unsynced", unsynced, "C\nD", ComparisonEqual},
		{"instrumental sidecar", instrumental, synced, ComparisonInstrumental},
		{"instrumental embedded", unsynced, instrumental, ComparisonInstrumental},
		{"both with metadata", withMetadata, withMetadata, ComparisonEqual},
		{"metadata vs unsynced", withMetadata, unsynced, ComparisonError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareLyrics(tt.sidecar, tt.embedded); got != tt.want {
				t.Errorf("compareLyrics = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompareFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.mp3")
	writeTestFile(t, path, emptyID3v24Header)

	rep := testReporter()
	if err := (id3Adapter{rep: rep}).writeLyrics(path, "[00:00.000]A\n[00:01.000]B\n[00:00.000]"); err != nil {
		t.Fatalf("writeLyrics: %v", err)
	}

	verdict, err := compareFile(rep, path)
	if err != nil {
		t.Fatalf("compareFile: %v", err)
	}
	if verdict != ComparisonEmbeddedIsSynced {
		t.Errorf("verdict with no sidecar = %v, want %v", verdict, ComparisonEmbeddedIsSynced)
	}

	writeTestFile(t, filepath.Join(dir, "song.lrc"), []byte("[00:00.000]A\n[00:01.000]B\n[00:00.000]"))
	verdict, err = compareFile(rep, path)
	if err != nil {
		t.Fatalf("compareFile: %v", err)
	}
	if verdict != ComparisonEqual {
		t.Errorf("verdict with identical sidecar = %v, want %v", verdict, ComparisonEqual)
	}
}

func TestCompareFileUnsupported(t *testing.T) {
	if _, err := compareFile(testReporter(), "song.ogg"); err == nil {
		t.Fatal("compareFile accepted an unsupported extension")
	}
}
