package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// Comparison is the verdict of weighing a sidecar lyric file against the
// lyrics embedded in an audio file's tags.
type Comparison int

const (
	ComparisonError Comparison = iota
	ComparisonEqual
	ComparisonSidecarIsSynced
	ComparisonEmbeddedIsSynced
	ComparisonInstrumental
)

func (c Comparison) String() string {
	switch c {
	case ComparisonEqual:
		return "equal"
	case ComparisonSidecarIsSynced:
		return "sidecar is synced"
	case ComparisonEmbeddedIsSynced:
		return "embedded is synced"
	case ComparisonInstrumental:
		return "instrumental"
	}
	return "error"
}

// compareLyrics classifies both texts and decides which side carries the
// better lyrics. When both are cleanly synced the embedded side wins ties.
func compareLyrics(sidecar, embedded string) Comparison {
	sidecarStatus := classifyLyric(sidecar)
	embeddedStatus := classifyLyric(embedded)

	switch {
	case sidecarStatus == StatusInstrumental || embeddedStatus == StatusInstrumental:
		return ComparisonInstrumental
	case sidecarStatus == StatusSynced && embeddedStatus == StatusSynced:
		if sidecar == embedded {
			return ComparisonEqual
		}
		return ComparisonEmbeddedIsSynced
	case sidecarStatus == StatusSynced:
		return ComparisonSidecarIsSynced
	case embeddedStatus == StatusSynced:
		return ComparisonEmbeddedIsSynced
	case sidecarStatus == embeddedStatus:
		return ComparisonEqual
	}
	return ComparisonError
}

// compareFile weighs an audio file's embedded lyrics against its sidecar.
// A missing sidecar reads as empty text, so a file with embedded synced
// lyrics and no sidecar still comes back as "embedded is synced".
func compareFile(rep *reporter, path string) (Comparison, error) {
	adapter := adapterFor(path, rep)
	if adapter == nil {
		return ComparisonError, fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
	}
	fields, err := adapter.readLyrics(path)
	if err != nil {
		return ComparisonError, fmt.Errorf("error reading lyrics from %s: %v", path, err)
	}
	embedded := fields.Synced
	if embedded == "" {
		embedded = fields.Unsynced
	}

	var sidecar string
	if source := findSidecar(path); source != "" {
		content, err := os.ReadFile(source)
		if err != nil {
			return ComparisonError, fmt.Errorf("error reading %s: %v", source, err)
		}
		sidecar = string(content)
	}
	return compareLyrics(sidecar, embedded), nil
}
