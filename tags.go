package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// lyricFields is what a container's tags hold: the unsynced free-text lyric
// and, where the container has one, the synced lyric reconstructed as LRC
// text. HasLyricFrames is set when low-level lyric markers were present even
// if they produced no text, so an adapter bug surfaces instead of reading as
// "no lyrics".
type lyricFields struct {
	Unsynced       string
	Synced         string
	HasLyricFrames bool
}

type tagAdapter interface {
	readLyrics(path string) (lyricFields, error)
	writeLyrics(path string, lyrics string) error
}

// adapterFor is the single dispatch point from file extension to container
// variant. It returns nil for unsupported extensions.
func adapterFor(path string, rep *reporter) tagAdapter {
	switch {
	case hasExt(path, mp3Exts):
		return id3Adapter{rep: rep}
	case hasExt(path, mp4Exts):
		return mp4Adapter{}
	case hasExt(path, flacExts):
		return flacAdapter{}
	}
	return nil
}

// findSidecar returns the existing lyric file next to the audio file, .lrc
// preferred over .txt, or "" when neither exists.
func findSidecar(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	for _, ext := range lyricExts {
		if fileExists(base + ext) {
			return base + ext
		}
	}
	return ""
}

func sidecarTarget(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".lrc"
}

// exportTargetBlocked reports whether the existing sidecar content blocks an
// export, and why. A sidecar that is already cleanly time-synced is never
// overwritten, not even with --overwrite: the embedded copy cannot be better.
func exportTargetBlocked(content string, overwrite bool) (string, bool) {
	if classifyLyric(content) == StatusSynced {
		return "sidecar is already time-synced, refusing to avoid data loss", true
	}
	if !overwrite {
		return "sidecar already exists", true
	}
	return "", false
}

// exportLyrics writes the lyrics embedded in the audio file's tags to a
// sidecar lyric file. It returns true when a sidecar was written; refusals
// are reported and return false with no error.
func exportLyrics(rep *reporter, path string, opts runOptions) (bool, error) {
	adapter := adapterFor(path, rep)
	if adapter == nil {
		return false, fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
	}

	fields, err := adapter.readLyrics(path)
	if err != nil {
		return false, fmt.Errorf("error reading lyrics from %s: %v", path, err)
	}
	embedded := fields.Synced
	if embedded == "" {
		embedded = fields.Unsynced
	}
	if embedded == "" {
		rep.Warnf("export: no lyrics found in %s", path)
		if fields.HasLyricFrames {
			rep.Errorf("export: %s has lyric frames that produced no text, this looks like a reader bug, please report it", path)
		}
		return false, nil
	}

	target := findSidecar(path)
	if target == "" {
		target = sidecarTarget(path)
	} else if content, err := os.ReadFile(target); err == nil {
		if reason, blocked := exportTargetBlocked(string(content), opts.Overwrite); blocked {
			rep.Warnf("export: %s: %s", target, reason)
			return false, nil
		}
	}

	fixed := fixLyric(embedded, fixOptions{CRLF: opts.CRLF})
	if err := writeFileAtomic(target, []byte(fixed)); err != nil {
		return false, fmt.Errorf("error writing %s: %v", target, err)
	}
	rep.Successf("export: wrote %s", target)
	return true, nil
}

// importLyrics reads the sidecar lyric file next to the audio file,
// normalizes it and embeds it in the file's tags. MP3-style containers get
// both a USLT and, when the text is synced, a SYLT frame; MP4 and FLAC get
// their single lyric field overwritten.
func importLyrics(rep *reporter, path string, opts runOptions) (bool, error) {
	adapter := adapterFor(path, rep)
	if adapter == nil {
		return false, fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
	}

	source := findSidecar(path)
	if source == "" {
		rep.Warnf("import: no lyrics file found for %s", path)
		return false, nil
	}
	content, err := os.ReadFile(source)
	if err != nil {
		return false, fmt.Errorf("error reading %s: %v", source, err)
	}

	fixed := fixLyric(string(content), fixOptions{
		CRLF:             opts.CRLF,
		RemoveTimestamps: opts.ITunes,
	})
	if err := adapter.writeLyrics(path, fixed); err != nil {
		return false, fmt.Errorf("error embedding lyrics in %s: %v", path, err)
	}
	rep.Successf("import: embedded lyrics from %s", source)
	return true, nil
}
