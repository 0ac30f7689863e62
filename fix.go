package main

import (
	"regexp"
	"strings"
)

type fixOptions struct {
	// RemoveTimestamps strips cue brackets from synced lyrics, for players
	// (notably iTunes) that reject time-synced tags.
	RemoveTimestamps bool
	// CRLF joins the result with \r\n instead of \n.
	CRLF bool
}

func (o fixOptions) eol() string {
	if o.CRLF {
		return "\r\n"
	}
	return "\n"
}

// Leading "word||" artifact left behind by MP3Tag exports.
var mp3tagArtifactPattern = regexp.MustCompile(`^(?:\w+)?\|\|`)

var blankRunPattern = regexp.MustCompile(`\n{2,}`)

// stripMetadataTags removes [tag:value] brackets while keeping cue brackets
// intact.
func stripMetadataTags(text string) string {
	return metadataPattern.ReplaceAllStringFunc(text, func(m string) string {
		if isTimestampBracket(m) {
			return m
		}
		return ""
	})
}

// fixLyric normalizes raw lyric text: strips tagging-tool artifacts and
// metadata/credit pollution, anchors synced lyrics at time zero, and applies
// the requested timestamp and line-terminator policy. Running it twice yields
// the same result as running it once.
func fixLyric(text string, opts fixOptions) string {
	text = strings.TrimPrefix(text, "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = mp3tagArtifactPattern.ReplaceAllString(text, "")

	status := classifyLyric(text)
	if status == StatusSyncedWithMetadata {
		text = stripMetadataTags(text)
		text = creditLinePattern.ReplaceAllString(text, "")
		text = blankRunPattern.ReplaceAllString(text, "\n")
		status = classifyLyric(text)
	}

	if status == StatusSynced {
		lines := deconstructLyric(text)
		// karaoke players expect at least a few cues and a zero-time first one
		for len(lines) < 3 {
			lines = append(lines, LyricLine{})
		}
		if lines[0].Timing.ToMilliseconds() > 0 {
			lines = append([]LyricLine{{}}, lines...)
		}
		text = constructLyric(lines, "\n")
	}

	if opts.RemoveTimestamps && (status == StatusSynced || status == StatusSyncedWithMetadata) {
		text = timestampPattern.ReplaceAllString(text, "")
	}

	split := strings.Split(text, "\n")
	for i := range split {
		split[i] = strings.TrimSpace(split[i])
	}
	return strings.Join(split, opts.eol())
}
