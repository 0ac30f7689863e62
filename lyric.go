package main

import (
	"regexp"
	"strings"
)

type LyricLine struct {
	Timing Timing
	Text   string
}

func (l LyricLine) String() string {
	return l.Timing.String() + l.Text
}

type SyncStatus int

const (
	StatusUnsynced SyncStatus = iota
	StatusSynced
	StatusSyncedWithMetadata
	StatusInstrumental
)

func (s SyncStatus) String() string {
	switch s {
	case StatusUnsynced:
		return "unsynced"
	case StatusSynced:
		return "synced"
	case StatusSyncedWithMetadata:
		return "synced with metadata"
	case StatusInstrumental:
		return "instrumental"
	}
	return "unknown"
}

// Bracketed [tag:value] metadata such as [ar:...], [ti:...], [au:instrumental].
// The shape overlaps plain cue brackets, so matches that are themselves valid
// timestamps are filtered out before use.
var metadataPattern = regexp.MustCompile(`\[(\w{2,3}):([^\]]+)\]`)

// Credit lines as emitted by Netease lyric exports: an optional cue bracket, a
// production-role label, a half- or full-width colon and the credited name.
var creditLinePattern = regexp.MustCompile(
	`(?:\[(?:\d+:)?\d+:\d+\.\d+\] ?)?(乐队|作曲|作詞|作词|出品|制作人|工程师|录音师|录音棚|指挥|母带|混音|編曲|编曲) ?(:|：) ?([^\n]+)`)

func isTimestampBracket(s string) bool {
	return timestampPattern.FindString(s) == s
}

// metadataTags returns all [tag:value] pairs in text, excluding cue brackets.
func metadataTags(text string) [][2]string {
	var tags [][2]string
	for _, m := range metadataPattern.FindAllStringSubmatch(text, -1) {
		if isTimestampBracket(m[0]) {
			continue
		}
		tags = append(tags, [2]string{m[1], m[2]})
	}
	return tags
}

func classifyLyric(content string) SyncStatus {
	if !timestampPattern.MatchString(content) {
		return StatusUnsynced
	}
	tags := metadataTags(content)
	for _, tag := range tags {
		if tag[0] == "au" && strings.TrimSpace(tag[1]) == "instrumental" {
			return StatusInstrumental
		}
	}
	if len(tags) > 0 || creditLinePattern.MatchString(content) {
		return StatusSyncedWithMetadata
	}
	return StatusSynced
}

// deconstructLyric splits content into timed lines. Lines without a leading
// cue bracket are dropped, matching the normalizer's tolerance for malformed
// input.
func deconstructLyric(content string) []LyricLine {
	var lines []LyricLine
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		match := timestampPattern.FindString(line)
		if match == "" || !strings.HasPrefix(line, match) {
			continue
		}
		lines = append(lines, LyricLine{
			Timing: parseTiming(match),
			Text:   line[len(match):],
		})
	}
	return lines
}

func constructLyric(lines []LyricLine, eol string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, line.String())
	}
	return strings.Join(parts, eol)
}
