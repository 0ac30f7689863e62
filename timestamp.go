package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Matches LRC cue brackets: [mm:ss.xx], [mm:ss.xxx] or [hh:mm:ss.xx(x)].
var timestampPattern = regexp.MustCompile(`\[(?:(\d{1,2}):)?(\d{2}):(\d{2})\.(\d{2,3})\]`)

type Timing struct {
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}

func (t Timing) String() string {
	if t.Hours > 0 {
		return fmt.Sprintf("[%02d:%02d:%02d.%03d]", t.Hours, t.Minutes, t.Seconds, t.Milliseconds)
	}
	return fmt.Sprintf("[%02d:%02d.%03d]", t.Minutes, t.Seconds, t.Milliseconds)
}

func (t Timing) ToMilliseconds() int {
	return t.Hours*3600000 + t.Minutes*60000 + t.Seconds*1000 + t.Milliseconds
}

func timingFromMilliseconds(ms int) Timing {
	return Timing{
		Hours:        ms / 3600000,
		Minutes:      (ms % 3600000) / 60000,
		Seconds:      (ms % 60000) / 1000,
		Milliseconds: ms % 1000,
	}
}

// parseTiming decodes a cue bracket at the start of text. A zero Timing is
// returned when nothing matches there; malformed cues are tolerated, not
// reported.
func parseTiming(text string) Timing {
	matches := timestampPattern.FindStringSubmatch(text)
	if len(matches) != 5 || !strings.HasPrefix(text, matches[0]) {
		return Timing{}
	}

	hours := 0
	if matches[1] != "" {
		hours, _ = strconv.Atoi(matches[1])
	}
	minutes, _ := strconv.Atoi(matches[2])
	seconds, _ := strconv.Atoi(matches[3])
	fraction, _ := strconv.Atoi(matches[4])
	if len(matches[4]) == 2 {
		fraction *= 10 // centiseconds
	}

	return Timing{
		Hours:        hours,
		Minutes:      minutes,
		Seconds:      seconds,
		Milliseconds: fraction,
	}
}
