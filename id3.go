package main

import (
	"fmt"

	id3v2 "github.com/bogem/id3v2/v2"
)

// id3Adapter handles MP3-style containers, where synced (SYLT) and unsynced
// (USLT) lyrics live in independent frames.
type id3Adapter struct {
	rep *reporter
}

func (a id3Adapter) readLyrics(path string) (lyricFields, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return lyricFields{}, fmt.Errorf("error opening ID3 tag: %v", err)
	}
	defer tag.Close()

	var fields lyricFields

	usltFrames := tag.GetFrames(tag.CommonID("Unsynchronised lyrics/text transcription"))
	if len(usltFrames) > 0 {
		fields.HasLyricFrames = true
		if len(usltFrames) > 1 {
			a.rep.Warnf("multiple USLT frames in %s, only the first one will be used", path)
		}
		if uslt, ok := usltFrames[0].(id3v2.UnsynchronisedLyricsFrame); ok {
			fields.Unsynced = uslt.Lyrics
		}
	}

	syltFrames := tag.GetFrames("SYLT")
	if len(syltFrames) > 0 {
		fields.HasLyricFrames = true
		if len(syltFrames) > 1 {
			a.rep.Warnf("multiple SYLT frames in %s, only the first one will be used", path)
		}
		if sylt, ok := syltFrames[0].(id3v2.UnknownFrame); ok {
			fields.Synced = decodeSYLT(sylt.Body)
		}
	}

	return fields, nil
}

func (a id3Adapter) writeLyrics(path, lyrics string) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("error opening ID3 tag: %v", err)
	}
	defer tag.Close()

	tag.DeleteFrames(tag.CommonID("Unsynchronised lyrics/text transcription"))
	tag.DeleteFrames("SYLT")

	tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
		Encoding:          id3v2.EncodingUTF8,
		Language:          "eng",
		ContentDescriptor: "",
		Lyrics:            lyrics,
	})
	if lines := deconstructLyric(lyrics); len(lines) > 0 {
		tag.AddFrame("SYLT", encodeSYLT(lines))
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("error saving ID3 tag: %v", err)
	}
	return nil
}

// encodeSYLT builds a raw SYLT frame body: encoding byte, 3-byte language,
// timestamp format 0x02 (absolute milliseconds), content type 0x01 (lyrics),
// empty null-terminated descriptor, then null-terminated text followed by a
// 4-byte big-endian offset per line.
func encodeSYLT(lines []LyricLine) id3v2.UnknownFrame {
	body := []byte{id3v2.EncodingUTF8.Key}
	body = append(body, []byte("eng")...)
	body = append(body, 0x02, 0x01, 0x00)

	for _, line := range lines {
		ms := line.Timing.ToMilliseconds()
		body = append(body, []byte(line.Text)...)
		body = append(body, 0x00)
		body = append(body, byte(ms>>24), byte(ms>>16), byte(ms>>8), byte(ms))
	}
	return id3v2.UnknownFrame{Body: body}
}

// decodeSYLT turns a raw SYLT frame body back into LRC text, one cue bracket
// per line. Truncated or empty bodies yield an empty string.
func decodeSYLT(body []byte) string {
	if len(body) < 6 {
		return ""
	}

	// skip encoding, language, timestamp format and content type
	pos := 6
	for pos < len(body) && body[pos] != 0 {
		pos++
	}
	pos++ // descriptor terminator

	var lines []LyricLine
	for pos < len(body) {
		start := pos
		for pos < len(body) && body[pos] != 0 {
			pos++
		}
		text := string(body[start:pos])
		pos++

		if pos+4 > len(body) {
			break
		}
		ms := int(body[pos])<<24 | int(body[pos+1])<<16 | int(body[pos+2])<<8 | int(body[pos+3])
		pos += 4

		lines = append(lines, LyricLine{Timing: timingFromMilliseconds(ms), Text: text})
	}
	return constructLyric(lines, "\n")
}
