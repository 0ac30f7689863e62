package main

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"
	mp4tag "github.com/zhaarey/go-mp4tag"
)

// mp4Adapter handles MP4-family containers (.m4a, .mp4, ...), where the ©lyr
// atom is a single free-text field serving both the synced and unsynced role.
type mp4Adapter struct{}

func (mp4Adapter) readLyrics(path string) (lyricFields, error) {
	f, err := os.Open(path)
	if err != nil {
		return lyricFields{}, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return lyricFields{}, fmt.Errorf("error reading MP4 tags: %v", err)
	}

	lyrics := m.Lyrics()
	return lyricFields{
		Unsynced:       lyrics,
		Synced:         lyrics,
		HasLyricFrames: lyrics != "",
	}, nil
}

func (mp4Adapter) writeLyrics(path, lyrics string) error {
	mp4, err := mp4tag.Open(path)
	if err != nil {
		return fmt.Errorf("error opening MP4 file: %v", err)
	}
	defer mp4.Close()

	tags := &mp4tag.MP4Tags{Lyrics: lyrics}
	if err := mp4.Write(tags, []string{}); err != nil {
		return fmt.Errorf("error writing MP4 tags: %v", err)
	}
	return nil
}
