package main

import (
	"fmt"
	"strings"

	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"
)

// flacAdapter handles FLAC files, where a single LYRICS vorbis comment serves
// both the synced and unsynced role.
type flacAdapter struct{}

func (flacAdapter) readLyrics(path string) (lyricFields, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return lyricFields{}, fmt.Errorf("error parsing FLAC file: %v", err)
	}

	var fields lyricFields
	for _, block := range f.Meta {
		if block.Type != flac.VorbisComment {
			continue
		}
		cmt, err := flacvorbis.ParseFromMetaDataBlock(*block)
		if err != nil {
			continue
		}
		if vals, err := cmt.Get("LYRICS"); err == nil && len(vals) > 0 {
			fields.Unsynced = vals[0]
			fields.Synced = vals[0]
			fields.HasLyricFrames = true
		}
		break
	}
	return fields, nil
}

func (flacAdapter) writeLyrics(path, lyrics string) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("error parsing FLAC file: %v", err)
	}

	var block *flac.MetaDataBlock
	for _, b := range f.Meta {
		if b.Type == flac.VorbisComment {
			block = b
			break
		}
	}

	cmt := flacvorbis.New()
	if block != nil {
		if existing, err := flacvorbis.ParseFromMetaDataBlock(*block); err == nil {
			cmt.Vendor = existing.Vendor
			for _, comment := range existing.Comments {
				if !strings.HasPrefix(strings.ToUpper(comment), "LYRICS=") {
					cmt.Comments = append(cmt.Comments, comment)
				}
			}
		}
	}
	if err := cmt.Add("LYRICS", lyrics); err != nil {
		return fmt.Errorf("error adding LYRICS comment: %v", err)
	}

	data := cmt.Marshal()
	if block == nil {
		f.Meta = append(f.Meta, &data)
	} else {
		block.Data = data.Data
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("error saving FLAC file: %v", err)
	}
	return nil
}
