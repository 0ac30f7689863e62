package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/dhowden/tag"
)

type LrclibLyricsResponse struct {
	SyncedLyrics string `json:"syncedLyrics"`
	PlainLyrics  string `json:"plainLyrics"`
	Instrumental bool   `json:"instrumental"`
}

// fetchLyricsLrclib asks lrclib.net for lyrics matching the given track
// metadata. Synced lyrics are preferred, plain lyrics are the fallback, and
// instrumental tracks come back as a bare [au:instrumental] tag.
func fetchLyricsLrclib(title, artist, album string) (string, error) {
	client := &http.Client{Timeout: FETCH_TIMEOUT}
	reqUrl := LRCLIB_API_URL +
		"?track_name=" + url.QueryEscape(title) +
		"&artist_name=" + url.QueryEscape(artist) +
		"&album_name=" + url.QueryEscape(album)
	req, err := http.NewRequest("GET", reqUrl, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", USER_AGENT)
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status code: %d", resp.StatusCode)
	}

	var lrclibResp LrclibLyricsResponse
	if err := json.NewDecoder(resp.Body).Decode(&lrclibResp); err != nil {
		return "", fmt.Errorf("failed to parse lrclib response: %w", err)
	}

	switch {
	case lrclibResp.Instrumental:
		return "[au:instrumental]", nil
	case lrclibResp.SyncedLyrics != "":
		return lrclibResp.SyncedLyrics, nil
	case lrclibResp.PlainLyrics != "":
		return lrclibResp.PlainLyrics, nil
	}
	return "", fmt.Errorf("lrclib returned no lyrics")
}

// trackMetadata reads title/artist/album from the audio file's tags.
func trackMetadata(path string) (title, artist, album string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", "", err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return "", "", "", fmt.Errorf("error reading tags: %v", err)
	}
	return m.Title(), m.Artist(), m.Album(), nil
}

// fetchSidecars walks root and, for every audio file that has lyrics neither
// embedded nor in a sidecar, fetches them from lrclib.net and writes a .lrc
// sidecar next to the file.
func fetchSidecars(rep *reporter, root string, opts runOptions) (*runSummary, error) {
	summary := newRunSummary()

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !hasExt(path, audioExts()) {
			return nil
		}
		summary.Expected++
		summary.ByExt[extKey(path)]++

		if findSidecar(path) != "" {
			rep.Infof("fetch: %s already has a lyric sidecar", path)
			return nil
		}
		adapter := adapterFor(path, rep)
		if fields, err := adapter.readLyrics(path); err == nil && (fields.Synced != "" || fields.Unsynced != "") {
			rep.Infof("fetch: %s already has embedded lyrics", path)
			return nil
		}

		title, artist, album, err := trackMetadata(path)
		if err != nil || title == "" || artist == "" {
			rep.Warnf("fetch: %s has no usable track metadata", path)
			return nil
		}
		lyrics, err := fetchLyricsLrclib(title, artist, album)
		if err != nil {
			rep.Warnf("fetch: no lyrics for %s - %s: %v", artist, title, err)
			return nil
		}

		target := sidecarTarget(path)
		fixed := fixLyric(lyrics, fixOptions{CRLF: opts.CRLF})
		if werr := writeFileAtomic(target, []byte(fixed)); werr != nil {
			summary.Failures = append(summary.Failures, path)
			rep.Errorf("fetch: error writing %s: %v", target, werr)
			if opts.AbortOnError {
				return werr
			}
			return nil
		}
		rep.Successf("fetch: wrote %s", target)
		summary.Processed++
		return nil
	})
	return summary, err
}
