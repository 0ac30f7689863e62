package main

import "time"

var (
	mp3Exts   = []string{".mp3"}
	mp4Exts   = []string{".m4a", ".m4b", ".m4p", ".m4r", ".mp4", ".aac", ".alac"}
	flacExts  = []string{".flac"}
	lyricExts = []string{".lrc", ".txt"}

	LOG_FILE_PREFIX = "lrcembedder_"
	LOG_TIME_FORMAT = "2006-01-02 15:04:05"

	LRCLIB_API_URL = "https://lrclib.net/api/get"
	USER_AGENT     = "lrc-embedder (https://github.com/uyanide/lrc-embedder)"
	FETCH_TIMEOUT  = 30 * time.Second
)

func audioExts() []string {
	exts := make([]string, 0, len(mp3Exts)+len(mp4Exts)+len(flacExts))
	exts = append(exts, mp3Exts...)
	exts = append(exts, mp4Exts...)
	exts = append(exts, flacExts...)
	return exts
}
