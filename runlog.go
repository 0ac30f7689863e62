package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
)

// reporter writes progress lines to the console (colored) and, when a run log
// is attached, to a timestamped log file (plain). It is created once per run
// and passed to everything that reports.
type reporter struct {
	out     io.Writer
	logFile *os.File
	timeFmt string
}

func newReporter(out io.Writer) *reporter {
	return &reporter{out: out, timeFmt: LOG_TIME_FORMAT}
}

// newRunReporter attaches a log file named after the start of the run, kept in
// dir like the console transcript it mirrors.
func newRunReporter(out io.Writer, dir string) (*reporter, error) {
	name := LOG_FILE_PREFIX + time.Now().Format("20060102_150405") + ".log"
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("error creating log file: %v", err)
	}
	return &reporter{out: out, logFile: file, timeFmt: LOG_TIME_FORMAT}, nil
}

func (r *reporter) LogPath() string {
	if r.logFile == nil {
		return ""
	}
	return r.logFile.Name()
}

func (r *reporter) Close() {
	if r.logFile != nil {
		r.logFile.Close()
	}
}

func (r *reporter) Infof(format string, args ...any) {
	r.emit(nil, format, args...)
}

func (r *reporter) Successf(format string, args ...any) {
	r.emit(color.New(color.FgGreen), format, args...)
}

func (r *reporter) Warnf(format string, args ...any) {
	r.emit(color.New(color.FgYellow), format, args...)
}

func (r *reporter) Errorf(format string, args ...any) {
	r.emit(color.New(color.FgRed, color.Bold), format, args...)
}

func (r *reporter) emit(c *color.Color, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	stamp := time.Now().Format(r.timeFmt)
	colored := msg
	if c != nil {
		colored = c.Sprint(msg)
	}
	fmt.Fprintf(r.out, "[%s] %s\n", color.BlueString(stamp), colored)
	if r.logFile != nil {
		fmt.Fprintf(r.logFile, "[%s] %s\n", stamp, msg)
	}
}
