package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	argOverwrite    bool
	argCRLF         bool
	argITunes       bool
	argAbortOnError bool
)

func optionsFromArgs() runOptions {
	return runOptions{
		Overwrite:    argOverwrite,
		CRLF:         argCRLF,
		ITunes:       argITunes,
		AbortOnError: argAbortOnError,
	}
}

var rootCmd = &cobra.Command{
	Use:   "lrc-embedder",
	Short: "Keep lyrics in sync between audio tags and .lrc sidecar files",
	Long: "A command-line tool that exports embedded lyrics to sidecar files, " +
		"imports sidecar lyrics into audio tags, and normalizes LRC lyric text.",
}

var applyCmd = &cobra.Command{
	Use:   "apply [folder]",
	Short: "Export, import and fix lyrics for every file under a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := newRunReporter(os.Stdout, ".")
		if err != nil {
			return err
		}
		defer rep.Close()

		summary, err := applyTree(rep, args[0], optionsFromArgs())
		if summary != nil {
			summary.render(os.Stdout)
		}
		if err != nil {
			return err
		}
		rep.Infof("see log file at %s", rep.LogPath())
		return nil
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan [folder]",
	Short: "Dry run: report what apply would do without writing anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep := newReporter(os.Stdout)
		summary, err := scanTree(rep, args[0])
		if summary != nil {
			summary.render(os.Stdout)
		}
		return err
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [audio-file]",
	Short: "Export embedded lyrics to a sidecar lyric file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep := newReporter(os.Stdout)
		wrote, err := exportLyrics(rep, args[0], optionsFromArgs())
		if err != nil {
			return err
		}
		if !wrote {
			return fmt.Errorf("nothing exported for %s", args[0])
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [audio-file]",
	Short: "Embed the sidecar lyric file into the audio file's tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep := newReporter(os.Stdout)
		wrote, err := importLyrics(rep, args[0], optionsFromArgs())
		if err != nil {
			return err
		}
		if !wrote {
			return fmt.Errorf("nothing imported for %s", args[0])
		}
		return nil
	},
}

var fixCmd = &cobra.Command{
	Use:   "fix [lyric-file]",
	Short: "Normalize a lyric file in place",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep := newReporter(os.Stdout)
		return fixLyricFile(rep, args[0], optionsFromArgs())
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [audio-file]",
	Short: "Report which of the embedded and sidecar lyrics is time-synced",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep := newReporter(os.Stdout)
		verdict, err := compareFile(rep, args[0])
		if err != nil {
			return err
		}
		rep.Infof("%s: %s", args[0], verdict)
		return nil
	},
}

var fetchCmd = &cobra.Command{
	Use:   "fetch [folder]",
	Short: "Fetch missing lyrics from lrclib.net into sidecar files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := newRunReporter(os.Stdout, ".")
		if err != nil {
			return err
		}
		defer rep.Close()

		summary, err := fetchSidecars(rep, args[0], optionsFromArgs())
		if summary != nil {
			summary.render(os.Stdout)
		}
		return err
	},
}

func init() {
	applyCmd.Flags().BoolVarP(&argOverwrite, "overwrite", "o", false, "Overwrite existing sidecar lyric files")
	applyCmd.Flags().BoolVarP(&argCRLF, "crlf", "c", false, "Use Windows CRLF line endings instead of LF")
	applyCmd.Flags().BoolVarP(&argITunes, "itunes", "i", false, "Remove timestamps from embedded lyrics for iTunes")
	applyCmd.Flags().BoolVar(&argAbortOnError, "abort-on-error", false, "Stop the run on the first per-file failure")

	exportCmd.Flags().BoolVarP(&argOverwrite, "overwrite", "o", false, "Overwrite an existing sidecar lyric file")
	exportCmd.Flags().BoolVarP(&argCRLF, "crlf", "c", false, "Use Windows CRLF line endings instead of LF")

	importCmd.Flags().BoolVarP(&argCRLF, "crlf", "c", false, "Use Windows CRLF line endings instead of LF")
	importCmd.Flags().BoolVarP(&argITunes, "itunes", "i", false, "Remove timestamps from embedded lyrics for iTunes")

	fixCmd.Flags().BoolVarP(&argCRLF, "crlf", "c", false, "Use Windows CRLF line endings instead of LF")

	fetchCmd.Flags().BoolVarP(&argCRLF, "crlf", "c", false, "Use Windows CRLF line endings instead of LF")
	fetchCmd.Flags().BoolVar(&argAbortOnError, "abort-on-error", false, "Stop the run on the first failure")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(fetchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
