package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/chat-affinity/internal/batch"
	"github.com/Zuo-Peng/chat-affinity/internal/config"
	"github.com/Zuo-Peng/chat-affinity/internal/parse"
	"github.com/Zuo-Peng/chat-affinity/internal/scan"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [file]",
		Short: "Self-check: verify config and directories, and show how a file parses",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Fprintln(out, "=== Config ===")
			if _, err := os.Stat(cfg.Path); err != nil {
				fmt.Fprintf(out, "  File: %s (NOT FOUND, using defaults)\n", cfg.Path)
			} else {
				fmt.Fprintf(out, "  File: %s (OK)\n", cfg.Path)
			}
			checkDir(out, "Transcripts", cfg.TranscriptsDir)
			editor := cfg.Editor
			if editor == "" {
				editor = os.Getenv("EDITOR")
			}
			if editor == "" {
				editor = "less (default)"
			}
			fmt.Fprintf(out, "  Editor: %s\n", editor)
			fmt.Fprintf(out, "  Daily window: %d days, top emojis: %d\n", cfg.DailyWindow, cfg.TopEmojis)

			if len(args) == 0 {
				fmt.Fprintln(out, "\n=== File Scan ===")
				files, err := scan.ScanDir(cfg.TranscriptsDir)
				if err != nil {
					fmt.Fprintf(out, "  scan error: %v\n", err)
					return nil
				}
				txt, zips := 0, 0
				for _, f := range files {
					if f.Kind == scan.KindZip {
						zips++
					} else {
						txt++
					}
				}
				fmt.Fprintf(out, "  Text exports: %d\n", txt)
				fmt.Fprintf(out, "  Zip exports:  %d\n", zips)
				return nil
			}

			fmt.Fprintln(out, "\n=== Parse ===")
			msgs, stats, err := batch.LoadFile(args[0])
			printParseStats(out, args[0], stats)
			if err != nil {
				fmt.Fprintf(out, "  Status: %v\n", err)
				return nil
			}
			fmt.Fprintf(out, "  Messages: %d\n", len(msgs))
			fmt.Fprintf(out, "  First:    %s\n", msgs[0].Timestamp.Format(time.DateTime))
			fmt.Fprintf(out, "  Last:     %s\n", msgs[len(msgs)-1].Timestamp.Format(time.DateTime))
			fmt.Fprintln(out, "  Status: OK")
			return nil
		},
	}
}

func checkDir(w io.Writer, name, path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Fprintf(w, "  %s: %s (NOT FOUND)\n", name, path)
	} else if !info.IsDir() {
		fmt.Fprintf(w, "  %s: %s (NOT A DIRECTORY)\n", name, path)
	} else {
		fmt.Fprintf(w, "  %s: %s (OK)\n", name, path)
	}
}

// printParseStats reports how the lines of path were classified.
func printParseStats(w io.Writer, path string, s parse.Stats) {
	fmt.Fprintf(w, "  File: %s\n", path)
	fmt.Fprintf(w, "  Lines: %d (blank %d)\n", s.Lines, s.Blank)
	fmt.Fprintf(w, "  Bracketed: %d, dashed: %d, short: %d\n", s.Bracketed, s.Dashed, s.Short)
	fmt.Fprintf(w, "  Accepted: %d, rejected: %d, unmatched: %d\n", s.Accepted(), s.Rejected, s.Unmatched)
	for _, sample := range s.Samples {
		fmt.Fprintf(w, "    unmatched: %q\n", sample)
	}
}
