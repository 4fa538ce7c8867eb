package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/chat-affinity/internal/analyze"
	"github.com/Zuo-Peng/chat-affinity/internal/batch"
	"github.com/Zuo-Peng/chat-affinity/internal/config"
)

type batchRecord struct {
	File     string                `json:"file"`
	Analysis *analyze.ChatAnalysis `json:"analysis,omitempty"`
	Error    string                `json:"error,omitempty"`
}

func batchCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "batch [dir]",
		Short: "Analyze every chat export under a directory",
		Long: `Find every chat export (.txt or .zip with "chat" in its name) under dir,
analyze each on its own and list them by love score. dir defaults to
transcripts_dir from the config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			dir := cfg.TranscriptsDir
			if len(args) == 1 {
				dir = args[0]
			}

			stderr := cmd.ErrOrStderr()
			fmt.Fprintf(stderr, "Scanning %s...\n", dir)

			results, stats, err := batch.AnalyzeDir(dir, stderr)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				records := make([]batchRecord, 0, len(results))
				for _, r := range results {
					rec := batchRecord{File: r.File.Path, Analysis: r.Analysis}
					if r.Err != nil {
						rec.Error = r.Err.Error()
					}
					records = append(records, rec)
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(records); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(out, "%5s %8s %5s  %s\n", "SCORE", "MESSAGES", "DAYS", "FILE")
				for _, r := range results {
					if r.Analysis == nil {
						fmt.Fprintf(out, "%5s %8s %5s  %s (%v)\n", "-", "-", "-", r.File.Path, r.Err)
						continue
					}
					fmt.Fprintf(out, "%5d %8d %5d  %s\n",
						r.Analysis.LoveScore, r.Analysis.TotalMessages, r.Analysis.TotalDays, r.File.Path)
				}
			}

			fmt.Fprintf(stderr, "Done. %s\n", stats)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the results as JSON")

	return cmd
}
