package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/chat-affinity/internal/analyze"
	"github.com/Zuo-Peng/chat-affinity/internal/batch"
	"github.com/Zuo-Peng/chat-affinity/internal/config"
	"github.com/Zuo-Peng/chat-affinity/internal/open"
	"github.com/Zuo-Peng/chat-affinity/internal/render"
	"github.com/Zuo-Peng/chat-affinity/internal/tui"
)

func analyzeCmd() *cobra.Command {
	var jsonOut, plain, verbose bool

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a chat export and print its love score",
		Long: `Parse a WhatsApp chat export (.txt or .zip) and report message counts,
daily activity, emoji usage, insights and the 0-100 love score.

Opens an interactive view when stdout is a terminal; prints a plain report
otherwise. Use --json for machine-readable output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			path := args[0]
			msgs, stats, err := batch.LoadFile(path)
			if verbose {
				printParseStats(cmd.ErrOrStderr(), path, stats)
			}
			if err != nil {
				return err
			}

			a, err := analyze.Analyze(msgs)
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(a)
			}

			opts := renderOptions(cfg, out)
			if !plain && isTerminal(out) {
				picked, err := tui.Run(a, msgs, opts)
				if err != nil {
					return err
				}
				if picked != nil {
					return open.OpenTranscript(path, picked.LineNumber, cfg.Editor)
				}
				return nil
			}

			fmt.Fprint(out, render.Report(a, opts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the analysis as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print a plain report even on a terminal")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report parse statistics on stderr")

	return cmd
}
