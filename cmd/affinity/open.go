package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/chat-affinity/internal/analyze"
	"github.com/Zuo-Peng/chat-affinity/internal/batch"
	"github.com/Zuo-Peng/chat-affinity/internal/config"
	"github.com/Zuo-Peng/chat-affinity/internal/open"
)

func openCmd() *cobra.Command {
	var day string
	var line int

	cmd := &cobra.Command{
		Use:   "open <file>",
		Short: "Open the chat export in $EDITOR at a given day or line",
		Long: `Open the chat export in the configured editor (then $EDITOR, then less).
Without --day or --line it jumps to the first message of the most active day.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			path := args[0]
			if line <= 0 {
				line, err = lineFor(path, day)
				if err != nil {
					return err
				}
			}
			return open.OpenTranscript(path, line, cfg.Editor)
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Jump to the first message on this day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&line, "line", 0, "Jump to this line")

	return cmd
}

// lineFor resolves day, or the most active day when empty, to a line.
func lineFor(path, day string) (int, error) {
	msgs, _, err := batch.LoadFile(path)
	if err != nil {
		return 0, err
	}
	if day == "" {
		a, err := analyze.Analyze(msgs)
		if err != nil {
			return 0, fmt.Errorf("analyze: %w", err)
		}
		day = a.Insights.MostActiveDate
	}
	return open.LineForDay(msgs, day)
}
