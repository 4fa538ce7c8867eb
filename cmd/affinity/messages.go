package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/chat-affinity/internal/batch"
	"github.com/Zuo-Peng/chat-affinity/internal/search"
)

const (
	sColorReset   = "\033[0m"
	sColorBoldRed = "\033[1;31m"
	sColorBlue    = "\033[1;34m"
	sColorDim     = "\033[2m"
)

func colorizeSnippet(snippet string) string {
	snippet = strings.ReplaceAll(snippet, ">>>", sColorBoldRed)
	snippet = strings.ReplaceAll(snippet, "<<<", sColorReset)
	return snippet
}

func plainSnippet(snippet string) string {
	snippet = strings.ReplaceAll(snippet, ">>>", "")
	snippet = strings.ReplaceAll(snippet, "<<<", "")
	return snippet
}

func messagesCmd() *cobra.Command {
	var opts search.Options

	cmd := &cobra.Command{
		Use:   "messages <file>",
		Short: "List parsed messages as TSV",
		Long: `List the messages parsed from a chat export. Output is TSV:
  line, timestamp, sender, content

The line number points into the export, e.g. for 'affinity open --line'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, _, err := batch.LoadFile(args[0])
			if err != nil {
				return err
			}

			results, err := search.Filter(msgs, opts)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No messages found.")
				return nil
			}

			out := cmd.OutOrStdout()
			color := isTerminal(out) && os.Getenv("NO_COLOR") == ""
			for _, r := range results {
				snippet := strings.ReplaceAll(r.Snippet, "\t", " ")
				stamp := r.Message.Timestamp.Format("2006-01-02 15:04:05")
				sender := strings.ReplaceAll(r.Message.Sender, "\t", " ")
				if color {
					// first field (line) stays plain for cut/fzf
					fmt.Fprintf(out, "%d\t%s%s%s\t%s%s%s\t%s\n",
						r.Message.LineNumber,
						sColorDim, stamp, sColorReset,
						sColorBlue, sender, sColorReset,
						colorizeSnippet(snippet))
					continue
				}
				fmt.Fprintf(out, "%d\t%s\t%s\t%s\n",
					r.Message.LineNumber, stamp, sender, plainSnippet(snippet))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Sender, "sender", "", "Only messages from this sender (case-insensitive)")
	cmd.Flags().StringVar(&opts.Query, "grep", "", "Only messages containing this text (case-insensitive)")
	cmd.Flags().StringVar(&opts.Since, "since", "", "Only messages on or after this date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Max messages (0 = all)")

	return cmd
}
