package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zuo-Peng/chat-affinity/internal/config"
	"github.com/Zuo-Peng/chat-affinity/internal/render"
)

var version = "dev"

func main() {
	// .env is optional; values already in the environment win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "  WARN: load .env: %v\n", err)
	}

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "affinity",
		Short:         "Chat affinity - score the relationship in a WhatsApp chat export",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(analyzeCmd())
	root.AddCommand(messagesCmd())
	root.AddCommand(batchCmd())
	root.AddCommand(openCmd())
	root.AddCommand(doctorCmd())

	return root
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func renderOptions(cfg *config.Config, out io.Writer) render.Options {
	opts := render.Options{
		Width:       cfg.Width,
		DailyWindow: cfg.DailyWindow,
		TopEmojis:   cfg.TopEmojis,
		NoColor:     cfg.NoColor || !isTerminal(out),
	}
	if opts.Width == 0 {
		if f, ok := out.(*os.File); ok {
			if w, _, err := term.GetSize(int(f.Fd())); err == nil {
				opts.Width = w
			}
		}
	}
	return opts
}
