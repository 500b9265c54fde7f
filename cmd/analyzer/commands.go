package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spacesedan/aspectsense/config"
	"github.com/spacesedan/aspectsense/internal/analysis"
	"github.com/spacesedan/aspectsense/internal/view"
	"github.com/spf13/cobra"
)

const prompt = "> "

type options struct {
	format        string
	grammar       string
	stripMarkdown bool
}

func newRootCmd(cfg config.AnalyzerConfig) *cobra.Command {
	opts := &options{
		format:        cfg.Output,
		grammar:       cfg.Grammar,
		stripMarkdown: cfg.StripMarkdown,
	}

	root := &cobra.Command{
		Use:   "analyzer [text...]",
		Short: "Sentiment label and noun-noun aspects for a sentence",
		Long: "Scores text with VADER and chunks noun-noun aspect phrases.\n" +
			"With arguments, analyzes them once. Without, reads one sentence per line.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, format, err := opts.build()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				return view.Render(cmd.OutOrStdout(), format, analyzer.Analyze(strings.Join(args, " ")))
			}
			return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), analyzer, format, isTerminal(cmd.InOrStdin()))
		},
	}

	root.PersistentFlags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json or yaml")
	root.PersistentFlags().StringVar(&opts.grammar, "grammar", opts.grammar, "aspect chunk rule")
	root.PersistentFlags().BoolVar(&opts.stripMarkdown, "markdown", opts.stripMarkdown, "strip markdown and links before scoring")

	root.AddCommand(newBatchCmd(opts))
	return root
}

func newBatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file]",
		Short: "Analyze every non-blank line of a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = string(view.FormatJSON)
			}
			analyzer, format, err := opts.build()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening batch file: %w", err)
				}
				defer f.Close()
				in = f
			}
			return runBatch(in, cmd.OutOrStdout(), analyzer, format)
		},
	}
}

func (o *options) build() (*analysis.Analyzer, view.Format, error) {
	format, err := view.ParseFormat(o.format)
	if err != nil {
		return nil, "", err
	}

	analyzer, err := analysis.NewDefaultAnalyzer(analysis.Options{
		Grammar:       o.grammar,
		StripMarkdown: o.stripMarkdown,
	})
	if err != nil {
		return nil, "", err
	}
	return analyzer, format, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
