package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jjustinm4/logEater/internal/config"
	"github.com/jjustinm4/logEater/internal/search"
)

func newSearchCmd() *cobra.Command {
	var (
		folder        string
		pattern       string
		logic         string
		useRegex      bool
		caseSensitive bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Line-level keyword/regex search across log files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			result, err := search.Run(folder, pattern, search.Options{
				Logic:         parseLogic(logic),
				Regex:         useRegex,
				CaseSensitive: caseSensitive,
				Exts:          cfg.Extract.IncludeExts,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, fm := range result.Matched {
				fmt.Fprintf(out, "%s\n", fm.File)
				for _, m := range fm.Matches {
					fmt.Fprintf(out, "  %d: %s\n", m.Line, m.Text)
				}
			}
			fmt.Fprintf(out, "\n%d matched, %d not matched\n", len(result.Matched), len(result.NotMatched))
			return nil
		},
	}

	cmd.Flags().StringVar(&folder, "folder", ".", "folder to scan recursively")
	cmd.Flags().StringVar(&pattern, "pattern", "", "pattern input (comma-separated for and/or)")
	cmd.Flags().StringVar(&logic, "logic", "single", "pattern logic: single, and, or")
	cmd.Flags().BoolVar(&useRegex, "regex", false, "treat patterns as regular expressions")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "match case-sensitively")
	cmd.MarkFlagRequired("pattern")
	return cmd
}

func parseLogic(s string) search.Logic {
	switch strings.ToLower(s) {
	case "and":
		return search.And
	case "or":
		return search.Or
	default:
		return search.Single
	}
}
