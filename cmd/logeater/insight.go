package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jjustinm4/logEater/internal/config"
	"github.com/jjustinm4/logEater/internal/insight"
)

func newInsightCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "insight",
		Short: "Summarize extracted log content through the local text generator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			content, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			svc := insight.New(newLLMClient(cfg), cfg.LLM.Model, cfg.LLM.CtxTokens)
			summary, err := svc.Summarize(cmd.Context(), string(content))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "extraction output file (json or text) to summarize")
	cmd.MarkFlagRequired("input")
	return cmd
}
