package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jjustinm4/logEater/internal/config"
	"github.com/jjustinm4/logEater/internal/schema"
)

func newRegisterCmd() *cobra.Command {
	var (
		name       string
		samplePath string
		refine     bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Build a schema skeleton from a sample record and persist it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			sample, err := os.ReadFile(samplePath)
			if err != nil {
				return fmt.Errorf("read sample: %w", err)
			}

			extractor := schema.NewExtractor(newLLMClient(cfg), cfg.LLM.Model)
			sk, err := extractor.Extract(cmd.Context(), string(sample), refine)
			if err != nil {
				var exErr *schema.ExtractionError
				if errors.As(err, &exErr) {
					slog.Error("generator output unusable",
						"attempts", exErr.Diag.Attempts,
						"prompt_chars", exErr.Diag.PromptChars,
						"output_chars", exErr.Diag.RawOutputChars)
				}
				return err
			}

			store, err := schema.NewStore(cfg.Extract.RegistryRoot)
			if err != nil {
				return err
			}
			path, err := store.Save(name, sk)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "schema name to register under")
	cmd.Flags().StringVar(&samplePath, "sample", "", "path to a sample JSON record")
	cmd.Flags().BoolVar(&refine, "refine", false, "refine the skeleton through the local text generator")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("sample")
	return cmd
}
