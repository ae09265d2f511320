package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jjustinm4/logEater/internal/config"
	"github.com/jjustinm4/logEater/internal/extract"
	"github.com/jjustinm4/logEater/internal/output"
	"github.com/jjustinm4/logEater/internal/schema"
)

const maxSuggestions = 3

func newExtractCmd() *cobra.Command {
	var (
		folder      string
		schemaName  string
		fields      []string
		profilePath string
		format      string
		outPath     string
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Bulk-extract fields from every log record under a folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			if profilePath != "" {
				profile, err := config.LoadProfile(profilePath)
				if err != nil {
					return err
				}
				schemaName = profile.Schema
				fields = profile.Fields
				if format == "" {
					format = profile.Format
				}
			}
			if schemaName == "" {
				return fmt.Errorf("extract: --schema or --profile is required")
			}
			if len(fields) == 0 {
				return fmt.Errorf("extract: no fields requested")
			}

			store, err := schema.NewStore(cfg.Extract.RegistryRoot)
			if err != nil {
				return err
			}
			svc := extract.New(store, extract.WithExts(cfg.Extract.IncludeExts))

			rows, sum := svc.Collect(folder, schemaName, fields)
			suggestMisses(svc, schemaName, fields, rows)

			var data []byte
			switch output.ParseFormat(format) {
			case output.Text:
				data = []byte(output.RenderText(rows, fields))
			default:
				if data, err = output.RenderJSON(rows); err != nil {
					return err
				}
			}
			if err := output.Write(outPath, data); err != nil {
				return err
			}

			slog.Info("extraction finished",
				"scanned", sum.Scanned,
				"parsed", sum.Parsed,
				"failed_to_parse", sum.Failed,
				"out", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&folder, "folder", ".", "folder to scan recursively")
	cmd.Flags().StringVar(&schemaName, "schema", "", "registered schema name (picks the parser)")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "field paths to extract (comma-separated)")
	cmd.Flags().StringVar(&profilePath, "profile", "", "YAML extraction profile (schema + fields)")
	cmd.Flags().StringVar(&format, "format", "", "output format: json or text")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default: stdout)")
	return cmd
}

// suggestMisses logs near-miss skeleton paths for fields that resolved empty
// in every row.
func suggestMisses(svc *extract.Service, schemaName string, fields []string, rows []map[string]any) {
	sk, ok := svc.Skeleton(schemaName)
	if !ok || len(rows) == 0 {
		return
	}
	paths := schema.Paths(sk)
	for _, f := range fields {
		if anyHit(rows, f) {
			continue
		}
		if hints := schema.Suggest(f, paths, maxSuggestions); len(hints) > 0 {
			slog.Warn("field empty in every record", "field", f, "did_you_mean", hints)
		}
	}
}

func anyHit(rows []map[string]any, field string) bool {
	for _, row := range rows {
		switch v := row[field].(type) {
		case nil:
			continue
		case string:
			if v != "" {
				return true
			}
		default:
			return true
		}
	}
	return false
}
