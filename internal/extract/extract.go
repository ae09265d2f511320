// Package extract runs bulk field extraction over discovered log files.
package extract

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/jjustinm4/logEater/internal/discover"
	"github.com/jjustinm4/logEater/internal/model"
	"github.com/jjustinm4/logEater/internal/output"
	"github.com/jjustinm4/logEater/internal/parser"
	"github.com/jjustinm4/logEater/internal/schema"
)

// Summary reports one bulk extraction pass. Files that fail to parse are
// counted and skipped, never fatal to the batch.
type Summary struct {
	Scanned int
	Parsed  int
	Failed  int
	OutPath string
}

// Option configures a Service.
type Option func(*Service)

// WithExts overrides the file-extension allow-list.
func WithExts(exts []string) Option {
	return func(s *Service) { s.exts = exts }
}

// Service wires discovery, parser resolution, and rendering into one pass.
type Service struct {
	store *schema.Store
	exts  []string
}

// New creates a Service. store may be nil; schema-derived defaults are then
// unavailable and absent fields resolve to "".
func New(store *schema.Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run collects rows for every parseable record under folder and writes them
// in the requested format to outPath ("" = stdout).
func (s *Service) Run(folder, schemaName string, fields []string, format output.Format, outPath string) (Summary, error) {
	rows, sum := s.Collect(folder, schemaName, fields)

	var data []byte
	switch format {
	case output.Text:
		data = []byte(output.RenderText(rows, fields))
	default:
		var err error
		data, err = output.RenderJSON(rows)
		if err != nil {
			return sum, err
		}
	}
	if err := output.Write(outPath, data); err != nil {
		return sum, err
	}
	sum.OutPath = outPath
	return sum, nil
}

// Collect gathers one row per parseable file: the reserved __file__ key plus
// one entry per requested field.
func (s *Service) Collect(folder, schemaName string, fields []string) ([]map[string]any, Summary) {
	files := discover.Files(folder, s.exts)
	p := s.resolveParser(schemaName)

	var rows []map[string]any
	var sum Summary
	for _, f := range files {
		sum.Scanned++
		rec, ok := readRecord(f)
		if !ok {
			sum.Failed++
			continue
		}
		row := make(map[string]any, len(fields)+1)
		row[model.FileKey] = f
		for k, v := range p.Extract(rec, fields) {
			row[k] = v
		}
		rows = append(rows, row)
		sum.Parsed++
	}
	return rows, sum
}

// Skeleton exposes the stored skeleton for a schema, when one exists.
func (s *Service) Skeleton(schemaName string) (model.Skeleton, bool) {
	if s.store == nil {
		return nil, false
	}
	sk, err := s.store.Load(schemaName)
	if err != nil {
		return nil, false
	}
	return sk, true
}

// resolveParser picks the strategy for a schema name and attaches the stored
// skeleton when the strategy wants one.
func (s *Service) resolveParser(schemaName string) parser.Parser {
	p := parser.Resolve(schemaName)
	if aware, ok := p.(parser.SkeletonAware); ok {
		if sk, found := s.Skeleton(schemaName); found {
			aware.SetSkeleton(sk)
		} else {
			slog.Debug("no stored skeleton for schema", "schema", schemaName)
		}
	}
	return p
}

func readRecord(path string) (any, bool) {
	text, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("skipping unreadable file", "file", path, "err", err)
		return nil, false
	}
	var rec any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(text))), &rec); err != nil {
		slog.Debug("skipping unparseable file", "file", path, "err", err)
		return nil, false
	}
	return rec, true
}
