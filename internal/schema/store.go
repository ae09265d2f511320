package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jjustinm4/logEater/internal/model"
)

const cacheSize = 32

// Store persists named skeletons as pretty-printed JSON artifacts under
// <root>/registry/schemas, with an LRU read cache in front of disk for
// repeated extraction runs. Stored skeletons are read back, never mutated.
type Store struct {
	dir   string
	cache *lru.Cache[string, model.Skeleton]
}

// NewStore creates a Store rooted at the given project directory.
func NewStore(root string) (*Store, error) {
	cache, err := lru.New[string, model.Skeleton](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("schema store: %w", err)
	}
	return &Store{
		dir:   filepath.Join(root, "registry", "schemas"),
		cache: cache,
	}, nil
}

// SanitizeName maps a schema name to its artifact stem: non-alphanumeric
// runes other than '_', '-', '.' become '_'. Empty names are rejected.
func SanitizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("schema store: empty schema name")
	}
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String(), nil
}

// Path returns the artifact path a schema name maps to.
func (s *Store) Path(name string) (string, error) {
	safe, err := SanitizeName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dir, safe+".json"), nil
}

// Save writes the skeleton artifact and returns its path.
func (s *Store) Save(name string, sk model.Skeleton) (string, error) {
	path, err := s.Path(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("schema store: %w", err)
	}
	data, err := json.MarshalIndent(sk, "", "  ")
	if err != nil {
		return "", fmt.Errorf("schema store: encode %q: %w", name, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("schema store: write %q: %w", name, err)
	}
	s.cache.Add(name, sk)
	return path, nil
}

// Load reads the skeleton artifact for a schema name.
func (s *Store) Load(name string) (model.Skeleton, error) {
	if sk, ok := s.cache.Get(name); ok {
		return sk, nil
	}
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema store: read %q: %w", name, err)
	}
	var sk model.Skeleton
	if err := json.Unmarshal(data, &sk); err != nil {
		return nil, fmt.Errorf("schema store: decode %q: %w", name, err)
	}
	s.cache.Add(name, sk)
	return sk, nil
}
