package fixture

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fathomline/gridview/pkg/types"
)

//go:embed seed.yaml
var defaultSeedYAML []byte

// seedFile maps resource name to its records, matching the YAML layout.
type seedFile map[string][]types.Record

// SeedDefault loads the embedded sample dataset.
func (s *Store) SeedDefault() error {
	return s.seed(defaultSeedYAML)
}

// SeedFile loads fixture records from a YAML file at path.
func (s *Store) SeedFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return s.SeedReader(f)
}

// SeedReader loads fixture records from YAML. Unknown resource names are
// rejected so a typo in a seed file fails loudly instead of serving an
// empty collection.
func (s *Store) SeedReader(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read seed: %w", err)
	}
	return s.seed(data)
}

func (s *Store) seed(data []byte) error {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("parse seed: %w", err)
	}
	for resource, records := range seed {
		if _, err := lookupSchema(resource); err != nil {
			return fmt.Errorf("seed resource %q: %w", resource, err)
		}
		for _, rec := range records {
			if err := s.Put(resource, normalize(rec)); err != nil {
				return fmt.Errorf("seed %s: %w", resource, err)
			}
		}
	}
	return nil
}

// normalize coerces YAML-decoded values into the shapes the JSON API emits:
// map keys to strings, integers to float64.
func normalize(rec types.Record) types.Record {
	out := make(types.Record, len(rec))
	for k, v := range rec {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = normalizeValue(e)
		}
		return m
	case []any:
		l := make([]any, len(t))
		for i, e := range t {
			l[i] = normalizeValue(e)
		}
		return l
	default:
		return v
	}
}
