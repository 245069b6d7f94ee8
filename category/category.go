// Package category implements the extension-to-category resolution table.
//
// The table is loaded once per run from configuration and is immutable afterwards.
// Malformed entries are rejected at the load boundary so that per-file resolution
// never has an error path.
package category

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/filesan-cli/filesan/key"
	"github.com/filesan-cli/filesan/log"
	"github.com/filesan-cli/filesan/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Table is an immutable mapping from lowercase file extensions to category names.
type Table struct {
	index    map[string]string
	names    []string
	fallback string
}

// Load builds a Table from the global configuration.
func Load() (*Table, error) {
	return New(
		viper.GetStringMapStringSlice(key.OrganizeCategories),
		viper.GetString(key.OrganizeDefaultCategory),
	)
}

// New validates the raw category mapping and constructs a Table.
// Category names are capitalized for a stable folder naming scheme regardless
// of the configuration source; viper lowercases map keys read from files.
// A duplicate extension registration overwrites the previous owner with a warning.
func New(categories map[string][]string, fallback string) (*Table, error) {
	fallback = util.Capitalize(strings.TrimSpace(fallback))
	if fallback == "" {
		return nil, errors.New("category: default category name is empty")
	}

	t := &Table{
		index:    make(map[string]string),
		fallback: fallback,
	}

	// Deterministic registration order, so duplicate overwrites are reproducible.
	names := lo.Keys(categories)
	sort.Strings(names)

	for _, raw := range names {
		name := util.Capitalize(strings.TrimSpace(raw))
		if name == "" {
			return nil, errors.New("category: category with empty name")
		}

		for _, ext := range categories[raw] {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
				return nil, fmt.Errorf("category %s: malformed extension %q", name, ext)
			}

			if prev, ok := t.index[ext]; ok && prev != name {
				log.Warnf("extension %s re-registered: %s overrides %s", ext, name, prev)
			}
			t.index[ext] = name
		}

		t.names = append(t.names, name)
	}

	if !lo.Contains(t.names, fallback) {
		t.names = append(t.names, fallback)
	}

	return t, nil
}

// Resolve maps a file extension to its category name.
// Extensions are lowercased before lookup; unknown or empty extensions fall
// back to the default category. Resolution always succeeds with a value.
func (t *Table) Resolve(ext string) string {
	if name, ok := t.index[strings.ToLower(ext)]; ok {
		return name
	}
	return t.fallback
}

// Names returns every category name the table can resolve to, including the
// fallback, in registration order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Fallback returns the default category name.
func (t *Table) Fallback() string {
	return t.fallback
}
