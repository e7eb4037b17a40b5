// Package prompts holds the fixed text of the job drafting prompt.
// Fragments are stored as JSON files and embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// Set is the key to fragment mapping of one prompt file.
type Set map[string]string

var cache sync.Map // filename -> Set

// Load parses an embedded prompt file. Results are cached per file.
func Load(filename string) (Set, error) {
	if set, ok := cache.Load(filename); ok {
		return set.(Set), nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	actual, _ := cache.LoadOrStore(filename, set)
	return actual.(Set), nil
}

// Get retrieves the fragment stored under key in filename (e.g. "jobs.json").
func Get(filename, key string) (string, error) {
	set, err := Load(filename)
	if err != nil {
		return "", err
	}

	prompt, ok := set[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet is Get for fragments the binary cannot run without.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces {{.Key}} placeholders with values from data in a single pass,
// so substituted values are never expanded again. Unknown placeholders are kept.
func Format(template string, data map[string]string) string {
	if len(data) == 0 {
		return template
	}
	pairs := make([]string, 0, len(data)*2)
	for key, value := range data {
		pairs = append(pairs, "{{."+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// List returns the keys of a prompt file in sorted order.
func List(filename string) ([]string, error) {
	set, err := Load(filename)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// ClearCache drops parsed files.
func ClearCache() {
	cache.Range(func(key, _ any) bool {
		cache.Delete(key)
		return true
	})
}
