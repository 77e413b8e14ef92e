// Package prompts loads and formats the prompt templates shipped with the
// binary. Templates live in embedded JSON files keyed by name, with
// %-style placeholders filled in at call sites.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	cache   = make(map[string]string)
	cacheMu sync.RWMutex
	loaded  bool
)

// load reads every embedded prompt file into the cache once.
func load() error {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if loaded {
		return nil
	}

	entries, err := promptFiles.ReadDir(".")
	if err != nil {
		return fmt.Errorf("failed to read embedded prompts: %w", err)
	}

	for _, entry := range entries {
		data, err := promptFiles.ReadFile(entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read prompt file %s: %w", entry.Name(), err)
		}
		var prompts map[string]string
		if err := json.Unmarshal(data, &prompts); err != nil {
			return fmt.Errorf("failed to parse prompt file %s: %w", entry.Name(), err)
		}
		for name, text := range prompts {
			cache[name] = text
		}
	}

	loaded = true
	return nil
}

// Get returns the prompt template with the given name.
func Get(name string) (string, error) {
	if err := load(); err != nil {
		return "", err
	}
	cacheMu.RLock()
	defer cacheMu.RUnlock()
	text, ok := cache[name]
	if !ok {
		return "", fmt.Errorf("prompt %q not found", name)
	}
	return text, nil
}

// MustGet returns the prompt template with the given name and panics when
// it is missing. Use only for prompts known to be embedded.
func MustGet(name string) string {
	text, err := Get(name)
	if err != nil {
		panic(err)
	}
	return text
}

// Format fills a named prompt template with fmt-style arguments.
func Format(name string, args ...interface{}) (string, error) {
	text, err := Get(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(text, args...), nil
}
