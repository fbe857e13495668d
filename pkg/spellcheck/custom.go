package spellcheck

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/zyedidia/generic/mapset"
)

const customWordsFileName = "custom_words.json"

var ErrEmptyWord = errors.New("word is empty")

// CustomWords are words the user added to the dictionary, persisted as a JSON array
type CustomWords struct {
	mu    sync.RWMutex
	path  string
	words mapset.Set[string]
}

// LoadCustomWords reads the custom words stored in storage. A missing file is not an error.
func LoadCustomWords(storage string) (*CustomWords, error) {
	c := &CustomWords{
		path:  filepath.Join(storage, customWordsFileName),
		words: mapset.New[string](),
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("failed to read custom words: %w", err)
	}

	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("failed to unmarshal custom words: %w", err)
	}

	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			c.words.Put(strings.ToLower(w))
		}
	}

	return c, nil
}

// Has reports whether word was added, ignoring case
func (c *CustomWords) Has(word string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.words.Has(strings.ToLower(word))
}

// Add stores word and writes the file. Adding an existing word is a no-op.
func (c *CustomWords) Add(word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return ErrEmptyWord
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.words.Has(word) {
		return nil
	}

	c.words.Put(word)

	if err := c.save(); err != nil {
		c.words.Remove(word)
		return err
	}

	return nil
}

// Words returns the custom words sorted alphabetically
func (c *CustomWords) Words() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.sorted()
}

func (c *CustomWords) sorted() []string {
	words := make([]string, 0, c.words.Size())
	c.words.Each(func(w string) {
		words = append(words, w)
	})
	slices.Sort(words)
	return words
}

func (c *CustomWords) save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	data, err := json.MarshalIndent(c.sorted(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal custom words: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write custom words: %w", err)
	}

	return nil
}
