package spellcheck

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zyedidia/generic/mapset"
)

const dictionaryExt = ".dic"

var ErrDictionaryNotFound = errors.New("dictionary not found")

// Dictionary is the word list of a single language
type Dictionary struct {
	language string
	words    mapset.Set[string]
	// byLength buckets words by rune count to narrow suggestion scans
	byLength map[int][]string
}

// LoadDictionary reads a Hunspell style word list. An optional first line holding
// the word count is skipped, affix flags after '/' are dropped and lines starting
// with '#' are ignored.
func LoadDictionary(language string, r io.Reader) (*Dictionary, error) {
	d := &Dictionary{
		language: language,
		words:    mapset.New[string](),
		byLength: make(map[int][]string),
	}

	scanner := bufio.NewScanner(r)
	first := true

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if first {
			first = false
			if _, err := strconv.Atoi(line); err == nil {
				continue
			}
		}

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word, _, _ := strings.Cut(line, "/")
		d.add(word)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s dictionary: %w", language, err)
	}

	for length := range d.byLength {
		slices.Sort(d.byLength[length])
	}

	return d, nil
}

// OpenDictionary loads <dir>/<language>.dic
func OpenDictionary(dir, language string) (*Dictionary, error) {
	path := filepath.Join(dir, language+dictionaryExt)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDictionaryNotFound, language)
		}
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	return LoadDictionary(language, f)
}

func (d *Dictionary) add(word string) {
	if word == "" || d.words.Has(word) {
		return
	}

	d.words.Put(word)
	// Suggest measures the lowercased misspelling, so bucket on the same form
	length := utf8.RuneCountInString(strings.ToLower(word))
	d.byLength[length] = append(d.byLength[length], word)
}

// Language returns the language code of the dictionary
func (d *Dictionary) Language() string {
	return d.language
}

// Size returns the number of words
func (d *Dictionary) Size() int {
	return d.words.Size()
}

// Has reports whether word is spelled correctly. Capitalised forms of lowercase
// entries are accepted.
func (d *Dictionary) Has(word string) bool {
	if word == "" {
		return false
	}

	if d.words.Has(word) {
		return true
	}

	return d.words.Has(strings.ToLower(word))
}

// Suggest returns up to limit corrections for word, closest first
func (d *Dictionary) Suggest(word string, limit int) []string {
	if word == "" || limit <= 0 {
		return nil
	}

	lower := strings.ToLower(word)
	length := utf8.RuneCountInString(lower)

	type candidate struct {
		word     string
		distance int
		prefix   int
	}

	var candidates []candidate
	for l := length - maxDistance; l <= length+maxDistance; l++ {
		for _, w := range d.byLength[l] {
			candidateWord := strings.ToLower(w)
			if candidateWord == lower {
				continue
			}

			distance := editDistance(lower, candidateWord)
			if distance > maxDistance {
				continue
			}

			candidates = append(candidates, candidate{
				word:     w,
				distance: distance,
				prefix:   commonPrefix(lower, candidateWord),
			})
		}
	}

	slices.SortFunc(candidates, func(a, b candidate) int {
		if a.distance != b.distance {
			return a.distance - b.distance
		}
		if a.prefix != b.prefix {
			return b.prefix - a.prefix
		}
		return strings.Compare(a.word, b.word)
	})

	suggestions := make([]string, 0, min(limit, len(candidates)))
	seen := make(map[string]bool)

	for _, c := range candidates {
		s := matchCase(word, c.word)
		if seen[s] {
			continue
		}
		seen[s] = true
		suggestions = append(suggestions, s)

		if len(suggestions) == limit {
			break
		}
	}

	return suggestions
}

// matchCase capitalises suggestion when the misspelled word was capitalised
func matchCase(word, suggestion string) string {
	first, _ := utf8.DecodeRuneInString(word)
	if !unicode.IsUpper(first) {
		return suggestion
	}

	if strings.ToUpper(word) == word && utf8.RuneCountInString(word) > 1 {
		return strings.ToUpper(suggestion)
	}

	r, size := utf8.DecodeRuneInString(suggestion)
	return string(unicode.ToUpper(r)) + suggestion[size:]
}
