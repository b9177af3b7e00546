// Package words keeps the closed word pool the rounds draw from.
//
// Every word is either available or used. Draws move a word from the
// available slice to the used slice; once nothing is available the used
// words become available again. No word is ever lost or duplicated.
package words

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"go-typeball/internal/types"
)

// Rand is the randomness the pool needs; *utils.PRNGService satisfies it.
type Rand interface {
	Intn(n int) int
}

// Source is the word pool.
type Source struct {
	available []string
	used      []string
	rng       Rand
}

// NewSource copies words into a fresh pool with everything available.
func NewSource(words []string, rng Rand) *Source {
	available := make([]string, len(words))
	copy(available, words)
	return &Source{
		available: available,
		used:      make([]string, 0, len(words)),
		rng:       rng,
	}
}

// Load reads a word bank: one word per line, line terminators stripped,
// blank lines skipped. Case and characters are kept as-is.
func Load(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(w) == "" {
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word bank: %w", err)
	}
	return out, nil
}

// Draw picks a random available word no longer than maxLength runes
// (maxLength <= 0 means any length) and marks it used.
// When no available word qualifies, the pool is left untouched and a
// *types.ContentExhaustedError is returned so the caller can relax the filter.
func (s *Source) Draw(maxLength int) (string, error) {
	if len(s.available) == 0 {
		s.recycle()
	}
	if len(s.available) == 0 {
		return "", &types.ContentExhaustedError{Source: "words"}
	}

	candidates := make([]int, 0, len(s.available))
	for i, w := range s.available {
		if maxLength <= 0 || utf8.RuneCountInString(w) <= maxLength {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return "", &types.ContentExhaustedError{
			Source: "words",
			Filter: fmt.Sprintf("length <= %d", maxLength),
		}
	}

	index := candidates[s.rng.Intn(len(candidates))]
	word := s.available[index]
	s.available = append(s.available[:index], s.available[index+1:]...)
	s.used = append(s.used, word)
	return word, nil
}

func (s *Source) recycle() {
	s.available, s.used = s.used, s.available[:0]
}

// Len is the pool size, constant across draws.
func (s *Source) Len() int { return len(s.available) + len(s.used) }

// Available is the number of words left before the next recycle.
func (s *Source) Available() int { return len(s.available) }

// Used is the number of words drawn since the last recycle.
func (s *Source) Used() int { return len(s.used) }
