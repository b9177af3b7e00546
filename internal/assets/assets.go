// internal/assets/assets.go
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"go-typeball/internal/defs"
	"go-typeball/internal/words"

	"github.com/rs/zerolog"
)

//go:embed words.txt
var embeddedWords []byte

//go:embed courses.json
var embeddedCourses []byte

// Content is everything a game needs loaded before the first round.
type Content struct {
	Words   []string
	Courses *defs.CourseLibrary
}

// Manager loads content from disk when a path is set and falls back to the
// embedded defaults otherwise.
type Manager struct {
	WordBankPath string
	CoursesPath  string
	Log          zerolog.Logger
}

// Load reads the word bank and course library.
func (m *Manager) Load() (*Content, error) {
	wordsReader, closeWords, err := m.open(m.WordBankPath, embeddedWords)
	if err != nil {
		return nil, fmt.Errorf("open word bank: %w", err)
	}
	defer closeWords()
	list, err := words.Load(wordsReader)
	if err != nil {
		return nil, err
	}

	coursesReader, closeCourses, err := m.open(m.CoursesPath, embeddedCourses)
	if err != nil {
		return nil, fmt.Errorf("open course definitions: %w", err)
	}
	defer closeCourses()
	lib, err := defs.LoadCourseLibrary(coursesReader)
	if err != nil {
		return nil, err
	}

	m.Log.Info().
		Int("words", len(list)).
		Int("courses", len(lib.Courses)).
		Str("word_bank", sourceName(m.WordBankPath)).
		Str("course_file", sourceName(m.CoursesPath)).
		Msg("content loaded")
	return &Content{Words: list, Courses: lib}, nil
}

func (m *Manager) open(path string, fallback []byte) (io.Reader, func(), error) {
	if path == "" {
		return bytes.NewReader(fallback), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
