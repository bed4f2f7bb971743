// Package input loads puzzle input text for a given day.
package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

var ErrInputNotFound = errors.New("input file not found")

type Source interface {
	Read(day int) (string, error)
}

// FileSource reads <dir>/dayNN.txt unless the day has an explicit path.
type FileSource struct {
	dir       string
	overrides map[int]string
	logger    *zerolog.Logger
}

func NewFileSource(dir string, overrides map[int]string, logger *zerolog.Logger) *FileSource {
	return &FileSource{
		dir:       dir,
		overrides: overrides,
		logger:    logger,
	}
}

func (s *FileSource) Path(day int) string {
	if p, ok := s.overrides[day]; ok {
		return p
	}
	return filepath.Join(s.dir, fmt.Sprintf("day%02d.txt", day))
}

func (s *FileSource) Read(day int) (string, error) {
	path := s.Path(day)
	s.logger.Debug().Int("day", day).Str("file", path).Msg("reading input")
	return readFile(path)
}

// StaticSource serves the same file for every day. Used for --input.
type StaticSource struct {
	path string
}

func NewStaticSource(path string) *StaticSource {
	return &StaticSource{path: path}
}

func (s *StaticSource) Read(int) (string, error) {
	return readFile(s.path)
}

func readFile(path string) (string, error) {
	bytes, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", path, ErrInputNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("unable to read the input file %s: %w", path, err)
	}
	return strings.ReplaceAll(string(bytes), "\r\n", "\n"), nil
}
