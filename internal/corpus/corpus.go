// Package corpus loads the reference text the FAQ model answers from.
package corpus

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/afero"
)

// DefaultText is served when the reference file cannot be read.
const DefaultText = "Gisu Safaris is East Africa's premier safari company based in Kampala, Uganda. " +
	"We offer wildlife, adventure and cultural experiences across Uganda, Kenya, Tanzania and Rwanda."

type Source string

const (
	SourceFile    Source = "file"
	SourceDefault Source = "default"
)

// Corpus is the immutable reference text held for the process lifetime.
type Corpus struct {
	text   string
	source Source
	path   string
}

func (c Corpus) Text() string { return c.text }
func (c Corpus) Source() Source { return c.source }
func (c Corpus) Path() string { return c.path }

// Default returns a corpus holding DefaultText.
func Default() Corpus {
	return Corpus{text: DefaultText, source: SourceDefault}
}

// Load reads the corpus at path. It never fails: unreadable or blank files
// fall back to DefaultText.
func Load(fs afero.Fs, path string) Corpus {
	text, err := read(fs, path)
	if err != nil {
		slog.Warn("Falling back to default corpus", "path", path, "error", err)
		c := Default()
		c.path = path
		return c
	}

	slog.Info("Loaded reference corpus", "path", path, "bytes", len(text))
	return Corpus{text: text, source: SourceFile, path: path}
}

func read(fs afero.Fs, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("corpus path is empty")
	}
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("read corpus: %w", err)
	}
	if strings.TrimSpace(string(b)) == "" {
		return "", fmt.Errorf("corpus file %s is blank", path)
	}
	return string(b), nil
}
