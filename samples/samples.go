// Package samples generates the local sample files the walkthrough uploads: a plain text file and a
// minimal Word document.  When document generation is disabled or fails, a plain text stand-in is
// produced instead so the walkthrough always has two files to work with.
package samples

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	// TextFileName is the name of the plain text sample
	TextFileName = "sample1.txt"

	// DocFileName is the name of the Word document sample
	DocFileName = "sample2.docx"

	// FallbackFileName is produced in place of DocFileName when document generation is unavailable
	FallbackFileName = "sample2.txt"

	// DocHeading is the title of the generated Word document
	DocHeading = "Azure Blob Demo"

	textContent     = "This is a sample text file for Azure Blob Storage testing."
	docBody         = "This is a sample Word document for blob upload testing."
	fallbackContent = "Sample document content (as .txt since document generation is unavailable)"
)

// Generator creates the sample files in Dir.  Existing files are left untouched, so repeated runs
// reuse whatever a previous run produced.
type Generator struct {
	// Dir is the directory the samples are written to.  Empty means the current directory.
	Dir string

	// TextOnly skips document generation entirely and produces the plain text fallback.
	TextOnly bool

	// WriteDoc writes the Word document to the given path.  Defaults to WriteMinimalDoc; tests
	// substitute it to force the fallback path.
	WriteDoc func(path string) error

	// Log receives a line per created file.  Defaults to a disabled logger.
	Log zerolog.Logger
}

// Ensure creates any missing sample files and returns the names, in upload order, of the files that
// exist when it returns.  The second name is DocFileName or FallbackFileName depending on whether
// document generation succeeded.
func (g *Generator) Ensure() ([]string, error) {
	if err := g.ensureText(); err != nil {
		return nil, err
	}

	docName, err := g.ensureDoc()
	if err != nil {
		return nil, err
	}

	return []string{TextFileName, docName}, nil
}

func (g *Generator) ensureText() error {
	path := filepath.Join(g.Dir, TextFileName)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(textContent), 0o644); err != nil {
		return fmt.Errorf("create %s: %w", TextFileName, err)
	}
	g.Log.Info().Str("file", TextFileName).Msg("created sample file")
	return nil
}

func (g *Generator) ensureDoc() (string, error) {
	docPath := filepath.Join(g.Dir, DocFileName)
	if _, err := os.Stat(docPath); err == nil {
		return DocFileName, nil
	}

	if !g.TextOnly {
		writeDoc := g.WriteDoc
		if writeDoc == nil {
			writeDoc = func(path string) error {
				return WriteMinimalDoc(path, DocHeading, docBody)
			}
		}

		err := writeDoc(docPath)
		if err == nil {
			g.Log.Info().Str("file", DocFileName).Msg("created sample file")
			return DocFileName, nil
		}
		g.Log.Warn().Err(err).Str("file", DocFileName).Msg("document generation failed, falling back to plain text")
		// a partial document must not survive the fallback
		_ = os.Remove(docPath)
	}

	fallbackPath := filepath.Join(g.Dir, FallbackFileName)
	if _, err := os.Stat(fallbackPath); err == nil {
		return FallbackFileName, nil
	}
	if err := os.WriteFile(fallbackPath, []byte(fallbackContent), 0o644); err != nil {
		return "", fmt.Errorf("create %s: %w", FallbackFileName, err)
	}
	g.Log.Info().Str("file", FallbackFileName).Msg("created fallback sample file")
	return FallbackFileName, nil
}

// ContentType returns the MIME type to use when uploading the named sample.
func ContentType(name string) string {
	switch filepath.Ext(name) {
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	default:
		return ""
	}
}
