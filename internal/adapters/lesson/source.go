// Package lesson provides slide sources backed by JSON documents: the lesson
// embedded in the binary and lesson files on disk.
package lesson

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"reflectionlesson/internal/domain"
)

//go:embed lesson.json
var embeddedLesson []byte

// document is the on-disk and embedded lesson format.
type document struct {
	Slides []domain.Slide `json:"slides"`
}

type embeddedSource struct{}

// NewEmbeddedSource returns a SlideSource that serves the reflection lesson compiled into the binary.
func NewEmbeddedSource() domain.SlideSource {
	return embeddedSource{}
}

func (embeddedSource) LoadSlides(_ context.Context) ([]domain.Slide, error) {
	slides, err := decode(embeddedLesson)
	if err != nil {
		return nil, fmt.Errorf("embedded lesson: %w", err)
	}
	return slides, nil
}

type fileSource struct {
	path string
}

// NewFileSource returns a SlideSource that reads a JSON lesson document from path.
// The file is read on every LoadSlides call.
func NewFileSource(path string) domain.SlideSource {
	return &fileSource{path: path}
}

func (f *fileSource) LoadSlides(ctx context.Context) ([]domain.Slide, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read lesson file: %w", err)
	}
	slides, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("lesson file %s: %w", f.path, err)
	}
	return slides, nil
}

func decode(raw []byte) ([]domain.Slide, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode lesson: %w", err)
	}
	if len(doc.Slides) == 0 {
		return nil, domain.ErrEmptySequence
	}
	return doc.Slides, nil
}
