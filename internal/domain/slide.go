package domain

import "context"

// Slide is the content shown for one stage of the lesson.
// swagger:model Slide
type Slide struct {
	Description string `json:"description"`
}

// SlideSequence is the ordered, read-only list of slides that make up a lesson.
// It always holds at least one slide and is safe for concurrent use.
type SlideSequence struct {
	slides []Slide
}

// NewSlideSequence copies slides into a new SlideSequence.
// It returns ErrEmptySequence if slides is empty.
func NewSlideSequence(slides []Slide) (SlideSequence, error) {
	if len(slides) == 0 {
		return SlideSequence{}, ErrEmptySequence
	}
	cp := make([]Slide, len(slides))
	copy(cp, slides)
	return SlideSequence{slides: cp}, nil
}

// Len returns the number of slides.
func (s SlideSequence) Len() int {
	return len(s.slides)
}

// At returns the slide at index i. Callers must keep i within [0, Len()).
func (s SlideSequence) At(i int) Slide {
	return s.slides[i]
}

// Slides returns a copy of the slides in order.
func (s SlideSequence) Slides() []Slide {
	cp := make([]Slide, len(s.slides))
	copy(cp, s.slides)
	return cp
}

// SlideSource loads the lesson slides. It is called once at startup.
type SlideSource interface {
	LoadSlides(ctx context.Context) ([]Slide, error)
}

// SlideSummarizer reduces a slide description to a short plain-text summary.
type SlideSummarizer interface {
	Summarize(description string) string
}
