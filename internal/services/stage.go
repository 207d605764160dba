package services

import (
	"strconv"

	"reflectionlesson/internal/domain"
)

type stageService struct {
	slides     domain.SlideSequence
	summarizer domain.SlideSummarizer
}

// NewStageService returns a StageService over the given slide sequence.
// summarizer may be nil, in which case overview summaries are the raw descriptions.
func NewStageService(slides domain.SlideSequence, summarizer domain.SlideSummarizer) domain.StageService {
	return &stageService{
		slides:     slides,
		summarizer: summarizer,
	}
}

func (s *stageService) Resolve(rawIndex string) (*domain.PageView, error) {
	return ResolvePage(s.slides, rawIndex)
}

func (s *stageService) Overview() *domain.LessonOverview {
	n := s.slides.Len()
	stages := make([]domain.StageSummary, 0, n)
	for i := 0; i < n; i++ {
		desc := s.slides.At(i).Description
		if s.summarizer != nil {
			desc = s.summarizer.Summarize(desc)
		}
		stages = append(stages, domain.StageSummary{Index: i, Summary: desc})
	}
	return &domain.LessonOverview{
		StageCount: n,
		LastPage:   n - 1,
		Stages:     stages,
	}
}

// ResolvePage validates rawIndex against slides and computes the navigation fields.
// Only plain base-10 integers within [0, N) resolve; anything else is ErrNotFound.
//
// The second-to-last stage also reports IsLast.
func ResolvePage(slides domain.SlideSequence, rawIndex string) (*domain.PageView, error) {
	n := slides.Len()
	index, err := strconv.Atoi(rawIndex)
	if err != nil || index < 0 || index >= n {
		return nil, domain.ErrNotFound
	}

	isFirst := index == 0
	isLast := index == n-1 || index == n-2

	prev := index - 1
	if isFirst {
		prev = 0
	}
	next := index + 1
	if isLast {
		next = n - 1
	}

	return &domain.PageView{
		IsFirst:   isFirst,
		IsLast:    isLast,
		LastIndex: n - 1,
		Slide:     slides.At(index),
		PrevIndex: prev,
		Index:     index,
		NextIndex: next,
	}, nil
}
