package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"reflectionlesson/internal/domain"
)

type slideRepository struct {
	DB *sql.DB
}

// NewSlideRepository returns a domain.SlideSource that reads the lesson from the
// lesson_slides table, ordered by position.
func NewSlideRepository(db *sql.DB) domain.SlideSource {
	return &slideRepository{DB: db}
}

func (r *slideRepository) LoadSlides(ctx context.Context) ([]domain.Slide, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT description FROM lesson_slides ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query lesson slides: %w", err)
	}
	defer rows.Close()

	var slides []domain.Slide
	for rows.Next() {
		var s domain.Slide
		if err := rows.Scan(&s.Description); err != nil {
			return nil, fmt.Errorf("scan lesson slide: %w", err)
		}
		slides = append(slides, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lesson slides: %w", err)
	}
	if len(slides) == 0 {
		return nil, domain.ErrEmptySequence
	}
	return slides, nil
}
