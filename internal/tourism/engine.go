package tourism

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/pkordes/trip-planner/internal/domain"
)

// SampleSize is how many rows an unfiltered lookup returns.
const SampleSize = 10

// ErrTooFewRows is returned when an unfiltered lookup runs against a dataset
// smaller than SampleSize.
var ErrTooFewRows = errors.New("sample larger than population")

// Engine selects rows from a Source.
type Engine struct {
	src Source
}

// NewEngine returns an Engine over src.
func NewEngine(src Source) *Engine {
	return &Engine{src: src}
}

// Find reloads the dataset and returns the matching rows.
//
// A non-empty Spot selects rows whose spot name equals it; otherwise a
// non-empty Region selects rows whose region equals it; otherwise SampleSize
// distinct rows are drawn at random. Filtered results keep file order.
// The result is never nil.
func (e *Engine) Find(ctx context.Context, q domain.TourismQuery) ([]domain.TourismRecord, error) {
	records, err := e.src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("tourism.Engine.Find: %w", err)
	}

	if spot := lo.FromPtr(q.Spot); spot != "" {
		return lo.Filter(records, func(r domain.TourismRecord, _ int) bool {
			return r.Spot == spot
		}), nil
	}
	if region := lo.FromPtr(q.Region); region != "" {
		return lo.Filter(records, func(r domain.TourismRecord, _ int) bool {
			return r.Region == region
		}), nil
	}

	if len(records) < SampleSize {
		return nil, fmt.Errorf("tourism.Engine.Find: %w: need %d rows, dataset has %d",
			ErrTooFewRows, SampleSize, len(records))
	}
	// Sampling is without replacement; order is the draw order.
	return lo.Samples(records, SampleSize), nil
}
