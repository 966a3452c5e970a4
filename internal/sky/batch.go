package sky

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/litescript/ls-stargazer/internal/astro"
	"github.com/litescript/ls-stargazer/internal/catalog"
)

// VisibleStarsParallel is VisibleStars with the per-star work fanned out
// across a worker pool. Results are identical to the sequential pass,
// including order: each worker writes into its row's slot and the final
// assembly walks the slots in catalog order.
//
// workers <= 0 selects one worker per CPU. The context cancels the pass
// between rows; a cancelled pass returns ctx.Err() and no results.
func VisibleStarsParallel(ctx context.Context, stars []catalog.Star, obs astro.Observer, t time.Time, magLimit float64, workers int) ([]VisibleStar, Report, error) {
	if err := obs.Validate(); err != nil {
		return nil, Report{}, fmt.Errorf("invalid observer: %w", err)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	lst := astro.LocalSiderealTime(t, obs.LonDeg)

	type slot struct {
		star   VisibleStar
		status starStatus
	}
	slots := make([]slot, len(stars))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				vs, status := evalStar(stars[i], obs, lst, magLimit)
				slots[i] = slot{star: vs, status: status}
			}
		}()
	}

	feed := func() error {
		defer close(jobs)
		for i := range stars {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	}

	err := feed()
	wg.Wait()
	if err != nil {
		return nil, Report{}, err
	}

	report := Report{Total: len(stars), LSTDeg: lst}
	visible := make([]VisibleStar, 0, len(stars))
	for _, s := range slots {
		switch s.status {
		case statusSkipped:
			report.Skipped++
		case statusBelowHorizon:
			report.Candidates++
		case statusVisible:
			report.Candidates++
			visible = append(visible, s.star)
		}
	}

	return visible, report, nil
}
