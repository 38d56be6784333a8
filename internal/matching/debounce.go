package matching

import (
	"context"
	"sync"
	"time"

	"ridepool/internal/models"
	"ridepool/internal/utils"
)

// Searcher is anything that can resolve a search request to a result. Both
// the Matcher and the service layer around it satisfy this.
type Searcher interface {
	Search(ctx context.Context, req *models.SearchRequest) *models.MatchResult
}

// DebouncedSearcher serializes rapid-fire search requests from interactive
// input. A new request discards any not-yet-executed prior one, and a
// superseded search never delivers its result. At most one search is in
// flight per instance.
type DebouncedSearcher struct {
	searcher Searcher
	delay    time.Duration

	mu      sync.Mutex
	pending *pendingSearch
}

type pendingSearch struct {
	timer  *time.Timer
	cancel context.CancelFunc
}

func NewDebouncedSearcher(searcher Searcher, delay time.Duration) *DebouncedSearcher {
	if delay <= 0 {
		delay = utils.DefaultDebounceDelay
	}
	return &DebouncedSearcher{
		searcher: searcher,
		delay:    delay,
	}
}

// Search schedules req after the debounce delay and cancels any pending
// search. The deliver callback fires at most once, and only if this request
// is still the latest when its search completes.
func (d *DebouncedSearcher) Search(ctx context.Context, req *models.SearchRequest, deliver func(*models.MatchResult)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelPendingLocked()

	runCtx, cancel := context.WithCancel(ctx)
	p := &pendingSearch{cancel: cancel}
	p.timer = time.AfterFunc(d.delay, func() {
		defer cancel()

		// Cooperative cancellation check before the blocking fetch.
		if runCtx.Err() != nil {
			return
		}

		result := d.searcher.Search(runCtx, req)

		d.mu.Lock()
		superseded := d.pending != p || runCtx.Err() != nil
		if !superseded {
			d.pending = nil
		}
		d.mu.Unlock()

		if superseded {
			return
		}
		deliver(result)
	})
	d.pending = p
}

// Cancel discards the pending search, if any, without replacing it.
func (d *DebouncedSearcher) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelPendingLocked()
}

func (d *DebouncedSearcher) cancelPendingLocked() {
	if d.pending == nil {
		return
	}
	d.pending.timer.Stop()
	d.pending.cancel()
	d.pending = nil
}
