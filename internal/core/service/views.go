package service

import (
	"sync"
	"time"

	"github.com/storefront/gateway/internal/api/metrics"
	"github.com/storefront/gateway/internal/core/domain"
)

type tabView struct {
	state    domain.ViewState
	lastSeen time.Time
}

// ViewStates holds the transient UI state of every tab served by this process.
type ViewStates struct {
	mu   sync.Mutex
	tabs map[string]*tabView
	now  func() time.Time
}

func NewViewStates() *ViewStates {
	return &ViewStates{tabs: make(map[string]*tabView), now: time.Now}
}

// Get returns a snapshot of the tab's state; unknown tabs start unfiltered.
func (v *ViewStates) Get(tabID string) domain.ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.touch(tabID).state
}

// Update applies fn to the tab's state under the lock.
func (v *ViewStates) Update(tabID string, fn func(*domain.ViewState)) domain.ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	t := v.touch(tabID)
	fn(&t.state)
	return t.state
}

// Reset drops the tab's state.
func (v *ViewStates) Reset(tabID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.tabs, tabID)
	metrics.ActiveTabs.Set(float64(len(v.tabs)))
}

// Sweep drops tabs idle for longer than idle and returns their IDs.
func (v *ViewStates) Sweep(idle time.Duration) []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	cutoff := v.now().Add(-idle)
	var evicted []string
	for id, t := range v.tabs {
		if t.lastSeen.Before(cutoff) {
			delete(v.tabs, id)
			evicted = append(evicted, id)
		}
	}
	metrics.ActiveTabs.Set(float64(len(v.tabs)))
	return evicted
}

func (v *ViewStates) touch(tabID string) *tabView {
	t, ok := v.tabs[tabID]
	if !ok {
		t = &tabView{}
		v.tabs[tabID] = t
		metrics.ActiveTabs.Set(float64(len(v.tabs)))
	}
	t.lastSeen = v.now()
	return t
}
