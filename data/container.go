// Package data provides thread-safe storage for the active clinical ruleset.
// The RulesetContainer holds the knowledge base behind an atomic pointer so a
// guideline update swaps the whole snapshot with zero downtime while advisor
// runs keep reading the snapshot they started with.
package data

import (
	"sync/atomic"
	"time"

	"github.com/caregrid/advisor-api/interfaces"
	"github.com/caregrid/advisor-api/logging"
	"github.com/caregrid/advisor-api/ruleset"
)

// Compile-time check to ensure RulesetContainer implements RuleStore
var _ interfaces.RuleStore = (*RulesetContainer)(nil)

// RulesetContainer holds the active ruleset with atomic pointers for
// zero-downtime guideline swaps.
type RulesetContainer struct {
	rs              atomic.Value // *ruleset.Ruleset
	lastLoaded      atomic.Value // time.Time
	loading         atomic.Bool
	serverStartTime atomic.Value // time.Time
}

// NewRulesetContainer creates an empty container. Callers are expected to
// swap in a ruleset before serving traffic.
func NewRulesetContainer() *RulesetContainer {
	rc := &RulesetContainer{}
	rc.rs.Store((*ruleset.Ruleset)(nil))
	rc.lastLoaded.Store(time.Time{})
	rc.serverStartTime.Store(time.Time{})
	return rc
}

// GetRuleset returns the active ruleset snapshot, or nil before the first load.
func (rc *RulesetContainer) GetRuleset() *ruleset.Ruleset {
	if v := rc.rs.Load(); v != nil {
		if rs, ok := v.(*ruleset.Ruleset); ok {
			return rs
		}
	}

	logging.Warn("Ruleset is empty or invalid")
	return nil
}

// GetLastLoaded returns the timestamp of the last ruleset swap.
func (rc *RulesetContainer) GetLastLoaded() time.Time {
	if v := rc.lastLoaded.Load(); v != nil {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}

	logging.Warn("Could not get the last loaded value")
	return time.Time{}
}

// IsLoading returns true while a ruleset load is in progress.
func (rc *RulesetContainer) IsLoading() bool {
	return rc.loading.Load()
}

// SetServerStartTime sets the server start time.
func (rc *RulesetContainer) SetServerStartTime(t time.Time) {
	rc.serverStartTime.Store(t)
}

// GetServerStartTime returns the server start time.
func (rc *RulesetContainer) GetServerStartTime() time.Time {
	if v := rc.serverStartTime.Load(); v != nil {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}

	logging.Warn("Could not get the server start time value")
	return time.Time{}
}

// SwapRuleset atomically replaces the active ruleset.
func (rc *RulesetContainer) SwapRuleset(rs *ruleset.Ruleset) {
	rc.rs.Store(rs)
	rc.lastLoaded.Store(time.Now())
}

// BeginLoad marks the start of a ruleset load.
// Returns false when another load is already in progress.
func (rc *RulesetContainer) BeginLoad() bool {
	return rc.loading.CompareAndSwap(false, true)
}

// EndLoad marks the end of a ruleset load.
func (rc *RulesetContainer) EndLoad() {
	rc.loading.Store(false)
}
