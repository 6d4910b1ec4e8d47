// Package load tracks the remote-fetch lifecycle of a list, independent of
// its filter and pagination state.
package load

import "time"

// Phase is the stage of a remote fetch.
type Phase string

const (
	// Idle means no fetch was ever started; the sample set is shown.
	Idle Phase = "idle"
	// Loading means a fetch is in flight.
	Loading Phase = "loading"
	// Loaded means the last fetch replaced the collection.
	Loaded Phase = "loaded"
	// Failed means the last fetch failed and a fallback collection is shown.
	Failed Phase = "failed"
)

// Source names where the current collection came from.
type Source string

const (
	SourceSample   Source = "sample"
	SourceLedger   Source = "ledger"
	SourceSnapshot Source = "snapshot"
)

// State is the load status of one list.
type State struct {
	Phase     Phase
	Source    Source
	Error     string
	Records   int
	Rejected  int
	UpdatedAt time.Time
}

// Initial is the state of a list before its view is mounted.
func Initial(records int) State {
	return State{Phase: Idle, Source: SourceSample, Records: records}
}

// Start moves to Loading, keeping the current collection.
func (s State) Start(now time.Time) State {
	s.Phase = Loading
	s.Error = ""
	s.UpdatedAt = now
	return s
}

// Succeed moves to Loaded with a replaced collection.
func (s State) Succeed(src Source, records, rejected int, now time.Time) State {
	return State{Phase: Loaded, Source: src, Records: records, Rejected: rejected, UpdatedAt: now}
}

// Fail moves to Failed, recording the error and the fallback collection.
func (s State) Fail(err error, fallback Source, records int, now time.Time) State {
	return State{Phase: Failed, Source: fallback, Error: err.Error(), Records: records, UpdatedAt: now}
}

// Batch is one fetched collection after boundary validation.
type Batch[T any] struct {
	Records  []T
	Rejected int
}
