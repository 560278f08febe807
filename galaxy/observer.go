package galaxy

import "time"

// Stage names reported in StageEvent.
const (
	StageSample   = "sample"
	StageRepair   = "repair"
	StageRefine   = "refine"
	StageAssemble = "assemble"
)

// SegmentEvent is reported after a segment has been sampled, triangulated
// and filtered.
type SegmentEvent struct {
	// Workspace is the live workspace. Observers must not modify it.
	Workspace  *Workspace
	Segment    Segment
	Selection  Selection
	Sampled    int
	Attempts   int
	Candidates int
	Total      int
}

// StageEvent is reported when a pipeline stage finishes.
type StageEvent struct {
	Workspace  *Workspace
	Stage      string
	Elapsed    time.Duration
	Nodes      int
	Lanes      int
	Components int
	Bridges    int
	Forced     int
	Pruned     int
	Reinserted int
	Rejected   int
	Stripped   int
}

// Observer receives progress callbacks from Generate on the generating
// goroutine. Implementations should return quickly.
type Observer interface {
	SegmentDone(SegmentEvent)
	StageDone(StageEvent)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnSegment func(SegmentEvent)
	OnStage   func(StageEvent)
}

// SegmentDone implements Observer.
func (o ObserverFuncs) SegmentDone(e SegmentEvent) {
	if o.OnSegment != nil {
		o.OnSegment(e)
	}
}

// StageDone implements Observer.
func (o ObserverFuncs) StageDone(e StageEvent) {
	if o.OnStage != nil {
		o.OnStage(e)
	}
}
