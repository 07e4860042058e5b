package events

import (
	"time"

	"github.com/burnwise/burnsched/core/model"
)

// RunStartedEvent is published when an optimization run begins.
type RunStartedEvent struct {
	RunID        string
	Events       int
	InitialScore float64
}

// ImprovementEvent is published whenever a run records a new best score.
type ImprovementEvent struct {
	RunID       string
	Iteration   int
	Score       float64
	Temperature float64
}

// RunCompletedEvent is published when an optimization run terminates. It
// carries the full run summary so observers need no other record of the run.
type RunCompletedEvent struct {
	RunID        string
	Best         model.Schedule
	BestScore    float64
	InitialScore float64
	Iterations   int
	Duration     time.Duration
}
