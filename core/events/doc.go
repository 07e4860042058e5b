// Package events defines the optimization lifecycle events emitted on the
// event bus.
//
// Available event types:
//   - RunStartedEvent: a run was initialized and the initial schedule scored
//   - ImprovementEvent: the run recorded a new best score
//   - RunCompletedEvent: the run terminated
package events
