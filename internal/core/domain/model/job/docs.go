// Package job contains the CleaningJob aggregate and its lifecycle.
//
// A job belongs to one property and one booking window. It moves through
//
//	Open ──Claim──> Claimed ──Start──> InProgress ──Complete──> Completed
//	                   │                                 ▲
//	                   └───────────Complete──────────────┘
//
// Completion is gated on every checklist item being checked. Completed is final.
//
// Invariants enforced by the constructors and transitions:
//   - cleanerID is set iff status is Claimed, InProgress or Completed
//   - completedAt is set iff status is Completed
//   - a checklist item's checkedAt is set iff it is checked
package job
