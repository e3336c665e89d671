// Package services provides domain services that apply business rules spanning
// more than one aggregate of the cleaning marketplace.
//
// The package includes:
//   - Authorize and the Rule combinators: the single capability check every
//     use case runs against the calling principal
//   - JobRater: turns a completed job into a Rating and folds it into the
//     cleaner's running average
package services
