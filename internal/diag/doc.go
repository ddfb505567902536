// Package diag defines the diagnostic model shared by the scan pipeline.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced
//     while scanning a bundle (rejected candidates, runaway protection).
//   - Offer light-weight utilities (Reporter, Bag) that let the scanner emit
//     diagnostics without coupling to storage or formatting layers.
//
// # Scope
//
// Package diag performs no formatting, IO, or CLI integration. Rendering
// lives in internal/diagfmt; collection and transport is the driver's job.
//
// Candidate rejections are informational: abandoning a candidate is the
// scanner's normal recovery path, not an error. The only warning the
// pipeline ever emits is ScanRunaway, raised when the step budget stops a
// scan early.
package diag
