// Package enumdef models the compiled representation of enumerated types as
// the upstream bundler emits them, and knows how to decode it.
//
// # Purpose
//
//   - Define the data records shared across the pipeline: Definition (one
//     committed enum object) and Member (one key→literal pair).
//   - Validate a candidate interior against the two generated encodings
//     (numeric-valued and string-valued members).
//   - Extract the member table from a validated interior.
//
// # The two encodings
//
// A bundled enum arrives as an arrow IIFE assigned to its public root:
//
//	var n=(t=>(t[t.Num=123]="Num",t.Str="ABC",t))(n||{});
//
// Interior entries come in exactly two shapes, split on the separator:
//
//   - numeric member t[t.Key=LIT]="Key": reverse lookup plus value;
//   - string member t.Key="LIT": plain assignment, the value is quoted.
//
// Both end in a quote by construction. Anything else is not a generated
// enum and must be rejected whole: validation is binary, no partial credit.
//
// # Scope
//
// No scanning, no replacement, no IO. Locating candidates is
// internal/scanner's job; substitution lives in internal/rewrite.
package enumdef
