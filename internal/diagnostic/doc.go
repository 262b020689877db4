// Package diagnostic provides structured warnings, errors, and
// informational notes collected while remapping and copying hierarchies.
//
// Key capabilities:
//   - Structural mismatch warnings with closest-name suggestions
//   - Recovered per-field failures that did not abort a pass
//   - Aggregate notes (e.g. fields with unsupported shapes)
package diagnostic
