// Package remap rewrites references inside copied components so that they
// point into the destination hierarchy instead of the source one.
//
// After a hierarchy and its components have been copied from a source root
// to a structurally mirrored destination root, component fields still
// reference nodes and components of the source. RemapAll walks every
// component under the destination and, for each reference that belongs to
// the source subtree, looks up the node at the same relative path under the
// destination (and, for component references, the component of the same
// type on it).
//
// References that point outside the source subtree (shared assets, other
// scenes) are left untouched, as are references whose mirrored path does
// not exist in the destination. Neither case is an error; both are counted
// in the Report.
//
// Field shapes handled:
//   - single references (scene.Ref)
//   - fixed arrays and dynamic lists of references, element-wise
//   - nested value records, recursively
//
// Scalars are never touched and opaque host values are counted as
// unsupported.
package remap
