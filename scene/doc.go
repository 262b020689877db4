// Package scene models the host object graph the remapper works on.
//
// A scene is a forest of Node trees. Every Node carries an ordered list of
// children and an ordered list of attached Components; a Component holds its
// data as a Record of named fields. Field values come from a closed set of
// shapes (see Kind), so callers dispatch on the variant instead of inspecting
// arbitrary types at runtime.
//
// Key types:
//   - Node: named hierarchy node, identity is pointer identity
//   - Component: typed record attached to exactly one Node
//   - Asset: object living outside every tree (shared project asset)
//   - Object: anything a reference field can point at
//   - Path: slash-delimited child-name path between two nodes
package scene
