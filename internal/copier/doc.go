// Package copier replicates avatar setup from one object tree onto another:
// hierarchy, selected component families, transforms and active state.
// After components are copied their references are rewritten with the
// remap package so they point into the destination tree.
package copier
