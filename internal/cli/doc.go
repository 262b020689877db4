// Package cli implements the hierarchy-remapper command tree.
//
// Every scene command reads a scene document, operates on trees addressed
// as Root or Root/Child/... and writes the document back, in place unless
// --output is given.
package cli
