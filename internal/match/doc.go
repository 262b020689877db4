// Package match provides node-name normalization, edit distance and
// ranked name suggestions.
//
// It is used to explain structural mismatches: when a destination tree has
// no child with the name a source path needs, the closest sibling names are
// offered as suggestions.
//
// Key functions:
//   - NormalizeName: folds a node name for fuzzy comparison
//   - Levenshtein: rune-wise edit distance
//   - Suggest: ranks candidate names against a wanted name
package match
