package remap

import (
	"github.com/rs/zerolog"

	"hierarchy-remapper/internal/schema"
)

// DefaultSuggestions is how many closest-name suggestions a structural
// mismatch diagnostic carries unless configured otherwise.
const DefaultSuggestions = 3

// Option configures a Remapper.
type Option func(*Remapper)

// WithLogger sets the logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Remapper) { r.log = log }
}

// WithSchema restricts registered component and record types to their
// declared fields and checks runtime shapes against the declarations.
func WithSchema(reg *schema.Registry) Option {
	return func(r *Remapper) { r.schema = reg }
}

// WithStrictCongruence makes RemapAll verify, before mutating anything, that
// every source node has a counterpart in the destination.
func WithStrictCongruence(strict bool) Option {
	return func(r *Remapper) { r.strict = strict }
}

// WithSuggestions sets how many sibling names are suggested for a
// structural mismatch. Zero disables suggestions.
func WithSuggestions(n int) Option {
	return func(r *Remapper) { r.suggestions = max(n, 0) }
}
