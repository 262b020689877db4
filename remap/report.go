package remap

import (
	"fmt"

	"hierarchy-remapper/internal/diagnostic"
)

// Report summarizes one remap pass.
type Report struct {
	Components  int // components visited
	Fields      int // fields inspected, nested record fields included
	Remapped    int // references rewritten to the destination
	External    int // references left alone because they point outside the source
	Mismatched  int // source references with no destination counterpart
	Unsupported int // values of a shape the walker does not handle
	Failed      int // fields whose remapping panicked and was skipped

	Diagnostics diagnostic.Diagnostics
}

// Merge adds the counts and diagnostics of other to r.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}

	r.Components += other.Components
	r.Fields += other.Fields
	r.Remapped += other.Remapped
	r.External += other.External
	r.Mismatched += other.Mismatched
	r.Unsupported += other.Unsupported
	r.Failed += other.Failed
	r.Diagnostics.Merge(other.Diagnostics)
}

func (r *Report) String() string {
	return fmt.Sprintf("components=%d fields=%d remapped=%d external=%d mismatched=%d unsupported=%d failed=%d",
		r.Components, r.Fields, r.Remapped, r.External, r.Mismatched, r.Unsupported, r.Failed)
}
