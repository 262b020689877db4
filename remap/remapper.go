package remap

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/rs/zerolog"

	"hierarchy-remapper/internal/diagnostic"
	"hierarchy-remapper/internal/match"
	"hierarchy-remapper/internal/schema"
	"hierarchy-remapper/scene"
)

// Remapper rewrites source references to their destination counterparts.
// It keeps no state between calls and may be reused.
type Remapper struct {
	log         zerolog.Logger
	schema      *schema.Registry
	strict      bool
	suggestions int
}

// New creates a Remapper.
func New(opts ...Option) *Remapper {
	r := &Remapper{
		log:         zerolog.Nop(),
		suggestions: DefaultSuggestions,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Remap is RemapAll(dst, src, dst).
func (r *Remapper) Remap(src, dst *scene.Node) (*Report, error) {
	return r.RemapAll(dst, src, dst)
}

// RemapAll visits walkRoot and its descendants in pre-order and remaps every
// field of every attached component, resolving counterparts under dst.
//
// Only a nil tree argument, or a failed congruence check in strict mode,
// makes it return an error; in both cases nothing has been modified.
func (r *Remapper) RemapAll(walkRoot, src, dst *scene.Node) (*Report, error) {
	switch {
	case walkRoot == nil:
		return nil, missingTree("walk")
	case src == nil:
		return nil, missingTree("source")
	case dst == nil:
		return nil, missingTree("destination")
	}

	if r.strict {
		if missing := CheckCongruence(src, dst); len(missing) > 0 {
			return nil, &CongruenceError{Missing: missing}
		}
	}

	p := r.newPass(src, dst)
	p.log.Info().Str("walk", walkRoot.Name).Msg("remapping references")

	walkRoot.Walk(func(n *scene.Node) bool {
		for _, c := range n.Components() {
			p.component(c)
		}

		return true
	})

	p.finish()

	return p.report, nil
}

// RemapComponent remaps the fields of a single component.
func (r *Remapper) RemapComponent(c *scene.Component, src, dst *scene.Node) (*Report, error) {
	switch {
	case c == nil:
		return nil, fmt.Errorf("%w: component is nil", ErrMissingTree)
	case src == nil:
		return nil, missingTree("source")
	case dst == nil:
		return nil, missingTree("destination")
	}

	p := r.newPass(src, dst)
	p.component(c)
	p.finish()

	return p.report, nil
}

// RemapValue returns the remapped form of v and whether anything changed.
// v itself is never modified: arrays, lists and records are copied on write.
func (r *Remapper) RemapValue(v scene.Value, src, dst *scene.Node) (scene.Value, bool) {
	if src == nil || dst == nil {
		return v, false
	}

	p := r.newPass(src, dst)

	return p.value(v, "")
}

// pass is the state of one invocation.
type pass struct {
	*Remapper

	src, dst *scene.Node
	log      zerolog.Logger
	report   *Report
	declared map[string]map[string]scene.Kind // per type; nil entry = unregistered

	node     string // destination node being visited, for diagnostics
	compType string
}

func (r *Remapper) newPass(src, dst *scene.Node) *pass {
	return &pass{
		Remapper: r,
		src:      src,
		dst:      dst,
		log:      r.log.With().Str("source", src.Name).Str("destination", dst.Name).Logger(),
		report:   &Report{},
		declared: make(map[string]map[string]scene.Kind),
	}
}

func (p *pass) finish() {
	if n := p.report.Unsupported; n > 0 {
		p.report.Diagnostics.AddInfo(diagnostic.CodeUnsupportedShape,
			fmt.Sprintf("%d field value(s) with unsupported shapes left unchanged", n))
	}

	p.log.Info().
		Int("components", p.report.Components).
		Int("remapped", p.report.Remapped).
		Int("external", p.report.External).
		Int("mismatched", p.report.Mismatched).
		Int("unsupported", p.report.Unsupported).
		Int("failed", p.report.Failed).
		Msg("remap finished")
}

func (p *pass) component(c *scene.Component) {
	p.report.Components++
	p.compType = c.Type
	p.node = ""

	if owner := c.Owner(); owner != nil {
		p.node = scene.AbsolutePath(owner).String()
	}

	if rec, changed := p.record(c.Fields, c.Type, ""); changed {
		c.Fields = rec
	}
}

// declaredKinds returns the registered field kinds of typ, or nil when typ
// is not registered.
func (p *pass) declaredKinds(typ string) map[string]scene.Kind {
	if p.schema == nil || typ == "" {
		return nil
	}

	if kinds, cached := p.declared[typ]; cached {
		return kinds
	}

	var kinds map[string]scene.Kind

	if fields, err := p.schema.Fields(typ); err == nil {
		kinds = make(map[string]scene.Kind, len(fields))
		for _, f := range fields {
			kinds[f.Name] = f.Kind
		}
	}

	p.declared[typ] = kinds

	return kinds
}

// record remaps every field of rec and returns the updated record.
func (p *pass) record(rec scene.Record, typ, prefix string) (scene.Record, bool) {
	declared := p.declaredKinds(typ)

	out := rec
	changed := false

	for i, f := range rec.Fields {
		path := joinField(prefix, f.Name)

		if declared != nil {
			kind, ok := declared[f.Name]
			if !ok || kind == scene.KindScalar {
				continue
			}

			if f.Value != nil && f.Value.Kind() != kind {
				p.report.Unsupported++
				p.report.Diagnostics.AddWarning(diagnostic.CodeShapeConflict,
					fmt.Sprintf("declared %s, found %s", kind.Name(), f.Value.Kind().Name()),
					p.node, p.compType, path)

				continue
			}
		}

		p.report.Fields++

		nv, ok := p.field(f.Value, path)
		if !ok {
			continue
		}

		if !changed {
			out = scene.Record{Type: rec.Type, Fields: slices.Clone(rec.Fields)}
			changed = true
		}

		out.Fields[i].Value = nv
	}

	return out, changed
}

// field remaps one field value. A panic is recorded and the field is left as it was.
func (p *pass) field(v scene.Value, path string) (scene.Value, bool) {
	var (
		nv      scene.Value
		changed bool
	)

	if p.guarded(path, func() { nv, changed = p.value(v, path) }) {
		return nil, false
	}

	return nv, changed
}

// guarded runs fn and reports whether it panicked. A panic is counted as
// Failed and recorded against path.
func (p *pass) guarded(path string, fn func()) (failed bool) {
	defer func() {
		if rec := recover(); rec != nil {
			p.report.Failed++
			p.report.Diagnostics.AddError(diagnostic.CodeFieldFailed, fmt.Sprint(rec), p.node, p.compType, path)
			p.log.Error().Str("node", p.node).Str("component", p.compType).Str("field", path).
				Interface("panic", rec).Msg("field remap failed")

			failed = true
		}
	}()

	fn()

	return false
}

func (p *pass) value(v scene.Value, path string) (scene.Value, bool) {
	switch val := v.(type) {
	case scene.Ref:
		if obj, ok := p.object(val.Target, path); ok {
			return scene.Ref{Target: obj}, true
		}
	case scene.Array:
		if out, ok := p.elements(val, path); ok {
			return scene.Array(out), true
		}
	case scene.List:
		if out, ok := p.elements(val, path); ok {
			return scene.List(out), true
		}
	case scene.Record:
		if out, ok := p.record(val, val.Type, path); ok {
			return out, true
		}
	case scene.Opaque:
		p.report.Unsupported++
	}

	return v, false
}

// elements remaps references element-wise, copying the slice on first write.
func (p *pass) elements(elems []scene.Object, path string) ([]scene.Object, bool) {
	var out []scene.Object

	for i, e := range elems {
		elemPath := path + "[" + strconv.Itoa(i) + "]"

		var (
			obj scene.Object
			ok  bool
		)

		// a failed element stays as it was; the others are still remapped
		if p.guarded(elemPath, func() { obj, ok = p.object(e, elemPath) }) || !ok {
			continue
		}

		if out == nil {
			out = slices.Clone(elems)
		}

		out[i] = obj
	}

	return out, out != nil
}

func (p *pass) object(ref scene.Object, path string) (scene.Object, bool) {
	obj, oc := resolve(ref, p.src, p.dst)

	switch oc {
	case outcomeRemapped:
		p.report.Remapped++
		p.log.Debug().Str("node", p.node).Str("component", p.compType).Str("field", path).Msg("reference remapped")

		return obj, true
	case outcomeExternal:
		p.report.External++
	case outcomeMismatch:
		p.report.Mismatched++
		p.mismatch(ref, path)
	case outcomeMissingComponent:
		p.report.Mismatched++

		target := ref.(*scene.Component)
		rel, _ := scene.RelativePath(p.src, target.Owner())
		p.report.Diagnostics.AddWarning(diagnostic.CodeMissingComponent,
			fmt.Sprintf("destination node %q has no %s component", displayPath(rel), target.Type),
			p.node, p.compType, path)
	case outcomeUnsupported:
		p.report.Unsupported++
	}

	return nil, false
}

// mismatch records a structural mismatch with the closest sibling names at
// the level where resolution stopped.
func (p *pass) mismatch(ref scene.Object, path string) {
	rel, _ := scene.RelativePath(p.src, ref.Owner())
	deepest, depth := scene.ResolvePrefix(p.dst, rel)

	d := diagnostic.Diagnostic{
		Severity:  diagnostic.SeverityWarning,
		Code:      diagnostic.CodeStructuralMismatch,
		Node:      p.node,
		Component: p.compType,
		Field:     path,
		Message: fmt.Sprintf("no counterpart for %q: %q has no child %q",
			rel.String(), displayPath(rel[:depth]), rel[depth]),
	}

	if p.suggestions > 0 {
		names := make([]string, 0, len(deepest.Children()))
		for _, c := range deepest.Children() {
			names = append(names, c.Name)
		}

		d.Suggestions = match.Suggest(rel[depth], names, p.suggestions)
	}

	p.report.Diagnostics.Add(d)
	p.log.Debug().Str("node", p.node).Str("component", p.compType).Str("field", path).
		Stringer("path", rel).Msg("no destination counterpart")
}

func displayPath(p scene.Path) string {
	if len(p) == 0 {
		return "."
	}

	return p.String()
}

func joinField(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}
