package copier

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"hierarchy-remapper/remap"
	"hierarchy-remapper/scene"
)

var (
	ErrMissingRoot = errors.New("source and destination roots are required")
	ErrNoFamilies  = errors.New("select at least one component family or transform copy")
	ErrNestedTrees = errors.New("source and destination trees overlap")
)

// Options selects what CopyComponents and CopyAll copy.
type Options struct {
	Families Family

	// CopyTransform also overwrites the local transform of every matched
	// destination node, root included, and replicates every source branch
	// instead of only those holding selected components.
	CopyTransform bool

	// Axes used by the transform step of CopyAll. Zero means AllAxes.
	Axes AxisMask
}

// Result counts what a copy changed.
type Result struct {
	Created    int // destination nodes created
	Added      int // components added
	Updated    int // existing components overwritten
	Transforms int // transforms written
	Activated  int // nodes whose active flag was synced
	Remap      *remap.Report
}

// Copier runs copy operations between two trees.
type Copier struct {
	log      zerolog.Logger
	remapper *remap.Remapper
}

type Option func(*Copier)

func WithLogger(log zerolog.Logger) Option {
	return func(c *Copier) { c.log = log }
}

// WithRemapper sets the remapper used by the third copy pass. The default
// is remap.New with the copier's logger.
func WithRemapper(r *remap.Remapper) Option {
	return func(c *Copier) { c.remapper = r }
}

func New(opts ...Option) *Copier {
	c := &Copier{log: zerolog.Nop()}

	for _, opt := range opts {
		opt(c)
	}

	if c.remapper == nil {
		c.remapper = remap.New(remap.WithLogger(c.log))
	}

	return c
}

// CopyComponents copies the selected component families from src onto dst in
// three passes:
//
//  1. replicate the source hierarchy under dst, creating missing nodes
//  2. copy components node by node, overwriting a same-type component when
//     one exists and adding one otherwise
//  3. remap every reference in dst that still points into src
//
// Nodes are matched by the first child with the same name. ctx is checked
// between passes; on cancellation the partial result is returned.
func (c *Copier) CopyComponents(ctx context.Context, src, dst *scene.Node, opts Options) (*Result, error) {
	if err := check(src, dst, opts); err != nil {
		return nil, err
	}

	res := &Result{}
	if err := c.copyComponents(ctx, src, dst, opts, res); err != nil {
		return res, err
	}

	return res, nil
}

func check(src, dst *scene.Node, opts Options) error {
	if src == nil || dst == nil {
		return ErrMissingRoot
	}

	// replicating into a descendant of the source would never finish
	if dst.IsDescendantOf(src) || src.IsDescendantOf(dst) {
		return fmt.Errorf("%w: %s and %s", ErrNestedTrees, scene.AbsolutePath(src), scene.AbsolutePath(dst))
	}

	if opts.Families == FamilyNone && !opts.CopyTransform {
		return ErrNoFamilies
	}

	return nil
}

func (c *Copier) copyComponents(ctx context.Context, src, dst *scene.Node, opts Options, res *Result) error {
	log := c.log.With().Str("op", "copy-components").Logger()
	log.Info().Msgf("Start copying from '%s' to '%s' (families %s)", src.Name, dst.Name, opts.Families)

	log.Info().Msg("Pass 1: replicating hierarchy")
	c.replicate(log, src, dst, opts, res)

	if err := interrupted(ctx, "hierarchy replication"); err != nil {
		return err
	}

	log.Info().Msg("Pass 2: copying components")
	c.copyNode(log, src, dst, opts, res)

	if err := interrupted(ctx, "component copy"); err != nil {
		return err
	}

	log.Info().Msg("Pass 3: remapping references")

	report, err := c.remapper.Remap(src, dst)
	if err != nil {
		return fmt.Errorf("failed to remap references: %w", err)
	}

	res.Remap = report

	log.Info().
		Int("created", res.Created).
		Int("added", res.Added).
		Int("updated", res.Updated).
		Int("remapped", report.Remapped).
		Msg("All passes completed")

	return nil
}

func interrupted(ctx context.Context, step string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("copy interrupted after %s: %w", step, err)
	}

	return nil
}

func (c *Copier) replicate(log zerolog.Logger, src, dst *scene.Node, opts Options, res *Result) {
	for _, child := range src.Children() {
		if !opts.CopyTransform && !hasSelected(child, opts.Families) {
			continue
		}

		target := dst.Find(child.Name)
		if target == nil {
			target = dst.NewChild(child.Name)
			target.Transform = child.Transform
			res.Created++

			log.Debug().Str("node", scene.AbsolutePath(target).String()).Msg("created node")
		}

		c.replicate(log, child, target, opts, res)
	}
}

// hasSelected reports whether n or any descendant carries a selected component.
func hasSelected(n *scene.Node, families Family) bool {
	found := false

	n.Walk(func(cur *scene.Node) bool {
		if found {
			return false
		}

		for _, comp := range cur.Components() {
			if Selected(comp.Type, families) {
				found = true
				return false
			}
		}

		return true
	})

	return found
}

func (c *Copier) copyNode(log zerolog.Logger, src, dst *scene.Node, opts Options, res *Result) {
	if opts.CopyTransform {
		dst.Transform = src.Transform
		res.Transforms++
	}

	comps := slices.Clone(src.Components())
	slices.SortStableFunc(comps, func(a, b *scene.Component) int {
		return priority(a.Type) - priority(b.Type)
	})

	for _, comp := range comps {
		if !Selected(comp.Type, opts.Families) {
			continue
		}

		if existing := dst.Component(comp.Type); existing != nil {
			existing.Fields = comp.Fields.Clone()
			res.Updated++

			log.Debug().Str("node", dst.Name).Str("type", comp.Type).Msg("updated component")

			continue
		}

		dst.AddComponent(comp.Type, comp.Fields.Clone())
		res.Added++

		log.Debug().Str("node", dst.Name).Str("type", comp.Type).Msg("added component")
	}

	for _, child := range src.Children() {
		if target := dst.Find(child.Name); target != nil {
			c.copyNode(log, child, target, opts, res)
		}
	}
}

// CopyTransforms copies the selected axes of every source child's local
// transform onto its destination counterpart, recursively. The roots
// themselves are left alone. It returns the number of transforms written.
func (c *Copier) CopyTransforms(src, dst *scene.Node, axes AxisMask) (int, error) {
	if src == nil || dst == nil {
		return 0, ErrMissingRoot
	}

	n := copyTransforms(src, dst, axes)
	c.log.Info().Str("op", "copy-transforms").Int("transforms", n).Msg("Complete")

	return n, nil
}

func copyTransforms(src, dst *scene.Node, axes AxisMask) int {
	n := 0

	for _, child := range src.Children() {
		target := dst.Find(child.Name)
		if target == nil {
			continue
		}

		target.Transform = axes.apply(target.Transform, child.Transform)
		n++
		n += copyTransforms(child, target, axes)
	}

	return n
}

// SyncActiveState makes the active flag of dst and every matched descendant
// equal to its source counterpart. Source nodes without a counterpart are
// ignored. It returns the number of nodes synced.
func (c *Copier) SyncActiveState(src, dst *scene.Node) (int, error) {
	if src == nil || dst == nil {
		return 0, ErrMissingRoot
	}

	n := syncActive(src, dst)
	c.log.Info().Str("op", "sync-active").Msgf("Synced active state of '%s' onto '%s' (%d nodes)", src.Name, dst.Name, n)

	return n, nil
}

func syncActive(src, dst *scene.Node) int {
	dst.Active = src.Active
	n := 1

	for _, child := range src.Children() {
		if target := dst.Find(child.Name); target != nil {
			n += syncActive(child, target)
		}
	}

	return n
}

// Removed describes a component taken off a node.
type Removed struct {
	Node string // absolute path of the node
	Type string
}

// RemoveComponents detaches every component of the selected families from
// root and its descendants.
func (c *Copier) RemoveComponents(root *scene.Node, families Family) ([]Removed, error) {
	if root == nil {
		return nil, ErrMissingRoot
	}

	if families == FamilyNone {
		return nil, ErrNoFamilies
	}

	log := c.log.With().Str("op", "remove").Logger()

	var removed []Removed

	root.Walk(func(n *scene.Node) bool {
		for _, comp := range slices.Clone(n.Components()) {
			if !Selected(comp.Type, families) {
				continue
			}

			n.RemoveComponent(comp)
			removed = append(removed, Removed{Node: scene.AbsolutePath(n).String(), Type: comp.Type})

			log.Debug().Msgf("Removed component '%s' from '%s'", comp.Type, n.Name)
		}

		return true
	})

	if len(removed) == 0 {
		log.Warn().Msg("No matching components found to remove")
	} else {
		log.Info().Msgf("Removed %d component(s) from the hierarchy", len(removed))
	}

	return removed, nil
}

// CopyAll runs the full setup copy: transforms, then active state, then
// components.
func (c *Copier) CopyAll(ctx context.Context, src, dst *scene.Node, opts Options) (*Result, error) {
	if err := check(src, dst, opts); err != nil {
		return nil, err
	}

	axes := opts.Axes
	if axes == 0 {
		axes = AllAxes
	}

	res := &Result{}
	res.Transforms += copyTransforms(src, dst, axes)
	res.Activated = syncActive(src, dst)

	if err := interrupted(ctx, "transform sync"); err != nil {
		return res, err
	}

	if err := c.copyComponents(ctx, src, dst, opts, res); err != nil {
		return res, err
	}

	return res, nil
}
