package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"hierarchy-remapper/scene"
)

var (
	inspectRoot string
	inspectDump bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect SCENE",
	Short: "Print the trees of a scene document",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectRoot, "root", "", "only print this tree, Root or Root/Child/...")
	inspectCmd.Flags().BoolVar(&inspectDump, "dump", false, "also dump component fields")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := loadScene(args[0])
	if err != nil {
		return err
	}

	roots := s.Roots
	if inspectRoot != "" {
		n, err := resolveNode(s, inspectRoot)
		if err != nil {
			return fmt.Errorf("--root: %w", err)
		}

		roots = []*scene.Node{n}
	}

	w := cmd.OutOrStdout()
	for _, r := range roots {
		writeTree(w, r)

		if inspectDump {
			dumpFields(w, r)
		}
	}

	if len(s.Assets) > 0 {
		names := make([]string, len(s.Assets))
		for i, a := range s.Assets {
			names[i] = a.Name
		}

		fmt.Fprintf(w, "assets: %s\n", strings.Join(names, ", "))
	}

	return nil
}

type treeLine struct {
	label string
	info  string
}

// writeTree prints one node per line, indented by depth, with component
// short names aligned in a second column. Widths are measured in terminal
// cells so that wide (CJK) node names line up.
func writeTree(w io.Writer, root *scene.Node) {
	var lines []treeLine

	depth := map[*scene.Node]int{root: 0}

	root.Walk(func(n *scene.Node) bool {
		d := depth[n]
		for _, c := range n.Children() {
			depth[c] = d + 1
		}

		label := strings.Repeat("  ", d) + n.Name
		if !n.Active {
			label += " (inactive)"
		}

		names := make([]string, len(n.Components()))
		for i, c := range n.Components() {
			names[i] = c.ShortName()
		}

		lines = append(lines, treeLine{label: label, info: strings.Join(names, ", ")})

		return true
	})

	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l.label))
	}

	for _, l := range lines {
		if l.info == "" {
			fmt.Fprintln(w, l.label)
			continue
		}

		fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(l.label, width), l.info)
	}
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                4,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// dumpFields prints the field values of every component under root.
// Reference targets are shown by path rather than expanded.
func dumpFields(w io.Writer, root *scene.Node) {
	root.Walk(func(n *scene.Node) bool {
		for _, c := range n.Components() {
			fmt.Fprintf(w, "%s#%s\n", scene.AbsolutePath(n), c.Type)

			for _, f := range c.Fields.Fields {
				fmt.Fprintf(w, "  %s: %s", f.Name, dumpConfig.Sdump(displayValue(f.Value)))
			}
		}

		return true
	})
}

// displayValue replaces reference targets with printable descriptions so the
// dump does not walk the whole graph.
func displayValue(v scene.Value) any {
	switch val := v.(type) {
	case scene.Scalar:
		return val.V
	case scene.Ref:
		return describe(val.Target)
	case scene.Array:
		return describeAll(val)
	case scene.List:
		return describeAll(val)
	case scene.Record:
		m := make(map[string]any, len(val.Fields))
		for _, f := range val.Fields {
			m[f.Name] = displayValue(f.Value)
		}

		return m
	case scene.Opaque:
		return val.V
	default:
		return nil
	}
}

func describeAll(objs []scene.Object) []string {
	out := make([]string, len(objs))
	for i, o := range objs {
		out[i] = describe(o)
	}

	return out
}

func describe(o scene.Object) string {
	if scene.IsNil(o) {
		return "null"
	}

	switch obj := o.(type) {
	case *scene.Node:
		return scene.AbsolutePath(obj).String()
	case *scene.Component:
		if owner := obj.Owner(); owner != nil {
			return scene.AbsolutePath(owner).String() + "#" + obj.Type
		}

		return "#" + obj.Type
	case *scene.Asset:
		return "asset:" + obj.Name
	default:
		return fmt.Sprintf("%T", o)
	}
}
