package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hierarchy-remapper/internal/config"
	"hierarchy-remapper/internal/copier"
	"hierarchy-remapper/internal/sceneio"
	"hierarchy-remapper/internal/schema"
	"hierarchy-remapper/remap"
	"hierarchy-remapper/scene"
)

// pairFlags are the flags of commands working on a source and a destination tree.
type pairFlags struct {
	from   string
	to     string
	output string
}

func (f *pairFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "source tree, Root or Root/Child/...")
	cmd.Flags().StringVar(&f.to, "to", "", "destination tree, Root or Root/Child/...")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write the result here instead of overwriting the input")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

// load reads the scene document and resolves both trees.
func (f *pairFlags) load(path string) (*sceneio.Scene, *scene.Node, *scene.Node, error) {
	s, err := loadScene(path)
	if err != nil {
		return nil, nil, nil, err
	}

	src, err := resolveNode(s, f.from)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("--from: %w", err)
	}

	dst, err := resolveNode(s, f.to)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("--to: %w", err)
	}

	if src == dst {
		return nil, nil, nil, errors.New("--from and --to name the same tree")
	}

	return s, src, dst, nil
}

func loadScene(path string) (*sceneio.Scene, error) {
	s, err := sceneio.Load(path)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("file", path).Int("roots", len(s.Roots)).Msg("Scene loaded")

	return s, nil
}

func resolveNode(s *sceneio.Scene, arg string) (*scene.Node, error) {
	path, err := scene.ParsePath(arg)
	if err != nil {
		return nil, err
	}

	if len(path) == 0 {
		return nil, errors.New("empty node path")
	}

	root := s.Root(path[0])
	if root == nil {
		return nil, fmt.Errorf("no root named %q", path[0])
	}

	n := scene.ResolvePath(root, path[1:])
	if n == nil {
		return nil, fmt.Errorf("no node at %q", arg)
	}

	return n, nil
}

func saveScene(s *sceneio.Scene, input, output string) error {
	if output == "" {
		output = input
	}

	if err := sceneio.WriteFile(output, s); err != nil {
		return err
	}

	logger.Info().Str("file", output).Msg("Scene written")

	return nil
}

// bindCopyFlags binds the family and transform flags of cmd. Called from
// PreRunE because several commands declare the same flags.
func bindCopyFlags(cmd *cobra.Command) error {
	if f := cmd.Flags().Lookup("families"); f != nil {
		if err := viper.BindPFlag(config.KeyCopyFamilies, f); err != nil {
			return err
		}
	}

	if f := cmd.Flags().Lookup("transform"); f != nil {
		if err := viper.BindPFlag(config.KeyCopyTransform, f); err != nil {
			return err
		}
	}

	return nil
}

func addFamiliesFlag(cmd *cobra.Command) {
	cmd.Flags().StringSlice("families", []string{"vrc", "ma", "aao"}, "component families: vrc, ma, aao, all, none")
}

func families() (copier.Family, error) {
	return copier.ParseFamilies(settings().Families)
}

func newRemapper() (*remap.Remapper, error) {
	cfg := settings()

	opts := []remap.Option{
		remap.WithLogger(logger),
		remap.WithStrictCongruence(cfg.Strict),
		remap.WithSuggestions(cfg.Suggestions),
	}

	if cfg.SchemaFile != "" {
		reg, err := schema.Load(cfg.SchemaFile)
		if err != nil {
			return nil, err
		}

		opts = append(opts, remap.WithSchema(reg))
	}

	return remap.New(opts...), nil
}

func newCopier() (*copier.Copier, error) {
	r, err := newRemapper()
	if err != nil {
		return nil, err
	}

	return copier.New(copier.WithLogger(logger), copier.WithRemapper(r)), nil
}

func printReport(w io.Writer, r *remap.Report) {
	if r == nil {
		return
	}

	printer.Fprintf(w, "Remap: %d component(s), %d field(s): %d remapped, %d external, %d mismatched, %d unsupported, %d failed\n",
		r.Components, r.Fields, r.Remapped, r.External, r.Mismatched, r.Unsupported, r.Failed)

	for _, d := range r.Diagnostics.All() {
		fmt.Fprintf(w, "  %s %s\n", d.Severity, d)
	}
}

func printResult(w io.Writer, res *copier.Result) {
	printer.Fprintf(w, "Copy: %d node(s) created, %d component(s) added, %d updated, %d transform(s), %d active state(s)\n",
		res.Created, res.Added, res.Updated, res.Transforms, res.Activated)
	printReport(w, res.Remap)
}
