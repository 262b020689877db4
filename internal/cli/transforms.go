package cli

import (
	"github.com/spf13/cobra"

	"hierarchy-remapper/internal/copier"
)

var (
	transformsFlags pairFlags
	transformsAxes  string
)

var transformsCmd = &cobra.Command{
	Use:   "transforms SCENE",
	Short: "Copy local transforms of matching child nodes",
	Args:  cobra.ExactArgs(1),
	RunE:  runTransforms,
}

func init() {
	transformsFlags.register(transformsCmd)
	transformsCmd.Flags().StringVar(&transformsAxes, "axes", "all", "transform properties to copy, e.g. position,rotation.y,scale.xz")
	rootCmd.AddCommand(transformsCmd)
}

func runTransforms(cmd *cobra.Command, args []string) error {
	axes, err := copier.ParseAxes(transformsAxes)
	if err != nil {
		return err
	}

	s, src, dst, err := transformsFlags.load(args[0])
	if err != nil {
		return err
	}

	n, err := copier.New(copier.WithLogger(logger)).CopyTransforms(src, dst, axes)
	if err != nil {
		return err
	}

	printer.Fprintf(cmd.OutOrStdout(), "Copied %d transform(s)\n", n)

	return saveScene(s, args[0], transformsFlags.output)
}
