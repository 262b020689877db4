package cli

import (
	"github.com/spf13/cobra"

	"hierarchy-remapper/scene"
)

var (
	remapFlags pairFlags
	remapWalk  string
)

var remapCmd = &cobra.Command{
	Use:   "remap SCENE",
	Short: "Rewrite references into the source tree so they point into the destination",
	Long: `Remap visits every component under the walk root (the destination by
default) and replaces each reference into the source tree with the object at
the same relative path under the destination. References that leave the source,
and references without a counterpart, are left unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemap,
}

func init() {
	remapFlags.register(remapCmd)
	remapCmd.Flags().StringVar(&remapWalk, "walk", "", "only remap components under this node (default: the destination)")
	rootCmd.AddCommand(remapCmd)
}

func runRemap(cmd *cobra.Command, args []string) error {
	s, src, dst, err := remapFlags.load(args[0])
	if err != nil {
		return err
	}

	walk := dst
	if remapWalk != "" {
		if walk, err = resolveNode(s, remapWalk); err != nil {
			return err
		}
	}

	r, err := newRemapper()
	if err != nil {
		return err
	}

	logger.Info().Str("walk", scene.AbsolutePath(walk).String()).Msg("Remapping references")

	report, err := r.RemapAll(walk, src, dst)
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), report)

	return saveScene(s, args[0], remapFlags.output)
}
