package cli

import (
	"github.com/spf13/cobra"

	"hierarchy-remapper/internal/copier"
)

var (
	copyAllFlags pairFlags
	copyAllAxes  string
)

var copyAllCmd = &cobra.Command{
	Use:     "copy-all SCENE",
	Short:   "Copy transforms, active state and components in one go",
	Args:    cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error { return bindCopyFlags(cmd) },
	RunE:    runCopyAll,
}

func init() {
	copyAllFlags.register(copyAllCmd)
	addFamiliesFlag(copyAllCmd)
	copyAllCmd.Flags().StringVar(&copyAllAxes, "axes", "all", "transform properties to copy, e.g. position,rotation.y")
	rootCmd.AddCommand(copyAllCmd)
}

func runCopyAll(cmd *cobra.Command, args []string) error {
	axes, err := copier.ParseAxes(copyAllAxes)
	if err != nil {
		return err
	}

	s, src, dst, err := copyAllFlags.load(args[0])
	if err != nil {
		return err
	}

	opts, err := copyOptions()
	if err != nil {
		return err
	}

	opts.Axes = axes

	c, err := newCopier()
	if err != nil {
		return err
	}

	res, err := c.CopyAll(cmd.Context(), src, dst, opts)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), res)

	return saveScene(s, args[0], copyAllFlags.output)
}
