package cli

import (
	"github.com/spf13/cobra"

	"hierarchy-remapper/internal/copier"
)

var copyFlags pairFlags

var copyCmd = &cobra.Command{
	Use:   "copy SCENE",
	Short: "Copy component families from one tree to another and remap their references",
	Long: `Copy replicates the source hierarchy under the destination (only branches
holding selected components unless --transform is set), copies the selected
component families node by node and finally remaps every reference that still
points into the source.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error { return bindCopyFlags(cmd) },
	RunE:    runCopy,
}

func init() {
	copyFlags.register(copyCmd)
	addFamiliesFlag(copyCmd)
	copyCmd.Flags().Bool("transform", false, "also copy local transforms and replicate every branch")
	rootCmd.AddCommand(copyCmd)
}

func copyOptions() (copier.Options, error) {
	fam, err := families()
	if err != nil {
		return copier.Options{}, err
	}

	return copier.Options{Families: fam, CopyTransform: settings().CopyTransform}, nil
}

func runCopy(cmd *cobra.Command, args []string) error {
	s, src, dst, err := copyFlags.load(args[0])
	if err != nil {
		return err
	}

	opts, err := copyOptions()
	if err != nil {
		return err
	}

	c, err := newCopier()
	if err != nil {
		return err
	}

	res, err := c.CopyComponents(cmd.Context(), src, dst, opts)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), res)

	return saveScene(s, args[0], copyFlags.output)
}
