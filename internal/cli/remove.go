package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hierarchy-remapper/internal/copier"
)

var (
	removeRoot   string
	removeOutput string
)

var removeCmd = &cobra.Command{
	Use:     "remove SCENE",
	Short:   "Remove component families from a tree",
	Args:    cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error { return bindCopyFlags(cmd) },
	RunE:    runRemove,
}

func init() {
	removeCmd.Flags().StringVar(&removeRoot, "root", "", "tree to clean, Root or Root/Child/...")
	removeCmd.Flags().StringVarP(&removeOutput, "output", "o", "", "write the result here instead of overwriting the input")
	addFamiliesFlag(removeCmd)
	_ = removeCmd.MarkFlagRequired("root")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	fam, err := families()
	if err != nil {
		return err
	}

	s, err := loadScene(args[0])
	if err != nil {
		return err
	}

	root, err := resolveNode(s, removeRoot)
	if err != nil {
		return fmt.Errorf("--root: %w", err)
	}

	removed, err := copier.New(copier.WithLogger(logger)).RemoveComponents(root, fam)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, r := range removed {
		fmt.Fprintf(w, "  %s: %s\n", r.Node, r.Type)
	}

	printer.Fprintf(w, "Removed %d component(s)\n", len(removed))

	return saveScene(s, args[0], removeOutput)
}
