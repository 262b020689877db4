package cli

import (
	"github.com/spf13/cobra"

	"hierarchy-remapper/internal/copier"
)

var syncFlags pairFlags

var syncActiveCmd = &cobra.Command{
	Use:   "sync-active SCENE",
	Short: "Make active flags in the destination match the source",
	Long: `Sync-active sets the active flag of the destination root and of every
matching descendant to that of its source counterpart. Source nodes missing
from the destination are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runSyncActive,
}

func init() {
	syncFlags.register(syncActiveCmd)
	rootCmd.AddCommand(syncActiveCmd)
}

func runSyncActive(cmd *cobra.Command, args []string) error {
	s, src, dst, err := syncFlags.load(args[0])
	if err != nil {
		return err
	}

	n, err := copier.New(copier.WithLogger(logger)).SyncActiveState(src, dst)
	if err != nil {
		return err
	}

	printer.Fprintf(cmd.OutOrStdout(), "Synced active state of %d node(s)\n", n)

	return saveScene(s, args[0], syncFlags.output)
}
