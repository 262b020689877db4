package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"hierarchy-remapper/internal/sceneio"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		if versionShort {
			fmt.Fprintln(w, buildVersion)
			return nil
		}

		if versionJSON {
			info := map[string]string{
				"version": buildVersion,
				"commit":  buildCommit,
				"date":    buildDate,
				"format":  sceneio.FormatVersion,
			}

			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}

			fmt.Fprintln(w, string(out))

			return nil
		}

		fmt.Fprintf(w, "hierarchy-remapper version %s (commit: %s, built: %s, scene format %s)\n",
			buildVersion, buildCommit, buildDate, sceneio.FormatVersion)

		return nil
	},
}
