package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hierarchy-remapper/internal/sceneio"
)

var validateCmd = &cobra.Command{
	Use:   "validate SCENE...",
	Short: "Check scene documents against the scene schema",
	Long: `Validate checks each document against the embedded JSON schema and, when
the schema accepts it, loads it to verify the format version and that every
reference resolves.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	failed := 0

	for _, path := range args {
		result, err := sceneio.ValidateFile(path)
		if err != nil {
			return err
		}

		if !result.Valid {
			failed++

			printer.Fprintf(w, "%s: %d issue(s)\n", path, len(result.Issues))

			for _, is := range result.Issues {
				fmt.Fprintf(w, "  %s\n", is)
			}

			continue
		}

		if _, err := sceneio.Load(path); err != nil {
			failed++

			fmt.Fprintf(w, "%s: %v\n", path, err)

			continue
		}

		fmt.Fprintf(w, "%s: ok\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d document(s) invalid", failed, len(args))
	}

	return nil
}
