package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"hierarchy-remapper/internal/config"
	"hierarchy-remapper/internal/logging"
	"hierarchy-remapper/remap"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	cfgFile string
	logger  = zerolog.Nop()
	printer = message.NewPrinter(language.English)
)

var rootCmd = &cobra.Command{
	Use:   "hierarchy-remapper",
	Short: "Copy avatar setup between object trees and remap their references",
	Long: `hierarchy-remapper copies components, transforms and active state from one
object tree to a structurally similar one, then rewrites every reference that
still points into the source so it points at the matching destination object.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(viper.GetViper(), cfgFile); err != nil {
			return err
		}

		l, err := logging.Setup(cmd.ErrOrStderr(), settings().LogLevel)
		if err != nil {
			return err
		}

		logger = l

		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./hierarchy-remapper.yaml, then ~/.config/hierarchy-remapper/)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("schema", "", "component schema file restricting which fields are walked")
	pf.Bool("strict", false, "fail before changing anything when the destination lacks a source node")
	pf.Int("suggestions", remap.DefaultSuggestions, "closest-name suggestions per structural mismatch")

	_ = viper.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	_ = viper.BindPFlag(config.KeySchemaFile, pf.Lookup("schema"))
	_ = viper.BindPFlag(config.KeyRemapStrict, pf.Lookup("strict"))
	_ = viper.BindPFlag(config.KeyRemapSuggestions, pf.Lookup("suggestions"))
}

func settings() config.Config {
	return config.FromViper(viper.GetViper())
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}

	return nil
}
