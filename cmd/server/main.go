package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wordimpostor/backend/internal/config"
)

const releaseVersion = "1.0.0"

func main() {
	cfg := config.Default()
	cobra.CheckErr(newCmd(&cfg).Execute())
}

func newCmd(cfg *config.Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("WORDIMPOSTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:     "wordimpostor",
		Short:   "Real-time impostor word party game server.",
		Args:    cobra.ExactArgs(0),
		Version: releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Port < 1 || cfg.Port > 65535 {
				return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", cfg.Port)
			}
			return serve(cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.Bind, "bind", "b", cfg.Bind, "address to bind to (env: WORDIMPOSTOR_BIND)")
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on (env: WORDIMPOSTOR_PORT)")
	fs.DurationVar(&cfg.AdminGrace, "admin-grace", cfg.AdminGrace, "grace period for a disconnected admin to rejoin before the session ends (env: WORDIMPOSTOR_ADMIN_GRACE)")
	fs.BoolVar(&cfg.ExportEnabled, "export-enabled", cfg.ExportEnabled, "append finished game summaries to the export file (env: WORDIMPOSTOR_EXPORT_ENABLED)")
	fs.StringVar(&cfg.ExportFile, "export-file", cfg.ExportFile, "path of the game results export file (env: WORDIMPOSTOR_EXPORT_FILE)")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "display additional output (env: WORDIMPOSTOR_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("wordimpostor v{{.Version}}\n")
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
