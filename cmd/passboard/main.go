// passboard is a password dashboard with an interactive terminal UI and a
// JSON API. Credentials live in memory for the lifetime of the process.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vaultpass/passboard/internal/config"
	"github.com/vaultpass/passboard/internal/repository"
	"github.com/vaultpass/passboard/internal/service"
	"github.com/vaultpass/passboard/internal/tui"
)

var version = "dev" // set by the linker

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}

// app holds what every subcommand needs once configuration is resolved.
type app struct {
	v   *viper.Viper
	cfg config.Config
}

// newRootCmd builds the command tree. Running without a subcommand launches
// the terminal dashboard.
func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	cmd := &cobra.Command{
		Use:          "passboard",
		Short:        "passboard is an in-memory password dashboard.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadDotEnv()
			a.cfg = config.Load(a.v)
			slog.SetDefault(config.NewLogger(a.cfg, os.Stderr))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDashboard(cmd.Context())
		},
	}

	cmd.PersistentFlags().String("log-level", "info", `log level ("debug", "info", "warn", "error")`)
	cmd.PersistentFlags().String("log-format", "text", `log format ("text" or "json")`)
	cmd.PersistentFlags().Bool("seed", true, "load the demo credentials on start")
	a.v.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	a.v.BindPFlag("log.format", cmd.PersistentFlags().Lookup("log-format"))
	a.v.BindPFlag("seed", cmd.PersistentFlags().Lookup("seed"))

	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newScoreCmd())

	return cmd
}

// newVault builds the credential store, seeded when configured.
func (a *app) newVault(ctx context.Context) (*service.VaultService, error) {
	repo := repository.NewCredentialRepository()
	if a.cfg.Seed {
		if err := repo.Seed(ctx, repository.SeedCredentials()); err != nil {
			return nil, err
		}
	}
	return service.NewVaultService(repo), nil
}

func (a *app) runDashboard(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the dashboard needs an interactive terminal; see 'passboard --help' for other commands")
	}

	vault, err := a.newVault(ctx)
	if err != nil {
		return err
	}

	// The dashboard owns the screen, so logs would corrupt it.
	slog.SetDefault(config.DiscardLogger())
	return tui.Run(ctx, vault, service.NewGeneratorService())
}
