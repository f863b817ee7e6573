package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vaultpass/passboard/internal/model"
	"github.com/vaultpass/passboard/internal/password"
	"github.com/vaultpass/passboard/internal/service"
)

func newGenerateCmd() *cobra.Command {
	var (
		policy = password.DefaultPolicy()
		copyIt bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a password and print its strength",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := service.NewGeneratorService().GenerateWithPolicy(policy)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, resp.Password)
			fmt.Fprintf(out, "strength: %d%% (%s)\n", resp.Strength, resp.Tier)

			if copyIt {
				if err := clipboard.WriteAll(resp.Password); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard")
			}
			return nil
		},
	}

	f := cmd.Flags()
	policyFlags(f, &policy)
	f.BoolVarP(&copyIt, "copy", "c", false, "copy the password to the clipboard")

	return cmd
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <password>",
		Short: "Print the strength of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := service.NewStrengthService().Score(model.ScoreRequest{Password: args[0]})
			fmt.Fprintf(cmd.OutOrStdout(), "%d%% %s\n", resp.Strength, resp.Tier)
			return nil
		},
	}
}

// policyFlags registers the generator options on f, defaulting to p.
func policyFlags(f *pflag.FlagSet, p *password.Policy) {
	f.IntVarP(&p.Length, "length", "l", p.Length, fmt.Sprintf("password length (%d-%d)", password.MinLength, password.MaxLength))
	f.BoolVar(&p.Uppercase, "uppercase", p.Uppercase, "include uppercase letters")
	f.BoolVar(&p.Numbers, "numbers", p.Numbers, "include digits")
	f.BoolVar(&p.Symbols, "symbols", p.Symbols, "include symbols")
	f.BoolVar(&p.RequireEachClass, "require-each", p.RequireEachClass, "guarantee at least one character of every enabled class")
}
