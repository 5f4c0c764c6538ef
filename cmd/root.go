// cmd/root.go

package cmd

import (
	"os"

	"github.com/claimsiq/ciq/cmd/create"
	"github.com/claimsiq/ciq/cmd/inspect"
	"github.com/claimsiq/ciq/pkg/ciq_cli"
	"github.com/claimsiq/ciq/pkg/ciq_err"
	"github.com/claimsiq/ciq/pkg/ciq_io"
	"github.com/claimsiq/ciq/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the base command for ciq.
var RootCmd = &cobra.Command{
	Use:   "ciq",
	Short: "ClaimsIQ operations CLI",
	Long: `ciq manages the ClaimsIQ Supabase project: seeding the default admin
account and inspecting the auth service.`,
	RunE: ciq_cli.Wrap(func(rc *ciq_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		return cmd.Help()
	}),
}

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	for _, subCmd := range []*cobra.Command{
		create.CreateCmd,
		inspect.InspectCmd,
	} {
		RootCmd.AddCommand(subCmd)
	}
}

// Execute initializes and runs the root command. Expected user conditions
// (such as the admin user already existing) exit 0; real failures exit 1.
func Execute() {
	defer func() {
		// Sync on a terminal returns EINVAL; nothing useful to report.
		_ = logger.Sync()
	}()

	RegisterCommands()

	if err := RootCmd.Execute(); err != nil {
		log := logger.GetLogger()
		code := ciq_err.ExitCode(err)
		if code == 0 {
			log.Warn("CLI completed with user error", zap.Error(err))
		} else {
			log.Error("CLI execution error", zap.Error(err))
		}
		os.Exit(code)
	}
}
