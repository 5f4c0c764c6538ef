// cmd/create/admin_user.go

package create

import (
	"fmt"
	"os"

	"github.com/claimsiq/ciq/pkg/ciq_cli"
	"github.com/claimsiq/ciq/pkg/ciq_io"
	"github.com/claimsiq/ciq/pkg/crypto"
	"github.com/claimsiq/ciq/pkg/supabase"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	adminEmail       string
	adminPassword    string
	generatePassword bool
)

// CreateAdminUserCmd seeds the default ClaimsIQ admin account.
var CreateAdminUserCmd = &cobra.Command{
	Use:   "admin-user",
	Short: "Seed the default ClaimsIQ admin user",
	Long: `Ensures the default admin account exists in the Supabase project.

Issues one create-user request against the GoTrue admin API with the email
pre-confirmed. An account that already exists is treated as success, so the
command is safe to run on every deploy.

Requires SUPABASE_URL and SUPABASE_SECRET_KEY in the environment.`,
	RunE: ciq_cli.Wrap(runCreateAdminUser),
}

func init() {
	CreateCmd.AddCommand(CreateAdminUserCmd)
	CreateAdminUserCmd.Flags().StringVar(&adminEmail, "email", supabase.DefaultAdminEmail, "Email for the admin account")
	CreateAdminUserCmd.Flags().StringVar(&adminPassword, "password", "", "Password for the admin account (prefer SUPABASE_ADMIN_PASSWORD)")
	CreateAdminUserCmd.Flags().BoolVar(&generatePassword, "generate-password", false, "Generate a random password and print it once")
}

func runCreateAdminUser(rc *ciq_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	cfg, err := supabase.ResolveAdminConfig()
	if err != nil {
		rc.Log.Error("Admin configuration is incomplete", zap.Error(err))
		return err
	}

	identity, err := resolveIdentity(rc, cmd)
	if err != nil {
		return err
	}

	client := supabase.NewAdminClient(cfg)
	result, err := supabase.SeedAdminUser(rc.Ctx, client, identity)
	if err != nil {
		return err
	}

	if result.Status == supabase.SeedCreated {
		rc.Log.Info("Admin account is ready",
			zap.String("id", result.UserID),
			zap.String("email", result.Email))
	}
	return nil
}

// resolveIdentity picks the admin identity from flags, environment, or an
// interactive prompt. The password never comes from a source-code literal.
func resolveIdentity(rc *ciq_io.RuntimeContext, cmd *cobra.Command) (supabase.AdminIdentity, error) {
	email := adminEmail
	if env := os.Getenv("SUPABASE_ADMIN_EMAIL"); env != "" && !cmd.Flags().Changed("email") {
		email = env
	}

	password := adminPassword
	switch {
	case generatePassword:
		pw, err := crypto.GeneratePassword(20)
		if err != nil {
			return supabase.AdminIdentity{}, err
		}
		password = pw
		// Printed once so the operator can store it; never logged.
		fmt.Fprintf(os.Stdout, "Generated admin password: %s\n", pw)
	case password == "":
		if env := os.Getenv("SUPABASE_ADMIN_PASSWORD"); env != "" {
			password = env
		} else {
			pw, err := ciq_io.PromptSecurePassword(rc, "Enter admin password: ")
			if err != nil {
				// The password is required input; without it the seeder
				// must fail the run, not exit 0.
				return supabase.AdminIdentity{}, cerr.Wrap(err, "admin password is required")
			}
			password = pw
		}
	}

	if err := ciq_io.ValidatePasswordInput(password, "password"); err != nil {
		return supabase.AdminIdentity{}, err
	}

	return supabase.AdminIdentity{Email: email, Password: password}, nil
}
