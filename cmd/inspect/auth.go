// cmd/inspect/auth.go

package inspect

import (
	"github.com/claimsiq/ciq/pkg/ciq_cli"
	"github.com/claimsiq/ciq/pkg/ciq_io"
	"github.com/claimsiq/ciq/pkg/supabase"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// InspectAuthCmd probes the GoTrue health endpoint with the public client.
var InspectAuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Check the Supabase auth service health",
	Long: `Builds the public (anonymous) Supabase client and calls the GoTrue
health endpoint. Uses VITE_SUPABASE_URL and VITE_SUPABASE_ANON_KEY.`,
	RunE: ciq_cli.Wrap(runInspectAuth),
}

func init() {
	InspectCmd.AddCommand(InspectAuthCmd)
}

func runInspectAuth(rc *ciq_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	cfg := supabase.ResolvePublicConfig(rc.Log)
	client := supabase.NewPublicClient(cfg)

	auth, err := client.Auth()
	if err != nil {
		return cerr.Wrap(err, "set VITE_SUPABASE_URL and VITE_SUPABASE_ANON_KEY first")
	}

	health, err := auth.HealthCheck()
	if err != nil {
		return cerr.Wrap(err, "auth service health check failed")
	}

	rc.Log.Info("Auth service is healthy",
		zap.String("name", health.Name),
		zap.String("version", health.Version),
		zap.String("description", health.Description))
	return nil
}
