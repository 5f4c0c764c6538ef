// cmd/inspect/inspect.go
package inspect

import (
	"github.com/spf13/cobra"
)

// InspectCmd is the root command for inspect operations
var InspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect ClaimsIQ services",
	Long:  `The inspect command reports on the state of the ClaimsIQ Supabase project.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
