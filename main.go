// main.go

package main

import (
	"fmt"
	"os"

	"github.com/claimsiq/ciq/cmd"
	"github.com/claimsiq/ciq/pkg/logger"
	"github.com/claimsiq/ciq/pkg/telemetry"
)

func main() {
	logger.InitializeWithFallback()

	if err := telemetry.Init("ciq"); err != nil {
		// Telemetry is best effort; the CLI keeps working without it.
		fmt.Fprintf(os.Stderr, "telemetry disabled: %v\n", err)
	}

	cmd.Execute()
}
