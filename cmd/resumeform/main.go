// Command resumeform turns a free-text summary into a filled resume form
// using the resume generation API.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/telemetry"
)

func main() {
	telemetry.SetOutput(os.Stderr)
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "resumeform",
		Short:         "Generate resume form data from a summary",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("base-url", cfg.ClientBaseURL, "Resume API base URL")
	root.AddCommand(newGenerateCmd(cfg), newHealthCmd(cfg))
	return root
}
