package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resume-builder/internal/resumeclient"
	"resume-builder/internal/shared/config"
)

func newHealthCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the resume API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			baseURL, _ := cmd.Flags().GetString("base-url")
			client := resumeclient.New(baseURL, resumeclient.WithTimeout(cfg.ClientTimeout))
			text, err := client.Health(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "health check failed")
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
