package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/deepharbor/substrip/internal/messages"
)

// getwd is swappable in tests.
var getwd = os.Getwd

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newStripCmd())
	cmd.AddCommand(newDoctorCmd())
	return cmd
}
