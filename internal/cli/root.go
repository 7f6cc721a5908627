// Package cli is the workbridge command line front end.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/workbridge/client/internal/app"
)

// NewRootCmd returns the workbridge command tree bound to a.
func NewRootCmd(a *app.App) *cobra.Command {
	var format string

	root := &cobra.Command{
		Use:           "workbridge",
		Short:         "WorkBridge marketplace client",
		Long:          "Command line client for the WorkBridge freelance marketplace. Works offline against the local store when the API is unreachable.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validFormat(format)
		},
	}
	root.PersistentFlags().StringVarP(&format, "output", "o", formatTable, "output format: table, json or yaml")

	out := printerFunc(func(cmd *cobra.Command) printer {
		return printer{w: cmd.OutOrStdout(), format: format}
	})

	root.AddCommand(
		registerCmd(a, out),
		loginCmd(a, out),
		logoutCmd(a),
		whoamiCmd(a, out),
		profileCmd(a, out),
		jobsCmd(a, out),
		applicationsCmd(a, out),
		serveCmd(a),
	)
	return root
}

type printerFunc func(cmd *cobra.Command) printer
