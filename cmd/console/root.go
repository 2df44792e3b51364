package main

import "github.com/spf13/cobra"

type rootFlags struct {
	demo bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "console",
		Short:         "Consola administrativa de seguridad y tesorería",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&flags.demo, "demo", false, "usar el backend en memoria con datos de ejemplo (también DEMO=true)")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newLoginCmd(flags))
	cmd.AddCommand(newLogoutCmd(flags))
	cmd.AddCommand(newWhoamiCmd(flags))
	return cmd
}
