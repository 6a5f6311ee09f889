package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Prints the configuration after applying the config file and CONFETTI_*
environment overrides. With --save the result is written to the --config path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if save {
				if err := a.cfg.Save(a.configPath); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", a.configPath)
				return nil
			}

			data, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "write the effective configuration to the config path")
	return cmd
}
