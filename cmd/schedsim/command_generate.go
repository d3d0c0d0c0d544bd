package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <dir>",
		Short: "Write sample workloads and a resource snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := a.service.Runtime().Generate(a.context(cmd), args[0])
			if err != nil {
				return err
			}
			for _, URL := range written {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), URL)
			}
			return nil
		},
	}
}
