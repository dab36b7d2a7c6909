package main

import (
	"runtime"

	"github.com/mailru/errgen/internal/pkg/ds"
	"github.com/spf13/cobra"
)

func versionCmd(appInfo *ds.AppInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(appInfo.Details())
			cmd.Println("Go version:", runtime.Version())
		},
	}
}
