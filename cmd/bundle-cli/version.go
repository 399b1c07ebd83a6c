package main

import (
	"fmt"
	"runtime"

	"bundle-cli/internal/application/version"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, version.String())
			fmt.Fprintf(out, "  Go:       %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
