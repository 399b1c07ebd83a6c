package main

import (
	"fmt"
	"text/tabwriter"

	"bundle-cli/internal/application"
	"bundle-cli/internal/application/command/disable_service"
	"bundle-cli/internal/application/command/enable_service"
	"bundle-cli/internal/application/query/get_services_status"
	"bundle-cli/internal/domain/model"

	"github.com/spf13/cobra"
)

func newServiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "svc",
		Short: "Manage the auxiliary services of the bundle",
	}
	cmd.AddCommand(newServiceEnableCmd(), newServiceDisableCmd(), newServiceStatusCmd())
	return cmd
}

func newServiceEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable <service>",
		Short: "Enable an auxiliary service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := openBundle(cmd.Context())
			if err != nil {
				return err
			}
			if err := bundle.Dispatch(cmd.Context(), enable_service.EnableServiceCommand{ServiceName: args[0]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Service %s enabled\n", args[0])
			return nil
		},
	}
}

func newServiceDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable <service>",
		Short: "Disable an auxiliary service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := openBundle(cmd.Context())
			if err != nil {
				return err
			}
			if err := bundle.Dispatch(cmd.Context(), disable_service.DisableServiceCommand{ServiceName: args[0]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Service %s disabled\n", args[0])
			return nil
		},
	}
}

func newServiceStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the container state of every enabled auxiliary service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := openBundle(cmd.Context())
			if err != nil {
				return err
			}

			statuses, err := application.Ask[[]model.ServiceStatus](cmd.Context(), bundle, get_services_status.GetServicesStatusQuery{})
			if err != nil {
				return err
			}
			if len(statuses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No auxiliary services enabled.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SERVICE\tSTATUS\tCONTAINERS")
			for _, s := range statuses {
				fmt.Fprintf(w, "%s\t%s\t%d\n", s.Name, s.StatusCode, len(s.Containers))
			}
			return w.Flush()
		},
	}
}
