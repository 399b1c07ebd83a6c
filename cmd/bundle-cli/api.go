package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"bundle-cli/internal/application"
	"bundle-cli/internal/application/command/add_api_claim"
	"bundle-cli/internal/application/command/remove_api_claim"
	"bundle-cli/internal/application/query/list_api_claims"
	"bundle-cli/internal/domain/model"

	"github.com/spf13/cobra"
)

func newApiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api",
		Short: "Manage the API claims of micro frontends",
	}
	cmd.AddCommand(
		newApiAddInternalCmd(),
		newApiAddExternalCmd(),
		newApiRemoveCmd(),
		newApiListCmd(),
	)
	return cmd
}

func newApiAddInternalCmd() *cobra.Command {
	var (
		serviceName string
		serviceURL  string
	)

	cmd := &cobra.Command{
		Use:   "add-int <mfe> <claim>",
		Short: "Claim a microservice of this bundle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := openBundle(cmd.Context())
			if err != nil {
				return err
			}

			claim := model.NewInternalClaim(args[1], serviceName)
			addCmd := add_api_claim.AddApiClaimCommand{MicroFrontendName: args[0], Claim: claim, ServiceURL: serviceURL}
			if err := bundle.Dispatch(cmd.Context(), addCmd); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "API claim %s added to %s\n", claim.Name, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&serviceName, "service", "", "Microservice the claim targets")
	cmd.Flags().StringVar(&serviceURL, "service-url", "", "URL the microservice is reachable at, e.g. http://localhost:8081")
	_ = cmd.MarkFlagRequired("service")
	_ = cmd.MarkFlagRequired("service-url")
	return cmd
}

func newApiAddExternalCmd() *cobra.Command {
	var (
		serviceName string
		bundleRef   string
	)

	cmd := &cobra.Command{
		Use:   "add-ext <mfe> <claim>",
		Short: "Claim a microservice of another bundle installed on the platform",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := openBundle(cmd.Context())
			if err != nil {
				return err
			}

			claim := model.NewExternalClaim(args[1], serviceName, bundleRef)
			addCmd := add_api_claim.AddApiClaimCommand{MicroFrontendName: args[0], Claim: claim}
			if err := bundle.Dispatch(cmd.Context(), addCmd); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "API claim %s added to %s\n", claim.Name, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&serviceName, "service", "", "Microservice the claim targets")
	cmd.Flags().StringVar(&bundleRef, "bundle", "", "Reference of the bundle that owns the microservice, e.g. docker://registry/org/bundle")
	_ = cmd.MarkFlagRequired("service")
	_ = cmd.MarkFlagRequired("bundle")
	return cmd
}

func newApiRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <mfe> <claim>",
		Aliases: []string{"remove"},
		Short:   "Remove an API claim",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := openBundle(cmd.Context())
			if err != nil {
				return err
			}

			rmCmd := remove_api_claim.RemoveApiClaimCommand{MicroFrontendName: args[0], ClaimName: args[1]}
			if err := bundle.Dispatch(cmd.Context(), rmCmd); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "API claim %s removed from %s\n", args[1], args[0])
			return nil
		},
	}
}

func newApiListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "list [mfe]",
		Aliases: []string{"ls"},
		Short:   "List API claims and their resolved URLs",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := openBundle(cmd.Context())
			if err != nil {
				return err
			}

			query := list_api_claims.ListApiClaimsQuery{}
			if len(args) == 1 {
				query.MicroFrontendName = args[0]
			}
			claims, err := application.Ask[[]model.ResolvedApiClaim](cmd.Context(), bundle, query)
			if err != nil {
				return err
			}

			if output == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "    ")
				return enc.Encode(claims)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MFE\tCLAIM\tTYPE\tSERVICE\tBUNDLE\tURL")
			for _, c := range claims {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", c.MicroFrontend, c.Claim.Name, c.Claim.Type,
					c.Claim.ServiceName, dash(c.Claim.Bundle), dash(c.URL))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")
	return cmd
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
