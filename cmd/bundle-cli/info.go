package main

import (
	"fmt"

	"bundle-cli/internal/application"
	"bundle-cli/internal/application/query/get_descriptor"
	"bundle-cli/internal/domain/model"
	"bundle-cli/internal/infra/descriptor"
	"bundle-cli/pkg/yaml"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the bundle descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDescriptor(cmd)
			if err != nil {
				return err
			}

			var out []byte
			switch output {
			case "json":
				out, err = descriptor.Marshal(d)
			case "yaml":
				out, err = yaml.MarshalYAML(d)
			default:
				return model.NewValidationError("unsupported output format %q", output)
			}
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format (json, yaml)")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the bundle descriptor for structural errors and duplicate names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDescriptor(cmd)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Bundle %s %s is valid: %d microservice(s), %d micro frontend(s)\n",
				d.Name, d.Version, len(d.Microservices), len(d.MicroFrontends))
			return nil
		},
	}
}

func loadDescriptor(cmd *cobra.Command) (*model.BundleDescriptor, error) {
	bundle, err := openBundle(cmd.Context())
	if err != nil {
		return nil, err
	}
	return application.Ask[*model.BundleDescriptor](cmd.Context(), bundle, get_descriptor.GetDescriptorQuery{})
}
