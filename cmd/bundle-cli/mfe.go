package main

import (
	"fmt"

	"bundle-cli/internal/application/command/add_microfrontend"
	"bundle-cli/internal/application/command/remove_microfrontend"
	"bundle-cli/internal/domain/model"

	"github.com/spf13/cobra"
)

func newMicroFrontendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mfe",
		Aliases: []string{"microfrontend"},
		Short:   "Add or remove micro frontends",
	}
	cmd.AddCommand(newMicroFrontendAddCmd(), newMicroFrontendRemoveCmd())
	return cmd
}

func newMicroFrontendAddCmd() *cobra.Command {
	var (
		stack        string
		mfeType      string
		group        string
		publicFolder string
		slot         string
		paths        []string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a micro frontend to the bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, err := microFrontendVariant(model.MicroFrontendType(mfeType), slot, paths)
			if err != nil {
				return err
			}

			bundle, err := openBundle(cmd.Context())
			if err != nil {
				return err
			}

			mfe := model.MicroFrontend{
				Name:         args[0],
				Stack:        model.MicroFrontendStack(stack),
				Group:        group,
				PublicFolder: publicFolder,
				Variant:      variant,
			}
			if err := bundle.Dispatch(cmd.Context(), add_microfrontend.AddMicroFrontendCommand{MicroFrontend: mfe}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Micro frontend %s added\n", mfe.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&stack, "stack", string(model.MicroFrontendStackReact), "Technology stack (react, angular, custom)")
	cmd.Flags().StringVar(&mfeType, "type", string(model.MicroFrontendTypeWidget), "Type (widget, widget-config, app-builder)")
	cmd.Flags().StringVar(&group, "group", "", "Owner group (default "+model.DefaultMicroFrontendGroup+")")
	cmd.Flags().StringVar(&publicFolder, "public-folder", "", "Public folder (default "+model.DefaultPublicFolder+")")
	cmd.Flags().StringVar(&slot, "slot", "", "App Builder slot (primary-header, primary-menu, content)")
	cmd.Flags().StringSliceVar(&paths, "path", nil, "App Builder path, repeatable; required by the content slot")
	return cmd
}

func microFrontendVariant(mfeType model.MicroFrontendType, slot string, paths []string) (model.MicroFrontendVariant, error) {
	switch mfeType {
	case model.MicroFrontendTypeWidget:
		return model.Widget{}, nil
	case model.MicroFrontendTypeWidgetConfig:
		return model.WidgetConfig{}, nil
	case model.MicroFrontendTypeAppBuilder:
		return model.AppBuilder{Slot: model.AppBuilderSlot(slot), Paths: paths}, nil
	default:
		return nil, model.NewValidationError("invalid micro frontend type %q", mfeType)
	}
}

func newMicroFrontendRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Remove a micro frontend, its directory and its runtime configuration",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := openBundle(cmd.Context())
			if err != nil {
				return err
			}

			if err := bundle.Dispatch(cmd.Context(), remove_microfrontend.RemoveMicroFrontendCommand{MicroFrontendName: args[0]}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Micro frontend %s removed\n", args[0])
			return nil
		},
	}
}
