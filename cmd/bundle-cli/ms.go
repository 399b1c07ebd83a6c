package main

import (
	"fmt"

	"bundle-cli/internal/application/command/add_microservice"
	"bundle-cli/internal/application/command/remove_microservice"
	"bundle-cli/internal/domain/model"

	"github.com/spf13/cobra"
)

func newMicroserviceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ms",
		Aliases: []string{"microservice"},
		Short:   "Add or remove microservices",
	}
	cmd.AddCommand(newMicroserviceAddCmd(), newMicroserviceRemoveCmd())
	return cmd
}

func newMicroserviceAddCmd() *cobra.Command {
	var (
		stack           string
		dbms            string
		healthCheckPath string
		ingressPath     string
		securityLevel   string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a microservice to the bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := openBundle(cmd.Context())
			if err != nil {
				return err
			}

			ms := model.Microservice{
				Name:            args[0],
				Stack:           model.MicroserviceStack(stack),
				HealthCheckPath: healthCheckPath,
				DBMS:            model.DBMS(dbms),
				IngressPath:     ingressPath,
				SecurityLevel:   model.SecurityLevel(securityLevel),
			}
			if err := bundle.Dispatch(cmd.Context(), add_microservice.AddMicroserviceCommand{Microservice: ms}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Microservice %s added\n", ms.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&stack, "stack", string(model.MicroserviceStackSpringBoot), "Technology stack (spring-boot, node, custom)")
	cmd.Flags().StringVar(&dbms, "dbms", "", "Database engine (none, embedded, postgresql, mysql, oracle)")
	cmd.Flags().StringVar(&healthCheckPath, "health-check-path", "", "Health check path (default "+model.DefaultHealthCheckPath+")")
	cmd.Flags().StringVar(&ingressPath, "ingress-path", "", "Ingress path")
	cmd.Flags().StringVar(&securityLevel, "security-level", "", "Security level (strict, lenient)")
	return cmd
}

func newMicroserviceRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Remove a microservice and its directory",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := openBundle(cmd.Context())
			if err != nil {
				return err
			}

			if err := bundle.Dispatch(cmd.Context(), remove_microservice.RemoveMicroserviceCommand{MicroserviceName: args[0]}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Microservice %s removed\n", args[0])
			return nil
		},
	}
}
