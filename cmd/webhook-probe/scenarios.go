package main

import (
	"fmt"

	"github.com/spf13/cobra"

	webhookprobe "github.com/goliatone/go-webhook-probe"
	"github.com/goliatone/go-webhook-probe/core"
	probequery "github.com/goliatone/go-webhook-probe/query"
)

func init() {
	rootCmd.AddCommand(scenariosCmd)
	scenariosCmd.AddCommand(listScenariosCmd)
	scenariosCmd.AddCommand(describeScenarioCmd)
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "scenarios inspects the registered payload scenarios",
}

var listScenariosCmd = &cobra.Command{
	Use:   "list",
	Short: "list prints every registered scenario",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		facade, err := buildFacade(webhookprobe.DefaultConfig())
		if err != nil {
			return err
		}
		infos, err := facade.Queries().ListScenarios.Query(cmd.Context(), probequery.ListScenariosMessage{})
		if err != nil {
			return err
		}
		for _, info := range infos {
			fmt.Printf("%-14s %s\n", info.Name, info.Description)
		}
		return nil
	},
}

var describeScenarioCmd = &cobra.Command{
	Use:   "describe <scenario>",
	Short: "describe prints a scenario's rendered payload fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		facade, err := buildFacade(webhookprobe.DefaultConfig())
		if err != nil {
			return err
		}
		info, err := facade.Queries().DescribeScenario.Query(cmd.Context(), probequery.DescribeScenarioMessage{
			Name: args[0],
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s: %s\n", info.Name, info.Description)
		for _, name := range core.FormFields() {
			if value, ok := info.Fields[name]; ok {
				fmt.Printf("  %s: %s\n", name, value)
			}
		}
		return nil
	},
}
