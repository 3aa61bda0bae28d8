package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	webhookprobe "github.com/goliatone/go-webhook-probe"
)

var rootCmd = &cobra.Command{
	Use:          "webhook-probe",
	Short:        "webhook-probe posts canned form payloads at the email ingest endpoint",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildFacade(cfg webhookprobe.Config, opts ...webhookprobe.Option) (*webhookprobe.Facade, error) {
	svc, err := webhookprobe.Setup(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return webhookprobe.NewFacade(svc)
}
