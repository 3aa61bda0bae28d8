package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	webhookprobe "github.com/goliatone/go-webhook-probe"
	probecommand "github.com/goliatone/go-webhook-probe/command"
	"github.com/goliatone/go-webhook-probe/core"
	"github.com/goliatone/go-webhook-probe/scenarios/emailingest"
)

var (
	targetURL      string
	timeoutSeconds int
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&targetURL, "target", "t", "", "override the probe target url")
	runCmd.Flags().IntVar(&timeoutSeconds, "timeout", 0, "per delivery timeout in seconds")
}

var runCmd = &cobra.Command{
	Use:   "run [scenario]",
	Short: "run delivers one probe scenario and prints the outcome",
	Long: "run renders the named scenario (browser-fix when omitted), posts it " +
		"to the ingest endpoint and prints the status line and response body. " +
		"Transport failures are printed as the probe outcome, not treated as " +
		"command failures.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario := ""
		if len(args) > 0 {
			scenario = args[0]
		}

		cfg := webhookprobe.DefaultConfig()
		var opts []webhookprobe.Option
		if timeoutSeconds > 0 {
			cfg.Probe.TimeoutSeconds = timeoutSeconds
			target := emailingest.DefaultTarget()
			target.Timeout = time.Duration(timeoutSeconds) * time.Second
			opts = append(opts, webhookprobe.WithTarget(target))
		}
		facade, err := buildFacade(cfg, opts...)
		if err != nil {
			return err
		}

		req := core.RunRequest{Scenario: scenario}
		if url := strings.TrimSpace(targetURL); url != "" {
			req.Target = &core.Target{
				ID:  "cli-override",
				URL: url,
				Headers: map[string]string{
					core.HeaderTestBypass: emailingest.BypassToken,
				},
				Timeout: time.Duration(timeoutSeconds) * time.Second,
			}
		}

		return facade.Commands().RunProbe.Execute(cmd.Context(), probecommand.RunProbeMessage{
			Request: req,
		})
	},
}
