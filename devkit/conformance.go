package devkit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-webhook-probe/core"
)

// ValidateScenarioConformance checks the contract every payload
// scenario must honor: a stable name, a description, a complete form
// payload and deterministic rendering for a fixed instant.
func ValidateScenarioConformance(scenario core.PayloadScenario) error {
	if scenario == nil {
		return fmt.Errorf("devkit: payload scenario is required")
	}
	if strings.TrimSpace(scenario.Name()) == "" {
		return fmt.Errorf("devkit: scenario name is required")
	}
	if strings.TrimSpace(scenario.Describe()) == "" {
		return fmt.Errorf("devkit: scenario description is required")
	}

	at := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)
	payload := scenario.Payload(at)
	if err := payload.Validate(); err != nil {
		return fmt.Errorf("devkit: scenario %s payload incomplete: %w", scenario.Name(), err)
	}
	if scenario.Payload(at) != payload {
		return fmt.Errorf("devkit: scenario %s payload is not deterministic", scenario.Name())
	}
	return nil
}

func ValidateSenderConformance(
	ctx context.Context,
	sender core.Sender,
	request core.ProbeRequest,
) error {
	if sender == nil {
		return fmt.Errorf("devkit: sender is required")
	}
	if strings.TrimSpace(sender.Kind()) == "" {
		return fmt.Errorf("devkit: sender kind is required")
	}
	_, err := sender.Send(ctx, request)
	return err
}
