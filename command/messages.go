package command

import (
	"github.com/goliatone/go-webhook-probe/core"
)

const (
	TypeRunProbe = "webhookprobe.command.probe.run"
)

// RunProbeMessage asks the service to deliver one scenario. An empty
// scenario name falls back to the configured default.
type RunProbeMessage struct {
	Request core.RunRequest
}

func (RunProbeMessage) Type() string { return TypeRunProbe }

func (m RunProbeMessage) Validate() error {
	if m.Request.Target != nil {
		if err := m.Request.Target.Validate(); err != nil {
			return commandWrapValidation(err, "command: probe target is invalid")
		}
	}
	return nil
}
