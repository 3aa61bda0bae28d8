package command

import (
	"context"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-webhook-probe/core"
)

type MutatingService interface {
	RunProbe(ctx context.Context, req core.RunRequest) (core.RunReport, error)
}

type RunProbeCommand struct {
	service MutatingService
}

func NewRunProbeCommand(service MutatingService) *RunProbeCommand {
	return &RunProbeCommand{service: service}
}

func (c *RunProbeCommand) Execute(ctx context.Context, msg RunProbeMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: probe service is required")
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	out, err := c.service.RunProbe(ctx, msg.Request)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
