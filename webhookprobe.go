package webhookprobe

import (
	"github.com/goliatone/go-webhook-probe/core"
	"github.com/goliatone/go-webhook-probe/scenarios/emailingest"
	"github.com/goliatone/go-webhook-probe/transport"
)

type Config = core.Config

type ProbeConfig = core.ProbeConfig

type Option = core.Option

type Service = core.Service

type ServiceDependencies = core.ServiceDependencies
type Sender = core.Sender
type PayloadScenario = core.PayloadScenario
type Registry = core.Registry
type MetricsRecorder = core.MetricsRecorder

type RunRequest = core.RunRequest
type RunReport = core.RunReport
type Outcome = core.Outcome
type Target = core.Target
type FormPayload = core.FormPayload
type ScenarioInfo = core.ScenarioInfo

var (
	WithLogger          = core.WithLogger
	WithLoggerProvider  = core.WithLoggerProvider
	WithMetricsRecorder = core.WithMetricsRecorder
	WithErrorFactory    = core.WithErrorFactory
	WithErrorMapper     = core.WithErrorMapper
	WithConfigProvider  = core.WithConfigProvider
	WithOptionsResolver = core.WithOptionsResolver
	WithRegistry        = core.WithRegistry
	WithSender          = core.WithSender
	WithTarget          = core.WithTarget
	WithClock           = core.WithClock
	WithReporter        = core.WithReporter
)

func DefaultConfig() Config {
	return core.DefaultConfig()
}

func NewService(cfg Config, opts ...Option) (*Service, error) {
	return core.NewService(cfg, opts...)
}

// Setup builds a service wired for the email ingest endpoint: the form
// sender, the default target and both built-in scenarios. Caller
// options run after the defaults and can replace any of them.
func Setup(cfg Config, opts ...Option) (*Service, error) {
	merged := append([]Option{
		WithSender(transport.NewFormSender(nil)),
		WithTarget(emailingest.DefaultTarget()),
	}, opts...)
	service, err := core.Setup(cfg, merged...)
	if err != nil {
		return nil, err
	}
	if err := emailingest.Register(service.Dependencies().Registry); err != nil {
		return nil, err
	}
	return service, nil
}
