package webhookprobe

import (
	"fmt"

	probecommand "github.com/goliatone/go-webhook-probe/command"
	probequery "github.com/goliatone/go-webhook-probe/query"
)

type CommandQueryService interface {
	probecommand.MutatingService
	probequery.ScenarioReader
}

type Commands struct {
	RunProbe *probecommand.RunProbeCommand
}

type Queries struct {
	ListScenarios    *probequery.ListScenariosQuery
	DescribeScenario *probequery.DescribeScenarioQuery
}

type Facade struct {
	service  CommandQueryService
	commands Commands
	queries  Queries
}

type FacadeOption func(*facadeOptions)

type facadeOptions struct {
	scenarioReader probequery.ScenarioReader
}

// WithScenarioReader serves scenario listings from a reader other than
// the probe service itself.
func WithScenarioReader(reader probequery.ScenarioReader) FacadeOption {
	return func(options *facadeOptions) {
		options.scenarioReader = reader
	}
}

func NewFacade(service CommandQueryService, opts ...FacadeOption) (*Facade, error) {
	if service == nil {
		return nil, fmt.Errorf("webhookprobe: command/query service is required")
	}
	cfg := facadeOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	reader := cfg.scenarioReader
	if reader == nil {
		reader = service
	}

	facade := &Facade{service: service}
	facade.commands = Commands{
		RunProbe: probecommand.NewRunProbeCommand(service),
	}
	facade.queries = Queries{
		ListScenarios:    probequery.NewListScenariosQuery(reader),
		DescribeScenario: probequery.NewDescribeScenarioQuery(reader),
	}

	return facade, nil
}

func (f *Facade) Commands() Commands {
	if f == nil {
		return Commands{}
	}
	return f.commands
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Service() CommandQueryService {
	if f == nil {
		return nil
	}
	return f.service
}
