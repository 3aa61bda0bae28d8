package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
	"github.com/google/uuid"
)

// Service runs payload scenarios against a target endpoint. Transport
// failures are part of the reported outcome, not the error return: the
// error is reserved for caller mistakes such as unknown scenarios or
// missing dependencies.
type Service struct {
	config          Config
	logger          Logger
	loggerProvider  LoggerProvider
	metricsRecorder MetricsRecorder
	errorFactory    ErrorFactory
	errorMapper     ErrorMapper
	configProvider  ConfigProvider
	optionsResolver OptionsResolver
	registry        Registry
	sender          Sender
	target          *Target
	now             func() time.Time
	reporter        io.Writer
}

type ServiceDependencies struct {
	Logger          Logger
	LoggerProvider  LoggerProvider
	MetricsRecorder MetricsRecorder
	ErrorFactory    ErrorFactory
	ErrorMapper     ErrorMapper
	ConfigProvider  ConfigProvider
	OptionsResolver OptionsResolver
	Registry        Registry
	Sender          Sender
}

func NewService(cfg Config, options ...Option) (*Service, error) {
	builder := defaultServiceBuilder(cfg)
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&builder)
	}

	provider, logger := glog.Resolve("webhookprobe", builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger("webhookprobe"); named != nil {
			logger = glog.Ensure(named)
		}
	}

	if builder.errorFactory == nil {
		builder.errorFactory = goerrors.New
	}
	if builder.metricsRecorder == nil {
		builder.metricsRecorder = NopMetricsRecorder{}
	}
	if builder.errorMapper == nil {
		builder.errorMapper = defaultErrorMapper
	}
	if builder.configProvider == nil {
		builder.configProvider = NewCfgxConfigProvider(nil)
	}
	if builder.optionsResolver == nil {
		builder.optionsResolver = GoOptionsResolver{}
	}
	if builder.registry == nil {
		builder.registry = NewScenarioRegistry()
	}
	if builder.clock == nil {
		builder.clock = func() time.Time { return time.Now().UTC() }
	}
	if builder.reporter == nil {
		builder.reporter = os.Stdout
	}

	defaults := DefaultConfig()
	loaded, err := builder.configProvider.Load(context.Background(), defaults)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}
	finalConfig, err := builder.optionsResolver.Resolve(defaults, loaded, builder.runtimeConfig)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}

	if builder.target != nil {
		if err := builder.target.Validate(); err != nil {
			return nil, mapBuildError(builder.errorMapper, err)
		}
	}

	return &Service{
		config:          finalConfig,
		logger:          logger,
		loggerProvider:  provider,
		metricsRecorder: builder.metricsRecorder,
		errorFactory:    builder.errorFactory,
		errorMapper:     builder.errorMapper,
		configProvider:  builder.configProvider,
		optionsResolver: builder.optionsResolver,
		registry:        builder.registry,
		sender:          builder.sender,
		target:          builder.target,
		now:             builder.clock,
		reporter:        builder.reporter,
	}, nil
}

func Setup(cfg Config, options ...Option) (*Service, error) {
	return NewService(cfg, options...)
}

func mapBuildError(mapper ErrorMapper, err error) error {
	if err == nil {
		return nil
	}
	if mapper == nil {
		return err
	}
	mapped := mapper(err)
	if mapped == nil {
		return err
	}
	return mapped
}

func (s *Service) Config() Config {
	if s == nil {
		return Config{}
	}
	return s.config
}

func (s *Service) Dependencies() ServiceDependencies {
	if s == nil {
		return ServiceDependencies{}
	}
	return ServiceDependencies{
		Logger:          s.logger,
		LoggerProvider:  s.loggerProvider,
		MetricsRecorder: s.metricsRecorder,
		ErrorFactory:    s.errorFactory,
		ErrorMapper:     s.errorMapper,
		ConfigProvider:  s.configProvider,
		OptionsResolver: s.optionsResolver,
		Registry:        s.registry,
		Sender:          s.sender,
	}
}

// RunProbe renders the named scenario, posts it to the resolved target
// and reports the outcome. The delivery result, transport failures
// included, lives in the returned report; the error return fires only
// for unknown scenarios, invalid targets or missing dependencies.
func (s *Service) RunProbe(ctx context.Context, req RunRequest) (report RunReport, err error) {
	if s == nil {
		return RunReport{}, fmt.Errorf("core: service is required")
	}

	startedAt := s.clockNow()
	var sendErr error
	fields := map[string]any{}
	defer func() {
		observeErr := err
		if observeErr == nil {
			observeErr = sendErr
		}
		s.observeOperation(ctx, startedAt, "run_probe", observeErr, fields)
	}()

	name := strings.TrimSpace(req.Scenario)
	if name == "" {
		name = s.config.DefaultScenario
	}
	fields["scenario"] = name

	scenario, err := s.resolveScenario(name)
	if err != nil {
		return RunReport{}, err
	}

	target, err := s.resolveTarget(req.Target)
	if err != nil {
		return RunReport{}, err
	}
	fields["target_id"] = target.ID

	if s.sender == nil {
		err = s.mapError(fmt.Errorf("%w: no sender configured", ErrSenderUnavailable))
		return RunReport{}, err
	}

	runID := uuid.NewString()
	fields["run_id"] = runID

	payload := scenario.Payload(startedAt)
	response, sendErr := s.deliver(ctx, runID, scenario.Name(), target, payload)

	outcome := Outcome{
		Status:   OutcomeStatusDelivered,
		Duration: s.clockNow().Sub(startedAt),
	}
	if sendErr != nil {
		outcome.Status = OutcomeStatusFailed
		outcome.Error = sendErr.Error()
	} else {
		outcome.StatusCode = response.StatusCode
		outcome.Body = string(response.Body)
	}
	fields["outcome"] = string(outcome.Status)
	if !outcome.Failed() {
		fields["status_code"] = outcome.StatusCode
	}

	report = RunReport{
		RunID:     runID,
		Scenario:  scenario.Name(),
		Target:    target.URL,
		Payload:   payload,
		Outcome:   outcome,
		StartedAt: startedAt,
		Metadata:  cloneMetadata(req.Metadata),
	}
	s.writeReport(report)
	return report, nil
}

func (s *Service) deliver(
	ctx context.Context,
	runID string,
	scenario string,
	target Target,
	payload FormPayload,
) (ProbeResponse, error) {
	probeReq := ProbeRequest{
		Method:               s.config.Probe.Method,
		URL:                  target.URL,
		Headers:              cloneStringMap(target.Headers),
		Payload:              payload,
		Timeout:              target.Timeout,
		MaxResponseBodyBytes: target.MaxBodyBytes,
		Metadata: map[string]any{
			"run_id":   runID,
			"scenario": scenario,
		},
	}
	if probeReq.Timeout <= 0 {
		probeReq.Timeout = s.config.ProbeTimeout()
	}
	if probeReq.MaxResponseBodyBytes <= 0 {
		probeReq.MaxResponseBodyBytes = s.config.ResponseBodyLimit()
	}
	return s.sender.Send(ctx, probeReq)
}

func (s *Service) ListScenarios(ctx context.Context) ([]ScenarioInfo, error) {
	if s == nil || s.registry == nil {
		return nil, s.mapError(fmt.Errorf("core: registry unavailable"))
	}
	scenarios := s.registry.List()
	infos := make([]ScenarioInfo, 0, len(scenarios))
	for _, scenario := range scenarios {
		if scenario == nil {
			continue
		}
		infos = append(infos, ScenarioInfo{
			Name:        scenario.Name(),
			Description: scenario.Describe(),
		})
	}
	return infos, nil
}

// DescribeScenario previews a scenario's payload rendered against the
// current clock, with credential fields redacted.
func (s *Service) DescribeScenario(ctx context.Context, name string) (ScenarioInfo, error) {
	if s == nil {
		return ScenarioInfo{}, fmt.Errorf("core: service is required")
	}
	scenario, err := s.resolveScenario(name)
	if err != nil {
		return ScenarioInfo{}, err
	}
	return ScenarioInfo{
		Name:        scenario.Name(),
		Description: scenario.Describe(),
		Fields:      RedactFormPayload(scenario.Payload(s.clockNow())),
	}, nil
}

func (s *Service) resolveScenario(name string) (PayloadScenario, error) {
	if s == nil || s.registry == nil {
		return nil, s.mapError(fmt.Errorf("core: registry unavailable"))
	}
	name = strings.TrimSpace(name)
	scenario, ok := s.registry.Get(name)
	if ok {
		return scenario, nil
	}
	wrapped := s.errorFactory(
		fmt.Sprintf("scenario %q not found", name),
		goerrors.CategoryNotFound,
	).WithTextCode(ProbeErrorScenarioNotFound)
	return nil, wrapped.WithMetadata(map[string]any{"scenario": name})
}

func (s *Service) resolveTarget(override *Target) (Target, error) {
	if override != nil {
		if err := override.Validate(); err != nil {
			return Target{}, s.mapError(err)
		}
		return override.Clone(), nil
	}
	if s.target == nil {
		return Target{}, s.mapError(fmt.Errorf("core: probe target is required"))
	}
	return s.target.Clone(), nil
}

func (s *Service) writeReport(report RunReport) {
	if s == nil || s.reporter == nil {
		return
	}
	if report.Outcome.Failed() {
		fmt.Fprintf(s.reporter, "Error: %s\n", report.Outcome.Error)
		return
	}
	fmt.Fprintf(s.reporter, "Status Code: %d\n", report.Outcome.StatusCode)
	fmt.Fprintf(s.reporter, "Response: %s\n", report.Outcome.Body)
}

func (s *Service) clockNow() time.Time {
	if s == nil || s.now == nil {
		return time.Now().UTC()
	}
	return s.now()
}

func (s *Service) mapError(err error) error {
	if err == nil {
		return nil
	}
	if s == nil || s.errorMapper == nil {
		return err
	}
	mapped := s.errorMapper(err)
	if mapped == nil {
		return err
	}
	return mapped
}
