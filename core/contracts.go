package core

import (
	"context"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

// ProbeRequest is the transport-level view of one delivery: a fully
// rendered form body plus everything the sender needs to put it on the
// wire.
type ProbeRequest struct {
	Method               string
	URL                  string
	Headers              map[string]string
	Payload              FormPayload
	Timeout              time.Duration
	MaxResponseBodyBytes int64
	Metadata             map[string]any
}

type ProbeResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Metadata   map[string]any
}

// Sender puts a probe request on the wire. Implementations return an
// error only for transport-level failures; any HTTP status, 5xx
// included, is a successful send.
type Sender interface {
	Kind() string
	Send(ctx context.Context, req ProbeRequest) (ProbeResponse, error)
}

// PayloadScenario renders one named probe payload. Payload must be
// deterministic for a given instant so runs can be replayed against a
// fixed clock.
type PayloadScenario interface {
	Name() string
	Describe() string
	Payload(now time.Time) FormPayload
}

type Registry interface {
	Register(scenario PayloadScenario) error
	Get(name string) (PayloadScenario, bool)
	List() []PayloadScenario
}

type RunRequest struct {
	Scenario string
	Target   *Target
	Metadata map[string]any
}

type RunReport struct {
	RunID     string
	Scenario  string
	Target    string
	Payload   FormPayload
	Outcome   Outcome
	StartedAt time.Time
	Metadata  map[string]any
}

type ScenarioInfo struct {
	Name        string
	Description string
	Fields      map[string]string
}

// ProbeService is the operation surface commands and queries dispatch
// against.
type ProbeService interface {
	RunProbe(ctx context.Context, req RunRequest) (RunReport, error)
	ListScenarios(ctx context.Context) ([]ScenarioInfo, error)
	DescribeScenario(ctx context.Context, name string) (ScenarioInfo, error)
}

type MetricsRecorder interface {
	IncCounter(ctx context.Context, name string, value int64, tags map[string]string)
	ObserveHistogram(ctx context.Context, name string, value float64, tags map[string]string)
}

type (
	Logger         = glog.Logger
	FieldsLogger   = glog.FieldsLogger
	LoggerProvider = glog.LoggerProvider
)
