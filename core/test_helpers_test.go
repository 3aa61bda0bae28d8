package core

import (
	"context"
	"strconv"
	"sync"
	"time"
)

type testScenario struct {
	name        string
	description string
	payload     FormPayload
	timestamped bool
}

func (s testScenario) Name() string { return s.name }

func (s testScenario) Describe() string {
	if s.description != "" {
		return s.description
	}
	return "test scenario"
}

func (s testScenario) Payload(now time.Time) FormPayload {
	payload := s.payload
	if payload.Timestamp == "" {
		payload.Timestamp = "1754925000"
	}
	if payload.Token == "" {
		payload.Token = "testtoken"
	}
	if payload.Signature == "" {
		payload.Signature = "testsig"
	}
	if payload.Recipient == "" {
		payload.Recipient = "upload@example.com"
	}
	if payload.Sender == "" {
		payload.Sender = "probe@example.com"
	}
	if payload.Subject == "" {
		payload.Subject = "Probe"
	}
	if payload.BodyPlain == "" {
		payload.BodyPlain = "probe body"
	}
	if payload.BodyHTML == "" {
		payload.BodyHTML = "<p>probe body</p>"
	}
	if payload.MessageID == "" {
		payload.MessageID = "probe-message"
	}
	if s.timestamped {
		payload.MessageID = "probe-" + strconv.FormatInt(now.Unix(), 10)
	}
	return payload
}

type recordingSender struct {
	mu       sync.Mutex
	kind     string
	requests []ProbeRequest
	response ProbeResponse
	err      error
}

func (s *recordingSender) Kind() string {
	if s.kind != "" {
		return s.kind
	}
	return "recording"
}

func (s *recordingSender) Send(_ context.Context, req ProbeRequest) (ProbeResponse, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	if s.err != nil {
		return ProbeResponse{}, s.err
	}
	return s.response, nil
}

func (s *recordingSender) Requests() []ProbeRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ProbeRequest(nil), s.requests...)
}

type capturingLogEntry struct {
	level   string
	message string
	args    []any
	fields  map[string]any
}

type capturingLogger struct {
	mu      sync.Mutex
	fields  map[string]any
	entries *[]capturingLogEntry
}

func newCapturingLogger() *capturingLogger {
	entries := make([]capturingLogEntry, 0, 8)
	return &capturingLogger{entries: &entries}
}

func (l *capturingLogger) record(level string, message string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.entries = append(*l.entries, capturingLogEntry{
		level:   level,
		message: message,
		args:    append([]any(nil), args...),
		fields:  l.fields,
	})
}

func (l *capturingLogger) Entries() []capturingLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]capturingLogEntry(nil), *l.entries...)
}

func (l *capturingLogger) Trace(message string, args ...any) { l.record("trace", message, args...) }
func (l *capturingLogger) Debug(message string, args ...any) { l.record("debug", message, args...) }
func (l *capturingLogger) Info(message string, args ...any)  { l.record("info", message, args...) }
func (l *capturingLogger) Warn(message string, args ...any)  { l.record("warn", message, args...) }
func (l *capturingLogger) Error(message string, args ...any) { l.record("error", message, args...) }
func (l *capturingLogger) Fatal(message string, args ...any) { l.record("fatal", message, args...) }

func (l *capturingLogger) WithContext(context.Context) Logger { return l }

func (l *capturingLogger) WithFields(fields map[string]any) Logger {
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return &capturingLogger{fields: copied, entries: l.entries}
}

type capturingMetrics struct {
	mu         sync.Mutex
	counters   map[string]int64
	histograms map[string][]float64
	tags       map[string]map[string]string
}

func newCapturingMetrics() *capturingMetrics {
	return &capturingMetrics{
		counters:   map[string]int64{},
		histograms: map[string][]float64{},
		tags:       map[string]map[string]string{},
	}
}

func (m *capturingMetrics) IncCounter(_ context.Context, name string, value int64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] += value
	m.tags[name] = tags
}

func (m *capturingMetrics) ObserveHistogram(_ context.Context, name string, value float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.histograms[name] = append(m.histograms[name], value)
	m.tags[name] = tags
}

func (m *capturingMetrics) Counter(name string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[name]
}

func (m *capturingMetrics) Tags(name string) map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tags[name]
}

type staticConfigProvider struct {
	cfg Config
	err error
}

func (p staticConfigProvider) Load(context.Context, Config) (Config, error) {
	if p.err != nil {
		return Config{}, p.err
	}
	return p.cfg, nil
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
