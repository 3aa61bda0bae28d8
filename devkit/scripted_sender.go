package devkit

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-webhook-probe/core"
)

type SenderScript struct {
	Response core.ProbeResponse
	Err      error
}

// ScriptedSender replays canned responses in order, repeating the last
// script once the sequence is exhausted, and captures every request it
// was asked to deliver.
type ScriptedSender struct {
	mu       sync.Mutex
	kind     string
	scripts  []SenderScript
	requests []core.ProbeRequest
}

func NewScriptedSender(kind string, scripts ...SenderScript) *ScriptedSender {
	return &ScriptedSender{
		kind:    strings.TrimSpace(strings.ToLower(kind)),
		scripts: append([]SenderScript(nil), scripts...),
	}
}

func (s *ScriptedSender) Kind() string {
	if s == nil {
		return ""
	}
	return s.kind
}

func (s *ScriptedSender) Send(_ context.Context, req core.ProbeRequest) (core.ProbeResponse, error) {
	if s == nil {
		return core.ProbeResponse{}, fmt.Errorf("devkit: scripted sender is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, cloneProbeRequest(req))
	index := len(s.requests) - 1
	if index < len(s.scripts) {
		script := s.scripts[index]
		return cloneProbeResponse(script.Response), script.Err
	}
	if len(s.scripts) > 0 {
		last := s.scripts[len(s.scripts)-1]
		return cloneProbeResponse(last.Response), last.Err
	}
	return core.ProbeResponse{
		StatusCode: 200,
		Headers:    map[string]string{},
		Metadata:   map[string]any{"kind": s.kind},
	}, nil
}

func (s *ScriptedSender) Requests() []core.ProbeRequest {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.ProbeRequest, 0, len(s.requests))
	for _, item := range s.requests {
		out = append(out, cloneProbeRequest(item))
	}
	return out
}

func cloneProbeRequest(in core.ProbeRequest) core.ProbeRequest {
	out := core.ProbeRequest{
		Method:               in.Method,
		URL:                  in.URL,
		Headers:              map[string]string{},
		Payload:              in.Payload,
		Timeout:              in.Timeout,
		MaxResponseBodyBytes: in.MaxResponseBodyBytes,
		Metadata:             map[string]any{},
	}
	for key, value := range in.Headers {
		out.Headers[key] = value
	}
	for key, value := range in.Metadata {
		out.Metadata[key] = value
	}
	return out
}

func cloneProbeResponse(in core.ProbeResponse) core.ProbeResponse {
	out := core.ProbeResponse{
		StatusCode: in.StatusCode,
		Headers:    map[string]string{},
		Body:       append([]byte(nil), in.Body...),
		Metadata:   map[string]any{},
	}
	for key, value := range in.Headers {
		out.Headers[key] = value
	}
	for key, value := range in.Metadata {
		out.Metadata[key] = value
	}
	return out
}

var _ core.Sender = (*ScriptedSender)(nil)
