package transport

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-webhook-probe/core"
)

type staticSender struct {
	kind string
}

func (s staticSender) Kind() string { return s.kind }

func (s staticSender) Send(context.Context, core.ProbeRequest) (core.ProbeResponse, error) {
	return core.ProbeResponse{StatusCode: 200}, nil
}

func probePayload() core.FormPayload {
	return core.FormPayload{
		Timestamp: "1754925000",
		Token:     "testtoken",
		Signature: "testsig",
		Recipient: "upload+94a7b7f0@example.com",
		Sender:    "test@example.com",
		Subject:   "Test PDF Browser Fix",
		BodyPlain: "Testing with browser dependencies fixed",
		BodyHTML:  "<html><body><h1>Test</h1></body></html>",
		MessageID: "test-browser-fix-success",
	}
}

func TestRegistry_RegisterGetAndListDeterministic(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(staticSender{kind: "multipart"}); err != nil {
		t.Fatalf("register multipart sender: %v", err)
	}
	if err := registry.Register(staticSender{kind: "form"}); err != nil {
		t.Fatalf("register form sender: %v", err)
	}

	if _, ok := registry.Get("form"); !ok {
		t.Fatalf("expected form sender to be registered")
	}

	listed := registry.List()
	if len(listed) != 2 {
		t.Fatalf("expected 2 senders, got %d", len(listed))
	}
	if listed[0].Kind() != "form" || listed[1].Kind() != "multipart" {
		t.Fatalf("expected deterministic sorted order, got %q and %q", listed[0].Kind(), listed[1].Kind())
	}

	if err := registry.Register(staticSender{kind: "form"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestRegistry_RegisterFactoryBuildsCustomSender(t *testing.T) {
	registry := NewRegistry()
	if err := registry.RegisterFactory("custom", func(config map[string]any) (core.Sender, error) {
		kind := strings.TrimSpace(fmt.Sprint(config["kind"]))
		if kind == "" {
			kind = "custom"
		}
		return staticSender{kind: kind}, nil
	}); err != nil {
		t.Fatalf("register sender factory: %v", err)
	}

	sender, err := registry.Build("custom", map[string]any{"kind": "json"})
	if err != nil {
		t.Fatalf("build sender from factory: %v", err)
	}
	if sender.Kind() != "json" {
		t.Fatalf("expected json sender from factory, got %q", sender.Kind())
	}
}

func TestNewDefaultRegistry_ProvidesFormAndPlaceholders(t *testing.T) {
	registry := NewDefaultRegistry()

	if _, ok := registry.Get(KindForm); !ok {
		t.Fatalf("expected form sender in default registry")
	}

	sender, err := registry.Build(KindJSON, nil)
	if err != nil {
		t.Fatalf("build json placeholder: %v", err)
	}
	if _, err := sender.Send(context.Background(), core.ProbeRequest{}); err == nil {
		t.Fatalf("expected json placeholder to reject sends")
	}
}

func TestFormSender_SendPostsEncodedPayloadAndHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST method, got %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/x-www-form-urlencoded" {
			t.Fatalf("expected form content type, got %q", got)
		}
		if got := r.Header.Get("x-test-bypass"); got != "email-pdf-test" {
			t.Fatalf("expected bypass header, got %q", got)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form body: %v", err)
		}
		want := probePayload()
		for _, field := range want.Fields() {
			if got := r.PostForm.Get(field.Name); got != field.Value {
				t.Fatalf("form field %q: got %q want %q", field.Name, got, field.Value)
			}
		}
		w.Header().Set("X-Server", "ok")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	defer server.Close()

	sender := NewFormSender(server.Client())
	result, err := sender.Send(context.Background(), core.ProbeRequest{
		URL:     server.URL,
		Headers: map[string]string{"x-test-bypass": "email-pdf-test"},
		Payload: probePayload(),
		Timeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("send probe request: %v", err)
	}
	if result.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 status, got %d", result.StatusCode)
	}
	if string(result.Body) != "OK" {
		t.Fatalf("unexpected response body: %q", string(result.Body))
	}
	if result.Headers["X-Server"] != "ok" {
		t.Fatalf("expected response header")
	}
	if result.Metadata["kind"] != KindForm {
		t.Fatalf("expected form kind metadata, got %#v", result.Metadata)
	}
}

func TestFormSender_ServerErrorStatusIsStillADelivery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("ingest exploded"))
	}))
	defer server.Close()

	sender := NewFormSender(server.Client())
	result, err := sender.Send(context.Background(), core.ProbeRequest{
		URL:     server.URL,
		Payload: probePayload(),
	})
	if err != nil {
		t.Fatalf("expected 5xx response to not be a transport error: %v", err)
	}
	if result.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 status, got %d", result.StatusCode)
	}
	if string(result.Body) != "ingest exploded" {
		t.Fatalf("unexpected response body: %q", string(result.Body))
	}
}

func TestNewFormSender_DefaultClientTimeout(t *testing.T) {
	sender := NewFormSender(nil)
	httpClient, ok := sender.Client.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client implementation")
	}
	if httpClient.Timeout != defaultFormClientTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultFormClientTimeout, httpClient.Timeout)
	}
	if sender.MaxResponseBodyBytes != defaultFormResponseBodyLimit {
		t.Fatalf("expected default response body limit %d, got %d", defaultFormResponseBodyLimit, sender.MaxResponseBodyBytes)
	}
}

func TestFormSender_SendFailsOnResponseBodyOverLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("12345"))
	}))
	defer server.Close()

	sender := NewFormSender(server.Client())
	sender.MaxResponseBodyBytes = 4

	_, err := sender.Send(context.Background(), core.ProbeRequest{
		URL:     server.URL,
		Payload: probePayload(),
	})
	if err == nil {
		t.Fatalf("expected response body limit error")
	}
	if !strings.Contains(err.Error(), "response body exceeds limit") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFormSender_RequestBodyLimitOverridesSenderLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("12345"))
	}))
	defer server.Close()

	sender := NewFormSender(server.Client())
	sender.MaxResponseBodyBytes = 1024

	_, err := sender.Send(context.Background(), core.ProbeRequest{
		URL:                  server.URL,
		Payload:              probePayload(),
		MaxResponseBodyBytes: 4,
	})
	if err == nil {
		t.Fatalf("expected response body limit error")
	}
	if !strings.Contains(err.Error(), "response body exceeds limit of 4 bytes") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFormSender_UnreachableEndpointReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	endpoint := server.URL
	server.Close()

	sender := NewFormSender(nil)
	_, err := sender.Send(context.Background(), core.ProbeRequest{
		URL:     endpoint,
		Payload: probePayload(),
	})
	if err == nil {
		t.Fatalf("expected transport error for closed endpoint")
	}
	if !strings.Contains(err.Error(), "execute probe request") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFormSender_CanceledContextReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sender := NewFormSender(server.Client())
	_, err := sender.Send(ctx, core.ProbeRequest{
		URL:     server.URL,
		Payload: probePayload(),
	})
	if err == nil {
		t.Fatalf("expected canceled context to fail the send")
	}
}
