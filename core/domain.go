package core

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

var (
	ErrScenarioNotFound  = errors.New("core: scenario not found")
	ErrScenarioExists    = errors.New("core: scenario already registered")
	ErrInvalidTarget     = errors.New("core: invalid target")
	ErrSenderUnavailable = errors.New("core: probe sender unavailable")
)

// Form field names the ingest endpoint expects. FormFields reports them
// in wire order, which is part of the payload contract.
const (
	FieldTimestamp = "timestamp"
	FieldToken     = "token"
	FieldSignature = "signature"
	FieldRecipient = "recipient"
	FieldSender    = "sender"
	FieldSubject   = "subject"
	FieldBodyPlain = "body-plain"
	FieldBodyHTML  = "body-html"
	FieldMessageID = "Message-Id"
)

const (
	HeaderTestBypass  = "x-test-bypass"
	HeaderContentType = "Content-Type"

	ContentTypeForm = "application/x-www-form-urlencoded"
)

const (
	DefaultProbeTimeout      = 30 * time.Second
	DefaultResponseBodyLimit = int64(1 << 20)
)

// FormPayload is the simulated inbound email a probe delivers. Every
// field is posted even when empty so the receiver always sees the full
// shape.
type FormPayload struct {
	Timestamp string
	Token     string
	Signature string
	Recipient string
	Sender    string
	Subject   string
	BodyPlain string
	BodyHTML  string
	MessageID string
}

// FormField pairs a wire field name with its value.
type FormField struct {
	Name  string
	Value string
}

func FormFields() []string {
	return []string{
		FieldTimestamp,
		FieldToken,
		FieldSignature,
		FieldRecipient,
		FieldSender,
		FieldSubject,
		FieldBodyPlain,
		FieldBodyHTML,
		FieldMessageID,
	}
}

// Fields returns the payload in wire order.
func (p FormPayload) Fields() []FormField {
	return []FormField{
		{Name: FieldTimestamp, Value: p.Timestamp},
		{Name: FieldToken, Value: p.Token},
		{Name: FieldSignature, Value: p.Signature},
		{Name: FieldRecipient, Value: p.Recipient},
		{Name: FieldSender, Value: p.Sender},
		{Name: FieldSubject, Value: p.Subject},
		{Name: FieldBodyPlain, Value: p.BodyPlain},
		{Name: FieldBodyHTML, Value: p.BodyHTML},
		{Name: FieldMessageID, Value: p.MessageID},
	}
}

func (p FormPayload) Values() url.Values {
	values := url.Values{}
	for _, field := range p.Fields() {
		values.Set(field.Name, field.Value)
	}
	return values
}

// Encode renders the payload as an application/x-www-form-urlencoded
// body.
func (p FormPayload) Encode() string {
	return p.Values().Encode()
}

func (p FormPayload) Field(name string) (string, bool) {
	for _, field := range p.Fields() {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}

func (p FormPayload) Validate() error {
	for _, field := range p.Fields() {
		if strings.TrimSpace(field.Value) == "" {
			return fmt.Errorf("core: payload field %s is required", field.Name)
		}
	}
	return nil
}

type OutcomeStatus string

const (
	OutcomeStatusDelivered OutcomeStatus = "delivered"
	OutcomeStatusFailed    OutcomeStatus = "failed"
)

func (s OutcomeStatus) IsValid() bool {
	switch s {
	case OutcomeStatusDelivered, OutcomeStatusFailed:
		return true
	default:
		return false
	}
}

// Outcome captures what came back from one probe delivery. A delivered
// outcome carries the HTTP status and response body. A failed outcome
// carries only the transport error description and StatusCode stays
// zero, meaning absent.
type Outcome struct {
	Status     OutcomeStatus
	StatusCode int
	Body       string
	Error      string
	Duration   time.Duration
}

func (o Outcome) Failed() bool {
	return o.Status == OutcomeStatusFailed
}

// Target identifies the endpoint a probe posts to.
type Target struct {
	ID           string
	URL          string
	Headers      map[string]string
	Timeout      time.Duration
	MaxBodyBytes int64
}

func (t Target) Validate() error {
	raw := strings.TrimSpace(t.URL)
	if raw == "" {
		return fmt.Errorf("%w: url is required", ErrInvalidTarget)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidTarget, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidTarget)
	}
	if t.Timeout < 0 {
		return fmt.Errorf("%w: timeout must be >= 0", ErrInvalidTarget)
	}
	if t.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: max body bytes must be >= 0", ErrInvalidTarget)
	}
	return nil
}

func (t Target) Clone() Target {
	clone := t
	clone.Headers = cloneStringMap(t.Headers)
	return clone
}

func cloneStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cloneMetadata(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
