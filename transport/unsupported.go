package transport

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-webhook-probe/core"
)

const (
	KindJSON      = "json"
	KindMultipart = "multipart"
)

type UnsupportedSender struct {
	kind   string
	reason string
}

func NewUnsupportedSender(kind string, reason string) *UnsupportedSender {
	return &UnsupportedSender{
		kind:   strings.TrimSpace(strings.ToLower(kind)),
		reason: strings.TrimSpace(reason),
	}
}

func (a *UnsupportedSender) Kind() string {
	if a == nil {
		return ""
	}
	return a.kind
}

func (a *UnsupportedSender) Send(context.Context, core.ProbeRequest) (core.ProbeResponse, error) {
	if a == nil {
		return core.ProbeResponse{}, fmt.Errorf("transport: sender is nil")
	}
	if a.reason != "" {
		return core.ProbeResponse{}, fmt.Errorf(
			"transport: %s sender is not configured: %s",
			a.kind,
			a.reason,
		)
	}
	return core.ProbeResponse{}, fmt.Errorf(
		"transport: %s sender is not configured",
		a.kind,
	)
}

var _ core.Sender = (*UnsupportedSender)(nil)
