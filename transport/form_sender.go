package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-webhook-probe/core"
)

const KindForm = "form"

const defaultFormClientTimeout = 30 * time.Second
const defaultFormResponseBodyLimit int64 = 1 << 20 // 1 MiB

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// FormSender posts probe payloads as form-encoded bodies. The form
// content type is always applied; request headers may layer on top but
// cannot clear it.
type FormSender struct {
	Client               HTTPDoer
	DefaultHeaders       map[string]string
	MaxResponseBodyBytes int64
}

func NewFormSender(client HTTPDoer) *FormSender {
	if client == nil {
		client = &http.Client{Timeout: defaultFormClientTimeout}
	}
	return &FormSender{
		Client:               client,
		DefaultHeaders:       map[string]string{},
		MaxResponseBodyBytes: defaultFormResponseBodyLimit,
	}
}

func (*FormSender) Kind() string {
	return KindForm
}

func (a *FormSender) Send(ctx context.Context, req core.ProbeRequest) (core.ProbeResponse, error) {
	if a == nil || a.Client == nil {
		return core.ProbeResponse{}, transportError(
			"transport: form sender requires an http client",
			goerrors.CategoryInternal,
			http.StatusInternalServerError,
			map[string]any{"sender": KindForm},
		)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	method := strings.TrimSpace(strings.ToUpper(req.Method))
	if method == "" {
		method = http.MethodPost
	}
	parsedURL, err := url.Parse(strings.TrimSpace(req.URL))
	if err != nil {
		return core.ProbeResponse{}, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"transport: invalid request url",
			http.StatusBadRequest,
			map[string]any{"sender": KindForm, "url": strings.TrimSpace(req.URL)},
		)
	}
	if parsedURL.String() == "" {
		return core.ProbeResponse{}, transportError(
			"transport: request url is required",
			goerrors.CategoryBadInput,
			http.StatusBadRequest,
			map[string]any{"sender": KindForm},
		)
	}

	requestCtx := ctx
	cancel := func() {}
	if req.Timeout > 0 {
		requestCtx, cancel = context.WithTimeout(ctx, req.Timeout)
	}
	defer cancel()

	body := req.Payload.Encode()
	httpReq, err := http.NewRequestWithContext(requestCtx, method, parsedURL.String(), strings.NewReader(body))
	if err != nil {
		return core.ProbeResponse{}, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"transport: create http request",
			http.StatusBadRequest,
			map[string]any{"sender": KindForm, "method": method, "url": parsedURL.String()},
		)
	}
	httpReq.Header.Set(core.HeaderContentType, core.ContentTypeForm)
	for key, value := range a.DefaultHeaders {
		if strings.TrimSpace(key) == "" {
			continue
		}
		httpReq.Header.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	for key, value := range req.Headers {
		if strings.TrimSpace(key) == "" {
			continue
		}
		httpReq.Header.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	startedAt := time.Now().UTC()
	httpRes, err := a.Client.Do(httpReq)
	if err != nil {
		return core.ProbeResponse{}, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: execute probe request",
			http.StatusBadGateway,
			map[string]any{"sender": KindForm, "method": method, "url": parsedURL.String()},
		)
	}
	defer httpRes.Body.Close()

	maxBodyBytes := resolveResponseBodyLimit(req.MaxResponseBodyBytes, a.MaxResponseBodyBytes)
	resBody, err := io.ReadAll(io.LimitReader(httpRes.Body, maxBodyBytes+1))
	if err != nil {
		return core.ProbeResponse{}, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: read response body",
			http.StatusBadGateway,
			map[string]any{"sender": KindForm, "status_code": httpRes.StatusCode},
		)
	}
	if int64(len(resBody)) > maxBodyBytes {
		return core.ProbeResponse{}, transportError(
			fmt.Sprintf("transport: response body exceeds limit of %d bytes", maxBodyBytes),
			goerrors.CategoryExternal,
			http.StatusBadGateway,
			map[string]any{
				"sender":           KindForm,
				"status_code":      httpRes.StatusCode,
				"response_limit_b": maxBodyBytes,
			},
		)
	}

	return core.ProbeResponse{
		StatusCode: httpRes.StatusCode,
		Headers:    flattenHeaders(httpRes.Header),
		Body:       resBody,
		Metadata: map[string]any{
			"duration_ms": time.Since(startedAt).Milliseconds(),
			"kind":        KindForm,
		},
	}, nil
}

func flattenHeaders(headers http.Header) map[string]string {
	if len(headers) == 0 {
		return map[string]string{}
	}
	flat := make(map[string]string, len(headers))
	for key, values := range headers {
		if len(values) == 0 {
			flat[key] = ""
			continue
		}
		flat[key] = strings.Join(values, ",")
	}
	return flat
}

func resolveResponseBodyLimit(requestLimit int64, senderLimit int64) int64 {
	if requestLimit > 0 {
		return requestLimit
	}
	if senderLimit > 0 {
		return senderLimit
	}
	return defaultFormResponseBodyLimit
}

var _ core.Sender = (*FormSender)(nil)
