package core

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ProbeErrorBadInput         = "PROBE_BAD_INPUT"
	ProbeErrorScenarioNotFound = "PROBE_SCENARIO_NOT_FOUND"
	ProbeErrorScenarioConflict = "PROBE_SCENARIO_CONFLICT"
	ProbeErrorTransportFailed  = "PROBE_TRANSPORT_FAILED"
	ProbeErrorInternal         = "PROBE_INTERNAL_ERROR"
)

func probeErrorMapper(err error) *goerrors.Error {
	if err == nil {
		return nil
	}

	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return ensureProbeErrorEnvelope(richErr)
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "scenario") && strings.Contains(msg, "not found"):
		return newProbeError(err.Error(), goerrors.CategoryNotFound, ProbeErrorScenarioNotFound)
	case strings.Contains(msg, "scenario") && strings.Contains(msg, "already registered"):
		return newProbeError(err.Error(), goerrors.CategoryConflict, ProbeErrorScenarioConflict)
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "connection refused"), strings.Contains(msg, "transport"):
		return newProbeError(err.Error(), goerrors.CategoryExternal, ProbeErrorTransportFailed)
	case strings.Contains(msg, "required"), strings.Contains(msg, "invalid"), strings.Contains(msg, "unsupported"):
		return newProbeError(err.Error(), goerrors.CategoryBadInput, ProbeErrorBadInput)
	}

	mapped := goerrors.MapToError(err, goerrors.DefaultErrorMappers())
	return ensureProbeErrorEnvelope(mapped)
}

func newProbeError(message string, category goerrors.Category, textCode string) *goerrors.Error {
	return ensureProbeErrorEnvelope(
		goerrors.New(message, category).
			WithTextCode(textCode),
	)
}

func ensureProbeErrorEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if err.Code == 0 {
		err.Code = probeHTTPStatus(err.Category)
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = defaultProbeTextCode(err.Category)
	}
	if err.Category == goerrors.CategoryInternal && strings.TrimSpace(err.Message) == "" {
		err.Message = "An unexpected error occurred"
	}
	return err
}

func defaultProbeTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return ProbeErrorBadInput
	case goerrors.CategoryNotFound:
		return ProbeErrorScenarioNotFound
	case goerrors.CategoryConflict:
		return ProbeErrorScenarioConflict
	case goerrors.CategoryExternal, goerrors.CategoryOperation:
		return ProbeErrorTransportFailed
	default:
		return ProbeErrorInternal
	}
}

func probeHTTPStatus(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return http.StatusBadRequest
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	case goerrors.CategoryConflict:
		return http.StatusConflict
	case goerrors.CategoryExternal, goerrors.CategoryOperation:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
