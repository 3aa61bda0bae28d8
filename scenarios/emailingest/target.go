// Package emailingest carries the built-in probe scenarios for the
// email ingest endpoint of the PDF pipeline.
package emailingest

import "github.com/goliatone/go-webhook-probe/core"

const (
	TargetID = "email-ingest"

	// IngestURL is the deployed ingest endpoint the probes exercise.
	IngestURL = "https://daf47820-7f0c-4127-926d-69f7ca178fbc-00-ku01l6bih555.kirk.replit.dev/api/email-ingest"

	// BypassToken lets probe traffic through the ingest auth checks.
	BypassToken = "email-pdf-test"
)

func DefaultTarget() core.Target {
	return core.Target{
		ID:  TargetID,
		URL: IngestURL,
		Headers: map[string]string{
			core.HeaderTestBypass: BypassToken,
		},
		Timeout:      core.DefaultProbeTimeout,
		MaxBodyBytes: core.DefaultResponseBodyLimit,
	}
}
