package devkit

import (
	"net/url"
	"strconv"

	"github.com/goliatone/go-webhook-probe/core"
)

// BrowserFixFormValues is the wire-level oracle for the frozen ingest
// payload. The literals are spelled out here on purpose so sender and
// scenario tests compare against values that never pass through the
// payload types they exercise.
func BrowserFixFormValues() url.Values {
	return url.Values{
		"timestamp":  {"1754925000"},
		"token":      {"testtoken"},
		"signature":  {"testsig"},
		"recipient":  {"upload+94a7b7f0-3266-4a4f-9d4e-875542d30e62@myhome-tech.com"},
		"sender":     {"test@example.com"},
		"subject":    {"Test PDF Browser Fix"},
		"body-plain": {"Testing with browser dependencies fixed"},
		"body-html":  {"<html><body><h1>Test PDF Browser Fix</h1><p>This should now work with the browser dependencies resolved.</p></body></html>"},
		"Message-Id": {"test-browser-fix-success"},
	}
}

// SmokeFormValues mirrors BrowserFixFormValues with the clock-derived
// message id the smoke scenario produces for the given Unix instant.
func SmokeFormValues(unix int64) url.Values {
	values := BrowserFixFormValues()
	values.Set("Message-Id", "test-ingest-"+strconv.FormatInt(unix, 10))
	return values
}

func OKResponse() core.ProbeResponse {
	return core.ProbeResponse{
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"status":"accepted"}`),
		Metadata:   map[string]any{"kind": "form"},
	}
}
