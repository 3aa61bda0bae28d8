package emailingest

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goliatone/go-webhook-probe/core"
)

const (
	ScenarioBrowserFix  = "browser-fix"
	ScenarioIngestSmoke = "ingest-smoke"
)

// Shared literals of the simulated inbound email. The ingest endpoint
// validates none of these beyond presence, so the values stay frozen to
// keep runs comparable.
const (
	payloadTimestamp = "1754925000"
	payloadToken     = "testtoken"
	payloadSignature = "testsig"
	payloadRecipient = "upload+94a7b7f0-3266-4a4f-9d4e-875542d30e62@myhome-tech.com"
	payloadSender    = "test@example.com"
	payloadSubject   = "Test PDF Browser Fix"
	payloadBodyText  = "Testing with browser dependencies fixed"
	payloadBodyHTML  = "<html><body><h1>Test PDF Browser Fix</h1><p>This should now work with the browser dependencies resolved.</p></body></html>"

	browserFixMessageID  = "test-browser-fix-success"
	smokeMessageIDPrefix = "test-ingest-"
)

func basePayload() core.FormPayload {
	return core.FormPayload{
		Timestamp: payloadTimestamp,
		Token:     payloadToken,
		Signature: payloadSignature,
		Recipient: payloadRecipient,
		Sender:    payloadSender,
		Subject:   payloadSubject,
		BodyPlain: payloadBodyText,
		BodyHTML:  payloadBodyHTML,
	}
}

// BrowserFixScenario replays the exact payload used to verify the
// ingest endpoint after its browser dependencies were repaired. Every
// field, the message id included, is frozen.
type BrowserFixScenario struct{}

func (BrowserFixScenario) Name() string { return ScenarioBrowserFix }

func (BrowserFixScenario) Describe() string {
	return "replays the frozen payload that verified the browser dependency fix"
}

func (BrowserFixScenario) Payload(time.Time) core.FormPayload {
	payload := basePayload()
	payload.MessageID = browserFixMessageID
	return payload
}

// IngestSmokeScenario posts the same email body with a message id
// derived from the clock, so repeated runs stay distinguishable in the
// receiver's dedupe window.
type IngestSmokeScenario struct{}

func (IngestSmokeScenario) Name() string { return ScenarioIngestSmoke }

func (IngestSmokeScenario) Describe() string {
	return "posts the standard payload with a unique clock-derived message id"
}

func (IngestSmokeScenario) Payload(now time.Time) core.FormPayload {
	payload := basePayload()
	payload.MessageID = smokeMessageIDPrefix + strconv.FormatInt(now.Unix(), 10)
	return payload
}

func Scenarios() []core.PayloadScenario {
	return []core.PayloadScenario{
		BrowserFixScenario{},
		IngestSmokeScenario{},
	}
}

// Register adds both built-in scenarios, skipping any the registry
// already holds.
func Register(registry core.Registry) error {
	if registry == nil {
		return fmt.Errorf("emailingest: registry is required")
	}
	for _, scenario := range Scenarios() {
		if _, exists := registry.Get(scenario.Name()); exists {
			continue
		}
		if err := registry.Register(scenario); err != nil {
			return fmt.Errorf("emailingest: register %s: %w", scenario.Name(), err)
		}
	}
	return nil
}

var (
	_ core.PayloadScenario = BrowserFixScenario{}
	_ core.PayloadScenario = IngestSmokeScenario{}
)
