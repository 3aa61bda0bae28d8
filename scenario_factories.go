package webhookprobe

import (
	"github.com/goliatone/go-webhook-probe/core"
	"github.com/goliatone/go-webhook-probe/scenarios/emailingest"
)

func BrowserFixScenario() core.PayloadScenario {
	return emailingest.BrowserFixScenario{}
}

func IngestSmokeScenario() core.PayloadScenario {
	return emailingest.IngestSmokeScenario{}
}

func EmailIngestScenarios() []core.PayloadScenario {
	return emailingest.Scenarios()
}

func EmailIngestTarget() core.Target {
	return emailingest.DefaultTarget()
}

func RegisterDefaultScenarios(registry core.Registry) error {
	return emailingest.Register(registry)
}
