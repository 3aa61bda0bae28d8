package webhookprobe

import (
	"testing"
	"time"

	"github.com/goliatone/go-webhook-probe/core"
)

func TestExtensionHooks_RegisterAndApplyScenarioPacks(t *testing.T) {
	hooks := NewExtensionHooks()
	pack := ScenarioPack{
		Name: "downstream-pack",
		Scenarios: []core.PayloadScenario{
			extensionScenario{name: "custom-scenario"},
		},
	}
	if err := hooks.RegisterScenarioPack(pack); err != nil {
		t.Fatalf("register scenario pack: %v", err)
	}
	if err := hooks.RegisterScenarioPack(pack); err == nil {
		t.Fatalf("expected duplicate scenario pack registration error")
	}

	registry := core.NewScenarioRegistry()
	if err := hooks.ApplyScenarioPacks(registry); err != nil {
		t.Fatalf("apply scenario packs: %v", err)
	}
	if _, ok := registry.Get("custom-scenario"); !ok {
		t.Fatalf("expected scenario pack registration in registry")
	}
}

func TestExtensionHooks_ScenarioPacksAreSortedAndCloned(t *testing.T) {
	hooks := NewExtensionHooks()
	if err := hooks.RegisterScenarioPack(ScenarioPack{
		Name:      "pack-b",
		Scenarios: []core.PayloadScenario{extensionScenario{name: "b-scenario"}},
	}); err != nil {
		t.Fatalf("register pack b: %v", err)
	}
	if err := hooks.RegisterScenarioPack(ScenarioPack{
		Name:      "pack-a",
		Scenarios: []core.PayloadScenario{extensionScenario{name: "a-scenario"}},
	}); err != nil {
		t.Fatalf("register pack a: %v", err)
	}

	packs := hooks.ScenarioPacks()
	if len(packs) != 2 {
		t.Fatalf("expected two scenario packs, got %d", len(packs))
	}
	if packs[0].Name != "pack-a" || packs[1].Name != "pack-b" {
		t.Fatalf("expected deterministic pack ordering, got %#v", packs)
	}

	packs[0].Scenarios[0] = nil
	again := hooks.ScenarioPacks()
	if again[0].Scenarios[0] == nil {
		t.Fatalf("expected pack snapshot to be cloned")
	}
}

func TestExtensionHooks_CommandQueryBundles(t *testing.T) {
	hooks := NewExtensionHooks()
	if err := hooks.RegisterCommandQueryBundle("probe_bundle", func(service CommandQueryService) (any, error) {
		return map[string]any{
			"run_probe_fn":      service.RunProbe,
			"list_scenarios_fn": service.ListScenarios,
		}, nil
	}); err != nil {
		t.Fatalf("register bundle: %v", err)
	}
	if err := hooks.RegisterCommandQueryBundle("probe_bundle", func(CommandQueryService) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate bundle registration error")
	}

	names := hooks.BundleNames()
	if len(names) != 1 || names[0] != "probe_bundle" {
		t.Fatalf("unexpected bundle names: %#v", names)
	}

	svc := &stubFacadeService{}
	bundles, err := hooks.BuildCommandQueryBundles(svc)
	if err != nil {
		t.Fatalf("build bundles: %v", err)
	}
	if len(bundles) != 1 {
		t.Fatalf("expected one bundle, got %d", len(bundles))
	}
	if _, ok := bundles["probe_bundle"]; !ok {
		t.Fatalf("expected probe_bundle entry in built bundles")
	}
}

func TestExtensionHooks_RejectsInvalidRegistrations(t *testing.T) {
	hooks := NewExtensionHooks()
	if err := hooks.RegisterScenarioPack(ScenarioPack{Name: "  "}); err == nil {
		t.Fatalf("expected blank pack name error")
	}
	if err := hooks.RegisterScenarioPack(ScenarioPack{Name: "empty"}); err == nil {
		t.Fatalf("expected empty pack error")
	}
	if err := hooks.RegisterCommandQueryBundle("bundle", nil); err == nil {
		t.Fatalf("expected nil factory error")
	}
	if err := hooks.ApplyScenarioPacks(nil); err == nil {
		t.Fatalf("expected nil registry error")
	}
}

type extensionScenario struct {
	name string
}

func (s extensionScenario) Name() string { return s.name }

func (extensionScenario) Describe() string { return "test scenario" }

func (extensionScenario) Payload(time.Time) core.FormPayload {
	return core.FormPayload{
		Timestamp: "1754925000",
		Token:     "testtoken",
		Signature: "testsig",
		Recipient: "upload@example.com",
		Sender:    "test@example.com",
		Subject:   "subject",
		BodyPlain: "plain",
		BodyHTML:  "<p>html</p>",
		MessageID: "msg-1",
	}
}
