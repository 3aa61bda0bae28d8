package webhookprobe

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-webhook-probe/core"
)

type ScenarioPack struct {
	Name      string
	Scenarios []core.PayloadScenario
}

type CommandQueryBundleFactory func(service CommandQueryService) (any, error)

type ExtensionHooks struct {
	mu sync.RWMutex

	scenarioPacks map[string]ScenarioPack
	bundles       map[string]CommandQueryBundleFactory
}

func NewExtensionHooks() *ExtensionHooks {
	return &ExtensionHooks{
		scenarioPacks: map[string]ScenarioPack{},
		bundles:       map[string]CommandQueryBundleFactory{},
	}
}

func (h *ExtensionHooks) RegisterScenarioPack(pack ScenarioPack) error {
	if h == nil {
		return fmt.Errorf("webhookprobe: extension hooks are nil")
	}
	name := strings.TrimSpace(pack.Name)
	if name == "" {
		return fmt.Errorf("webhookprobe: scenario pack name is required")
	}
	if len(pack.Scenarios) == 0 {
		return fmt.Errorf("webhookprobe: scenario pack %q has no scenarios", name)
	}

	normalized := ScenarioPack{
		Name:      name,
		Scenarios: append([]core.PayloadScenario(nil), pack.Scenarios...),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.scenarioPacks[name]; exists {
		return fmt.Errorf("webhookprobe: scenario pack %q already registered", name)
	}
	h.scenarioPacks[name] = normalized
	return nil
}

func (h *ExtensionHooks) RegisterCommandQueryBundle(
	name string,
	factory CommandQueryBundleFactory,
) error {
	if h == nil {
		return fmt.Errorf("webhookprobe: extension hooks are nil")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("webhookprobe: command/query bundle name is required")
	}
	if factory == nil {
		return fmt.Errorf("webhookprobe: command/query bundle %q factory is required", name)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.bundles[name]; exists {
		return fmt.Errorf("webhookprobe: command/query bundle %q already registered", name)
	}
	h.bundles[name] = factory
	return nil
}

func (h *ExtensionHooks) ApplyScenarioPacks(registry core.Registry) error {
	if h == nil {
		return nil
	}
	if registry == nil {
		return fmt.Errorf("webhookprobe: registry is required")
	}

	packs := h.ScenarioPacks()
	for _, pack := range packs {
		for _, scenario := range pack.Scenarios {
			if scenario == nil {
				return fmt.Errorf("webhookprobe: scenario pack %q contains nil scenario", pack.Name)
			}
			if err := registry.Register(scenario); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *ExtensionHooks) BuildCommandQueryBundles(
	service CommandQueryService,
) (map[string]any, error) {
	if h == nil {
		return map[string]any{}, nil
	}
	if service == nil {
		return nil, fmt.Errorf("webhookprobe: command/query service is required")
	}

	h.mu.RLock()
	names := make([]string, 0, len(h.bundles))
	for name := range h.bundles {
		names = append(names, name)
	}
	sort.Strings(names)
	factories := make(map[string]CommandQueryBundleFactory, len(h.bundles))
	for name, factory := range h.bundles {
		factories[name] = factory
	}
	h.mu.RUnlock()

	result := make(map[string]any, len(names))
	for _, name := range names {
		bundle, err := factories[name](service)
		if err != nil {
			return nil, err
		}
		result[name] = bundle
	}
	return result, nil
}

func (h *ExtensionHooks) ScenarioPacks() []ScenarioPack {
	if h == nil {
		return nil
	}
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.scenarioPacks))
	for name := range h.scenarioPacks {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]ScenarioPack, 0, len(names))
	for _, name := range names {
		pack := h.scenarioPacks[name]
		out = append(out, ScenarioPack{
			Name:      pack.Name,
			Scenarios: append([]core.PayloadScenario(nil), pack.Scenarios...),
		})
	}
	return out
}

func (h *ExtensionHooks) BundleNames() []string {
	if h == nil {
		return nil
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.bundles))
	for name := range h.bundles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
