package core

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ScenarioRegistry keys scenarios by their lowercased trimmed name so
// lookups are forgiving about casing.
type ScenarioRegistry struct {
	mu        sync.RWMutex
	scenarios map[string]PayloadScenario
}

func NewScenarioRegistry() *ScenarioRegistry {
	return &ScenarioRegistry{scenarios: make(map[string]PayloadScenario)}
}

func (r *ScenarioRegistry) Register(scenario PayloadScenario) error {
	if scenario == nil {
		return fmt.Errorf("core: scenario is nil")
	}
	name := normalizeScenarioName(scenario.Name())
	if name == "" {
		return fmt.Errorf("core: scenario name is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.scenarios[name]; exists {
		return fmt.Errorf("%w: %s", ErrScenarioExists, name)
	}
	r.scenarios[name] = scenario
	return nil
}

func (r *ScenarioRegistry) Get(name string) (PayloadScenario, bool) {
	key := normalizeScenarioName(name)
	if key == "" {
		return nil, false
	}
	r.mu.RLock()
	scenario, ok := r.scenarios[key]
	r.mu.RUnlock()
	return scenario, ok
}

func (r *ScenarioRegistry) List() []PayloadScenario {
	r.mu.RLock()
	keys := make([]string, 0, len(r.scenarios))
	for name := range r.scenarios {
		keys = append(keys, name)
	}
	r.mu.RUnlock()
	sort.Strings(keys)
	scenarios := make([]PayloadScenario, 0, len(keys))
	r.mu.RLock()
	for _, name := range keys {
		scenarios = append(scenarios, r.scenarios[name])
	}
	r.mu.RUnlock()
	return scenarios
}

func normalizeScenarioName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
