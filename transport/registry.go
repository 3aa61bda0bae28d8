package transport

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-webhook-probe/core"
)

type SenderFactory func(config map[string]any) (core.Sender, error)

type Registry struct {
	mu        sync.RWMutex
	senders   map[string]core.Sender
	factories map[string]SenderFactory
}

func NewRegistry() *Registry {
	return &Registry{
		senders:   map[string]core.Sender{},
		factories: map[string]SenderFactory{},
	}
}

// NewDefaultRegistry registers the form sender plus placeholder
// factories for the encodings the probe does not speak yet.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	_ = registry.Register(NewFormSender(nil))
	for _, kind := range []string{KindJSON, KindMultipart} {
		_ = registry.RegisterFactory(kind, defaultUnsupportedFactory(kind))
	}
	return registry
}

func (r *Registry) Register(sender core.Sender) error {
	if r == nil {
		return fmt.Errorf("transport: registry is nil")
	}
	if sender == nil {
		return fmt.Errorf("transport: sender is nil")
	}
	kind := normalizeKind(sender.Kind())
	if kind == "" {
		return fmt.Errorf("transport: sender kind is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.senders[kind]; exists {
		return fmt.Errorf("transport: sender kind %q already registered", kind)
	}
	r.senders[kind] = sender
	return nil
}

func (r *Registry) RegisterFactory(kind string, factory SenderFactory) error {
	if r == nil {
		return fmt.Errorf("transport: registry is nil")
	}
	kind = normalizeKind(kind)
	if kind == "" {
		return fmt.Errorf("transport: sender kind is required")
	}
	if factory == nil {
		return fmt.Errorf("transport: sender factory is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("transport: sender factory kind %q already registered", kind)
	}
	r.factories[kind] = factory
	return nil
}

func (r *Registry) Build(kind string, config map[string]any) (core.Sender, error) {
	if r == nil {
		return nil, fmt.Errorf("transport: registry is nil")
	}
	kind = normalizeKind(kind)
	if kind == "" {
		return nil, fmt.Errorf("transport: sender kind is required")
	}

	r.mu.RLock()
	sender, ok := r.senders[kind]
	factory := r.factories[kind]
	r.mu.RUnlock()
	if ok {
		return sender, nil
	}
	if factory == nil {
		return nil, fmt.Errorf("transport: sender kind %q not registered", kind)
	}
	built, err := factory(cloneMap(config))
	if err != nil {
		return nil, err
	}
	if built == nil {
		return nil, fmt.Errorf("transport: factory for %q returned nil sender", kind)
	}
	return built, nil
}

func (r *Registry) Get(kind string) (core.Sender, bool) {
	if r == nil {
		return nil, false
	}
	kind = normalizeKind(kind)
	r.mu.RLock()
	defer r.mu.RUnlock()
	sender, ok := r.senders[kind]
	return sender, ok
}

func (r *Registry) List() []core.Sender {
	if r == nil {
		return []core.Sender{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.senders))
	for kind := range r.senders {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	result := make([]core.Sender, 0, len(kinds))
	for _, kind := range kinds {
		result = append(result, r.senders[kind])
	}
	return result
}

func normalizeKind(kind string) string {
	return strings.TrimSpace(strings.ToLower(kind))
}

func defaultUnsupportedFactory(kind string) SenderFactory {
	return func(config map[string]any) (core.Sender, error) {
		reason := strings.TrimSpace(fmt.Sprint(config["reason"]))
		if reason == "" || reason == "<nil>" {
			reason = "not implemented"
		}
		return NewUnsupportedSender(kind, reason), nil
	}
}

func cloneMap(input map[string]any) map[string]any {
	if len(input) == 0 {
		return map[string]any{}
	}
	output := make(map[string]any, len(input))
	for key, value := range input {
		output[key] = value
	}
	return output
}
