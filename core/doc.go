// Package core contains the canonical probe domain contracts, entities,
// and orchestration logic. Lower-level senders must depend on this
// package; core must not depend on transport-specific adapters.
package core
