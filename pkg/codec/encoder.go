package codec

import (
	"fmt"
	"sync"

	codecerrors "c2e-dev/c2e/pkg/codec/errors"
)

// Encoder is a registry of codecs keyed by unique target name. Add performs
// a check-then-insert against the target set, so it is guarded by a mutex
// and safe to call from the goroutines of a parallel compilation; insertion
// order is preserved for enumeration.
type Encoder struct {
	mu      sync.Mutex
	codecs  []*Codec
	targets map[string]*Codec
}

// NewEncoder creates an empty codec registry.
func NewEncoder() *Encoder {
	return &Encoder{
		targets: make(map[string]*Codec),
	}
}

// Add registers a codec. It fails with a duplicate-target error if a codec
// with the same target name was already added, leaving the existing
// registration untouched.
func (e *Encoder) Add(c *Codec) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.targets[c.Target()]; exists {
		return &codecerrors.Error{
			Type:       codecerrors.ErrorTypeDuplicateTarget,
			Message:    fmt.Sprintf("a codec with target %q already exists in this encoder", c.Target()),
			Suggestion: "each codec document must name a distinct TARGET",
		}
	}
	e.targets[c.Target()] = c
	e.codecs = append(e.codecs, c)
	return nil
}

// Codecs returns all registered codecs in insertion order.
func (e *Encoder) Codecs() []*Codec {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*Codec, len(e.codecs))
	copy(out, e.codecs)
	return out
}

// Get returns the codec registered for target, or nil.
func (e *Encoder) Get(target string) *Codec {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.targets[target]
}

// Len returns the number of registered codecs.
func (e *Encoder) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.codecs)
}
