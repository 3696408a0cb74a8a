package graph

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator supplies fresh blank node identifiers. Implementations must
// never issue the same id twice, including to concurrent callers.
type IDGenerator interface {
	FreshID() string
}

// UUIDGenerator issues random UUID identifiers. Safe for concurrent use
// without locking; ids are globally unique across processes.
type UUIDGenerator struct{}

// FreshID returns a new random UUID string.
func (UUIDGenerator) FreshID() string { return uuid.NewString() }

// SequenceIDGenerator issues identifiers from an atomic counter, giving a
// deterministic "b1", "b2", ... sequence. Unique within one generator only;
// intended for tests and reproducible pipelines.
type SequenceIDGenerator struct {
	// Prefix is prepended to each id. Defaults to "b".
	Prefix  string
	counter atomic.Uint64
}

// FreshID returns the next id in the sequence.
func (g *SequenceIDGenerator) FreshID() string {
	prefix := g.Prefix
	if prefix == "" {
		prefix = "b"
	}
	return prefix + strconv.FormatUint(g.counter.Add(1), 10)
}
