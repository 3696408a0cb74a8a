package graph

import (
	"math/big"
	"reflect"
	"sync"
	"time"
)

// TypeRegistry resolves datatype names to Datatype implementations and maps
// Go value types to datatypes for by-value literal construction. It is safe
// for concurrent use.
type TypeRegistry struct {
	mu      sync.RWMutex
	byIRI   map[string]Datatype
	byValue map[reflect.Type]Datatype
}

// NewTypeRegistry returns an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		byIRI:   make(map[string]Datatype),
		byValue: make(map[reflect.Type]Datatype),
	}
}

// Register makes a datatype resolvable by its IRI.
func (r *TypeRegistry) Register(dt Datatype) {
	r.mu.Lock()
	r.byIRI[dt.IRI()] = dt
	r.mu.Unlock()
}

// RegisterValueType maps the dynamic type of sample to dt for by-value
// construction. The sample's value is ignored.
func (r *TypeRegistry) RegisterValueType(sample any, dt Datatype) {
	t := reflect.TypeOf(sample)
	if t == nil {
		return
	}
	r.mu.Lock()
	r.byValue[t] = dt
	r.mu.Unlock()
}

// TypeByName returns the datatype registered under the IRI.
func (r *TypeRegistry) TypeByName(iri string) (Datatype, bool) {
	r.mu.RLock()
	dt, ok := r.byIRI[iri]
	r.mu.RUnlock()
	return dt, ok
}

// SafeTypeByName returns the datatype registered under the IRI, or an
// opaque datatype with that IRI when none is registered. Lookup is total;
// it never fails. The opaque fallback treats every lexical form as valid.
func (r *TypeRegistry) SafeTypeByName(iri string) Datatype {
	if dt, ok := r.TypeByName(iri); ok {
		return dt
	}
	return stringDatatype{iri: iri}
}

// TypeByValue returns the datatype registered for the dynamic type of v.
func (r *TypeRegistry) TypeByValue(v any) (Datatype, bool) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, false
	}
	r.mu.RLock()
	dt, ok := r.byValue[t]
	r.mu.RUnlock()
	return dt, ok
}

var defaultRegistry = newDefaultRegistry()

// DefaultRegistry returns the process-wide registry pre-populated with the
// built-in datatypes. The default factory resolves datatypes against it.
func DefaultRegistry() *TypeRegistry {
	return defaultRegistry
}

func newDefaultRegistry() *TypeRegistry {
	r := NewTypeRegistry()
	for _, dt := range []Datatype{
		XSDString, XSDAnyURI, RDFLangString,
		XSDBoolean, XSDInteger, XSDDecimal,
		XSDDouble, XSDFloat, XSDDateTime, XSDDate,
	} {
		r.Register(dt)
	}

	r.RegisterValueType("", XSDString)
	r.RegisterValueType(false, XSDBoolean)
	r.RegisterValueType(int(0), XSDInteger)
	r.RegisterValueType(int8(0), XSDInteger)
	r.RegisterValueType(int16(0), XSDInteger)
	r.RegisterValueType(int32(0), XSDInteger)
	r.RegisterValueType(int64(0), XSDInteger)
	r.RegisterValueType(uint(0), XSDInteger)
	r.RegisterValueType(uint8(0), XSDInteger)
	r.RegisterValueType(uint16(0), XSDInteger)
	r.RegisterValueType(uint32(0), XSDInteger)
	r.RegisterValueType(uint64(0), XSDInteger)
	r.RegisterValueType((*big.Int)(nil), XSDInteger)
	r.RegisterValueType((*big.Rat)(nil), XSDDecimal)
	r.RegisterValueType(float64(0), XSDDouble)
	r.RegisterValueType(float32(0), XSDFloat)
	r.RegisterValueType(time.Time{}, XSDDateTime)
	return r
}
