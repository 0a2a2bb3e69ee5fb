package headers

import (
	"iter"

	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Headers is an ordered collection of header fields. It acts as a multimap
// but uses linear search instead, which proves to be more efficient on
// relatively low amount of entries, which is always the case here. Key
// comparison is ASCII case-insensitive, insertion order is preserved.
type Headers struct {
	pairs      []Pair
	uniqueBuff []string
	valuesBuff []string
}

func New() *Headers {
	return new(Headers)
}

// NewPrealloc returns an instance of Headers with pre-allocated underlying
// storage.
func NewPrealloc(n int) *Headers {
	return &Headers{
		pairs: make([]Pair, 0, n),
	}
}

// NewFromMap returns a new instance with already inserted values from given
// map. Note: as maps are unordered, the resulting entry order is undefined.
func NewFromMap(m map[string][]string) *Headers {
	h := NewPrealloc(len(m))

	for key, values := range m {
		for _, value := range values {
			h.Add(key, value)
		}
	}

	return h
}

// Add appends a new field, preserving the order of insertion.
func (h *Headers) Add(key, value string) *Headers {
	h.pairs = append(h.pairs, Pair{Key: key, Value: value})
	return h
}

// Value returns the first value corresponding to the key, otherwise an empty
// string.
func (h *Headers) Value(key string) string {
	return h.ValueOr(key, "")
}

// ValueOr returns either the first value corresponding to the key or the
// fallback.
func (h *Headers) ValueOr(key, or string) string {
	value, found := h.Get(key)
	if !found {
		return or
	}

	return value
}

// Get returns the first value and a bool indicating whether it was found at
// all.
func (h *Headers) Get(key string) (value string, found bool) {
	for _, pair := range h.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Values returns all values by the key in their original order. Returns nil
// if the key isn't present.
//
// WARNING: calling it twice will override values, returned by the first call.
// Consider copying the returned slice for safe use.
func (h *Headers) Values(key string) (values []string) {
	h.valuesBuff = h.valuesBuff[:0]

	for _, pair := range h.pairs {
		if strcomp.EqualFold(pair.Key, key) {
			h.valuesBuff = append(h.valuesBuff, pair.Value)
		}
	}

	if len(h.valuesBuff) == 0 {
		return nil
	}

	return h.valuesBuff
}

// Keys returns all unique presented keys.
//
// WARNING: calling it twice will override values, returned by the first call.
// Consider copying the returned slice for safe use.
func (h *Headers) Keys() []string {
	h.uniqueBuff = h.uniqueBuff[:0]

	for _, pair := range h.pairs {
		if contains(h.uniqueBuff, pair.Key) {
			continue
		}

		h.uniqueBuff = append(h.uniqueBuff, pair.Key)
	}

	return h.uniqueBuff
}

// Iter returns an iterator over the fields in their original order.
func (h *Headers) Iter() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range h.pairs {
			if !yield(pair.Key, pair.Value) {
				break
			}
		}
	}
}

// Has indicates whether there's an entry of the key.
func (h *Headers) Has(key string) bool {
	_, found := h.Get(key)
	return found
}

// Len returns the number of stored fields.
func (h *Headers) Len() int {
	return len(h.pairs)
}

func (h *Headers) Empty() bool {
	return h.Len() == 0
}

// Unwrap exposes the underlying pairs slice.
func (h *Headers) Unwrap() []Pair {
	return h.pairs
}

// Clone creates a deep copy, which may be used later or stored somewhere
// safely. However, it comes at cost of multiple allocations.
func (h *Headers) Clone() *Headers {
	return &Headers{pairs: clone(h.pairs)}
}

// Equal compares the two collections, key case-insensitively, order included.
func (h *Headers) Equal(other *Headers) bool {
	if h.Len() != other.Len() {
		return false
	}

	for i, pair := range h.pairs {
		if !strcomp.EqualFold(pair.Key, other.pairs[i].Key) ||
			pair.Value != other.pairs[i].Value {
			return false
		}
	}

	return true
}

// Clear all the entries. However, all the allocated space won't be freed.
func (h *Headers) Clear() *Headers {
	h.pairs = h.pairs[:0]
	return h
}

func contains(collection []string, key string) bool {
	for _, element := range collection {
		if strcomp.EqualFold(element, key) {
			return true
		}
	}

	return false
}

func clone[T any](source []T) []T {
	if len(source) == 0 {
		return nil
	}

	newSlice := make([]T, len(source))
	copy(newSlice, source)

	return newSlice
}
