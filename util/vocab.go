package util

import (
	"fmt"
	"sync"
)

// Vocab enumerates token strings. Reads are safe for concurrent use. A
// frozen vocabulary rejects additions, so embedding tables built over it
// keep a stable width.
type Vocab struct {
	mu     sync.RWMutex
	enum   map[string]int
	index  []string
	frozen bool
}

func NewVocab(capacity int) *Vocab {
	return &Vocab{
		enum:  make(map[string]int, capacity),
		index: make([]string, 0, capacity),
	}
}

// NewVocabFromTokens enumerates the given tokens in order, skipping
// duplicates.
func NewVocabFromTokens(tokens []string) *Vocab {
	v := NewVocab(len(tokens))
	for _, token := range tokens {
		v.Add(token)
	}
	return v
}

// Add returns the id of value, allocating the next id if value is new. The
// second return is true when a new id was allocated.
func (v *Vocab) Add(value string) (int, bool) {
	if v.frozen {
		panic("Cannot add value to frozen vocabulary")
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	id, exists := v.enum[value]
	if exists {
		return id, false
	}
	id = len(v.index)
	v.enum[value] = id
	v.index = append(v.index, value)
	return id, true
}

func (v *Vocab) IndexOf(value string) (int, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	id, exists := v.enum[value]
	return id, exists
}

func (v *Vocab) ValueOf(id int) string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if id < 0 || id >= len(v.index) {
		panic(fmt.Sprintf("Unknown id requested: %v of %v", id, len(v.index)))
	}
	return v.index[id]
}

func (v *Vocab) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.index)
}

func (v *Vocab) Freeze() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.frozen = true
}

func (v *Vocab) Frozen() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.frozen
}
