package logbuffer

import (
	"sync"

	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/domain/config"
	"github.com/trebuchet-org/courier/internal/usecase"
)

// Buffer keeps the most recent log entries up to a fixed capacity. When
// full, pushing an entry evicts the oldest one.
type Buffer struct {
	mu      sync.RWMutex
	entries []domain.LogEntry
	start   int
	size    int
}

// New creates a Buffer holding at most capacity entries. A capacity below
// one uses domain.DefaultLogCap.
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = domain.DefaultLogCap
	}
	return &Buffer{entries: make([]domain.LogEntry, capacity)}
}

// NewFromConfig creates the session buffer
func NewFromConfig(cfg *config.RuntimeConfig) *Buffer {
	return New(cfg.LogCap)
}

// Push appends an entry
func (b *Buffer) Push(e domain.LogEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capacity := len(b.entries)
	if b.size < capacity {
		b.entries[(b.start+b.size)%capacity] = e
		b.size++
		return
	}
	b.entries[b.start] = e
	b.start = (b.start + 1) % capacity
}

// Entries returns all entries, oldest first
func (b *Buffer) Entries() []domain.LogEntry {
	return b.Tail(-1)
}

// Tail returns the newest n entries, oldest first. A negative n returns all.
func (b *Buffer) Tail(n int) []domain.LogEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if n < 0 || n > b.size {
		n = b.size
	}
	out := make([]domain.LogEntry, n)
	capacity := len(b.entries)
	first := b.start + b.size - n
	for i := range out {
		out[i] = b.entries[(first+i)%capacity]
	}
	return out
}

// Len returns the number of entries held
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.size
}

// Cap returns the capacity
func (b *Buffer) Cap() int {
	return len(b.entries)
}

// Clear drops every entry
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.entries)
	b.start = 0
	b.size = 0
}

var _ usecase.LogStore = (*Buffer)(nil)
