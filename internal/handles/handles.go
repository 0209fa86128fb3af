// Package handles provides a reference-counted handle registry for Go objects
// that native code references by opaque pointer-sized values.
//
// Native window memory cannot hold Go pointers, so a per-window slot stores a
// uintptr handle issued here instead. The registry entry holds the strong
// reference that keeps the object alive; the reference count tracks the slot
// plus any dispatches currently on the stack, and the entry is removed when
// the count reaches zero.
//
// Handles are never reused, so a stale Release of an already-removed handle
// is a no-op rather than a corruption of a newer entry.
package handles

import (
	"sync"
)

type entry struct {
	v    any
	refs int
}

var (
	mu     sync.Mutex
	table  = make(map[uintptr]*entry)
	nextID uintptr = 1
)

// Register stores a Go object with a reference count of one and returns its
// handle. The handle can be safely stored in native memory (as uintptr or
// void*).
//
// Thread-safe.
func Register(v any) uintptr {
	mu.Lock()
	defer mu.Unlock()
	id := nextID
	nextID++
	table[id] = &entry{v: v, refs: 1}
	return id
}

// Retain increments the reference count of a handle and returns its object.
// Returns nil if the handle is not registered.
//
// Thread-safe.
func Retain(id uintptr) any {
	mu.Lock()
	defer mu.Unlock()
	e, ok := table[id]
	if !ok {
		return nil
	}
	e.refs++
	return e.v
}

// Lookup returns a handle's object without touching its reference count.
// Returns nil if the handle is not registered.
//
// Thread-safe.
func Lookup(id uintptr) any {
	mu.Lock()
	defer mu.Unlock()
	e, ok := table[id]
	if !ok {
		return nil
	}
	return e.v
}

// Release decrements the reference count of a handle. When the count reaches
// zero the entry is removed and the object is returned with removed == true,
// so the caller can run any finalization. Releasing a handle that is not
// registered is a no-op.
//
// Thread-safe. The lock is never held across calls into the object, so
// reentrant Retain/Release pairs on the same goroutine are fine.
func Release(id uintptr) (v any, removed bool) {
	mu.Lock()
	defer mu.Unlock()
	e, ok := table[id]
	if !ok {
		return nil, false
	}
	e.refs--
	if e.refs > 0 {
		return nil, false
	}
	delete(table, id)
	return e.v, true
}

// Count returns the number of currently registered handles.
// Useful for debugging and testing memory leaks.
//
// Thread-safe.
func Count() int {
	mu.Lock()
	defer mu.Unlock()
	return len(table)
}
