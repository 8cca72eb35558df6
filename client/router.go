package client

import (
	"sync"
	"sync/atomic"

	"github.com/colonyprotocol/gocolony/messages"
	"github.com/colonyprotocol/gocolony/protocol"
)

// HandlerID uniquely identifies a registered handler.
type HandlerID uint64

// handlerIDCounter generates unique handler IDs.
var handlerIDCounter uint64

// Handler is called when a message with the registered code is received.
type Handler func(msg messages.Message)

// handlerEntry pairs a handler with its ID for management.
type handlerEntry struct {
	id      HandlerID
	handler Handler
}

// Router dispatches decoded messages to registered handlers.
type Router struct {
	handlers map[protocol.Code][]handlerEntry
	mu       sync.RWMutex
}

// NewRouter creates a new message router.
func NewRouter() *Router {
	return &Router{
		handlers: make(map[protocol.Code][]handlerEntry),
	}
}

// Register adds a handler for the given message code.
// Multiple handlers can be registered for the same code.
// Returns a HandlerID that can be used to unregister this specific handler.
func (r *Router) Register(code protocol.Code, h Handler) HandlerID {
	id := HandlerID(atomic.AddUint64(&handlerIDCounter, 1))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[code] = append(r.handlers[code], handlerEntry{id: id, handler: h})
	return id
}

// Unregister removes a specific handler by its ID.
// Returns true if the handler was found and removed.
func (r *Router) Unregister(code protocol.Code, id HandlerID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.handlers[code]
	for i, entry := range entries {
		if entry.id == id {
			// Dispatch iterates its snapshot of this slice outside the
			// lock, so remove by building a fresh slice rather than
			// shifting elements of the shared backing array.
			updated := make([]handlerEntry, 0, len(entries)-1)
			updated = append(updated, entries[:i]...)
			updated = append(updated, entries[i+1:]...)
			r.handlers[code] = updated
			return true
		}
	}
	return false
}

// UnregisterAll removes all handlers for the given message code.
func (r *Router) UnregisterAll(code protocol.Code) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, code)
}

// Dispatch calls all registered handlers for the message's code.
// Handlers are called synchronously in registration order.
func (r *Router) Dispatch(msg messages.Message) {
	r.mu.RLock()
	entries := r.handlers[msg.Code()]
	r.mu.RUnlock()

	for _, entry := range entries {
		entry.handler(msg)
	}
}

// HasHandler returns true if at least one handler is registered for the code.
func (r *Router) HasHandler(code protocol.Code) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[code]) > 0
}
