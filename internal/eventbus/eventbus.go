package eventbus

import (
	"runtime/debug"
	"sync"

	"widgetdash/internal/domain"
	"widgetdash/internal/logging"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event structs
type (
	WidgetAddedEvent             = domain.WidgetAddedEvent
	WidgetRemovedEvent           = domain.WidgetRemovedEvent
	WidgetVisibilityChangedEvent = domain.WidgetVisibilityChangedEvent
	WidgetsBulkUpdatedEvent      = domain.WidgetsBulkUpdatedEvent
	SearchQueryChangedEvent      = domain.SearchQueryChangedEvent
	DashboardResetEvent          = domain.DashboardResetEvent
	DashboardReloadedEvent       = domain.DashboardReloadedEvent
	LoadingChangedEvent          = domain.LoadingChangedEvent
	ErrorChangedEvent            = domain.ErrorChangedEvent
)

// Event type constants
const (
	EventWidgetAdded             = domain.EventWidgetAdded
	EventWidgetRemoved           = domain.EventWidgetRemoved
	EventWidgetVisibilityChanged = domain.EventWidgetVisibilityChanged
	EventWidgetsBulkUpdated      = domain.EventWidgetsBulkUpdated
	EventSearchQueryChanged      = domain.EventSearchQueryChanged
	EventDashboardReset          = domain.EventDashboardReset
	EventDashboardReloaded       = domain.EventDashboardReloaded
	EventLoadingChanged          = domain.EventLoadingChanged
	EventErrorChanged            = domain.EventErrorChanged
)

var log = logging.NewLogger("eventbus")

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	return NewWithBuffer(256)
}

// NewWithBuffer creates a bus whose queue holds up to size pending events
func NewWithBuffer(size int) EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, size),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers. It never blocks the caller.
func (b *bus) Publish(event DomainEvent) {
	select {
	case <-b.quit:
		return
	default:
	}

	log.WithField("event", event.Type()).Debug("publishing event")

	select {
	case b.eventChan <- event:
	default:
		log.WithField("event", event.Type()).Warn("event bus channel full, dropping event")
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher. Pending events are discarded.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch delivers queued events to subscribers in publish order
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				b.deliver(s.handler, event)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

func (b *bus) deliver(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("event", event.Type()).Errorf("event handler panic: %v\nStack: %s", r, debug.Stack())
		}
	}()
	h(event)
}
