package events

import "sync"

// InMemoryEventStore keeps events per stream and notifies subscribers
// synchronously. It backs the recompute-on-change wiring for a single
// process; nothing here survives a restart.
type InMemoryEventStore struct {
	mutex       sync.RWMutex
	streams     map[string][]Event
	subscribers map[string][]EventHandler
}

// NewInMemoryEventStore creates an empty store
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		streams:     make(map[string][]Event),
		subscribers: make(map[string][]EventHandler),
	}
}

var _ EventStore = (*InMemoryEventStore)(nil)

// AppendEvent versions the event within its stream, stores it and notifies
// subscribers before returning
func (s *InMemoryEventStore) AppendEvent(streamID string, event Event) error {
	s.mutex.Lock()
	versioned := BaseEvent{
		EventType:    event.Type(),
		Stream:       streamID,
		EventData:    event.Data(),
		EventTime:    event.Timestamp(),
		EventVersion: len(s.streams[streamID]) + 1,
	}
	s.streams[streamID] = append(s.streams[streamID], versioned)
	handlers := append([]EventHandler(nil), s.subscribers[versioned.EventType]...)
	s.mutex.Unlock()

	// outside the lock: handlers may publish follow-up events
	for _, handler := range handlers {
		if handler.CanHandle(versioned.EventType) {
			_ = handler.Handle(versioned)
		}
	}
	return nil
}

// ReadEvents returns a stream's events starting at fromVersion (1-based)
func (s *InMemoryEventStore) ReadEvents(streamID string, fromVersion int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stream := s.streams[streamID]
	if fromVersion < 1 {
		fromVersion = 1
	}
	if fromVersion > len(stream) {
		return []Event{}, nil
	}
	return append([]Event(nil), stream[fromVersion-1:]...), nil
}

// Subscribe registers handler for the given event types
func (s *InMemoryEventStore) Subscribe(eventTypes []string, handler EventHandler) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, eventType := range eventTypes {
		s.subscribers[eventType] = append(s.subscribers[eventType], handler)
	}
	return nil
}

// Unsubscribe removes handler from every event type
func (s *InMemoryEventStore) Unsubscribe(handler EventHandler) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for eventType, handlers := range s.subscribers {
		kept := handlers[:0]
		for _, h := range handlers {
			if h != handler {
				kept = append(kept, h)
			}
		}
		s.subscribers[eventType] = kept
	}
	return nil
}
