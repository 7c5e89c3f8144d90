package sim

type EventType int

const (
	EventShot EventType = iota
	EventEnemyKilled
	EventPlayerHit
	EventGameOver
	EventRestarted
	EventMenuToggled
	EventVolumeChanged
	EventSpawnDropped
)

type Event struct {
	Type EventType
	Pos  Vec3
	Kind Archetype
	Data int // points, score, volume level or pool id depending on Type.
}

type EventHandler func(Event)

// EventBus delivers events synchronously on the simulation goroutine.
// Handlers that hand data to another loop must do so without blocking.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
