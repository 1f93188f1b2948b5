package client

type EventKind int

const (
	// EventUnauthorized fires after a 401 has cleared the session.
	EventUnauthorized EventKind = iota + 1
)

func (k EventKind) String() string {
	switch k {
	case EventUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Event is delivered synchronously to subscribers, on the goroutine that
// issued the request.
type Event struct {
	Kind EventKind
	// Path of the request that triggered the event.
	Path string
}

// Subscribe registers fn and returns a function that removes it.
func (c *Client) Subscribe(fn func(Event)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

func (c *Client) emit(e Event) {
	c.mu.Lock()
	fns := make([]func(Event), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}
