package engine

import "fmt"

// InputValueHandler receives live values from an external control surface
type InputValueHandler func(universe, channel uint32, value byte)

// Universe is one addressable input universe, optionally described by a
// profile that names its channels.
type Universe struct {
	ID      uint32
	Name    string
	Profile *InputProfile
}

// InputProfile names the channels of a control surface
type InputProfile struct {
	Name     string
	Channels map[uint32]string
}

type subscription struct {
	token   int
	handler InputValueHandler
}

// InputOutputMap routes external input into the document. Everything runs on
// the UI goroutine; handlers are invoked synchronously from InjectInputValue.
type InputOutputMap struct {
	universes []*Universe
	subs      []subscription
	nextToken int
}

// NewInputOutputMap creates an empty mapping
func NewInputOutputMap() *InputOutputMap {
	return &InputOutputMap{}
}

// AddUniverse appends a universe and returns it. Universe ids are the
// insertion index.
func (m *InputOutputMap) AddUniverse(name string, profile *InputProfile) *Universe {
	u := &Universe{ID: uint32(len(m.universes)), Name: name, Profile: profile}
	m.universes = append(m.universes, u)
	return u
}

// Universes returns all universes in id order
func (m *InputOutputMap) Universes() []*Universe {
	return m.universes
}

// Universe returns the universe with the given id, or nil
func (m *InputOutputMap) Universe(id uint32) *Universe {
	if int(id) >= len(m.universes) {
		return nil
	}
	return m.universes[id]
}

// SourceNames resolves a binding to human-readable universe and channel
// names. Returns ok=false when the binding is absent or points at a universe
// this map does not have. Folded page bits are stripped before the channel
// name lookup.
func (m *InputOutputMap) SourceNames(src InputSource) (uniName, chName string, ok bool) {
	if !src.Valid {
		return "", "", false
	}
	u := m.Universe(src.Universe)
	if u == nil {
		return "", "", false
	}
	_, raw := UnfoldPage(src.Channel)
	if u.Profile != nil {
		if name, found := u.Profile.Channels[raw]; found {
			return u.Name, fmt.Sprintf("%d: %s", raw+1, name), true
		}
	}
	return u.Name, fmt.Sprintf("%d: ?", raw+1), true
}

// Subscribe registers a handler for live input values and returns the
// matching unsubscribe. Calling the unsubscribe more than once is harmless.
func (m *InputOutputMap) Subscribe(handler InputValueHandler) (unsubscribe func()) {
	token := m.nextToken
	m.nextToken++
	m.subs = append(m.subs, subscription{token: token, handler: handler})
	return func() {
		for i, s := range m.subs {
			if s.token == token {
				m.subs = append(m.subs[:i], m.subs[i+1:]...)
				return
			}
		}
	}
}

// SubscriberCount reports how many handlers are currently registered
func (m *InputOutputMap) SubscriberCount() int {
	return len(m.subs)
}

// InjectInputValue dispatches one live input event to every subscriber, in
// subscription order.
func (m *InputOutputMap) InjectInputValue(universe, channel uint32, value byte) {
	// Copy first: a handler may unsubscribe itself mid-dispatch.
	subs := make([]subscription, len(m.subs))
	copy(subs, m.subs)
	for _, s := range subs {
		s.handler(universe, channel, value)
	}
}
