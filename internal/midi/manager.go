package midi

import (
	"fmt"
	"sync"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register rtmidi driver
)

// NoteChannelOffset shifts note numbers out of the control-change range so
// both message types share one flat channel space: CC n maps to channel n,
// note k to channel NoteChannelOffset+k.
const NoteChannelOffset = 128

// InputEventCallback receives decoded control-surface events. channel is the
// flat channel number, value the 0-127 MIDI value.
type InputEventCallback func(portName string, channel uint32, value byte)

// Manager handles MIDI device discovery and input listeners
type Manager struct {
	mu sync.RWMutex
}

// NewManager creates a new MIDI manager
func NewManager() *Manager {
	return &Manager{}
}

// Close cleans up the MIDI driver
func (m *Manager) Close() {
	midi.CloseDriver()
}

// ListInPorts returns the names of available MIDI input ports
func (m *Manager) ListInPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ins := midi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// GetInPort returns an input port by name
func (m *Manager) GetInPort(name string) (drivers.In, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ins := midi.GetInPorts()
	for _, in := range ins {
		if in.String() == name {
			return in, nil
		}
	}
	return nil, nil
}

// StartListening begins decoding input from the specified port. Control
// changes and notes both arrive through the callback as flat channel
// numbers. Returns a stop function for the listener.
func (m *Manager) StartListening(inPortName string, callback InputEventCallback) (func(), error) {
	if inPortName == "" {
		return nil, nil
	}

	inPort, err := m.GetInPort(inPortName)
	if inPort == nil || err != nil {
		return nil, fmt.Errorf("input port not found: %s", inPortName)
	}

	stop, err := midi.ListenTo(inPort, func(msg midi.Message, timestampms int32) {
		var channel, key, velocity uint8

		switch {
		case msg.GetControlChange(&channel, &key, &velocity):
			callback(inPortName, uint32(key), velocity)
		case msg.GetNoteOn(&channel, &key, &velocity):
			callback(inPortName, NoteChannelOffset+uint32(key), velocity)
		case msg.GetNoteOff(&channel, &key, &velocity):
			callback(inPortName, NoteChannelOffset+uint32(key), 0)
		}
	})

	if err != nil {
		return nil, fmt.Errorf("failed to start listening: %w", err)
	}

	return stop, nil
}
