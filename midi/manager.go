package midi

import (
	"context"
	"strings"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

// DeviceEvent is emitted when keyboards connect/disconnect
type DeviceEvent struct {
	Type       DeviceEventType
	Controller Controller
	ID         string
}

type DeviceEventType int

const (
	DeviceConnected DeviceEventType = iota
	DeviceDisconnected
)

// DeviceManager handles hot-plug detection of MIDI keyboards
type DeviceManager struct {
	controllers map[string]Controller
	mu          sync.RWMutex
	events      chan DeviceEvent
	pollRate    time.Duration
	preferred   string
}

// NewDeviceManager creates a new device manager. A non-empty preferredPort
// restricts connections to ports matching that name; empty accepts any
// keyboard.
func NewDeviceManager(preferredPort string) *DeviceManager {
	return &DeviceManager{
		controllers: make(map[string]Controller),
		events:      make(chan DeviceEvent, 16),
		pollRate:    time.Second,
		preferred:   preferredPort,
	}
}

// Events returns a channel of device connect/disconnect events
func (dm *DeviceManager) Events() <-chan DeviceEvent {
	return dm.events
}

// Controllers returns a snapshot of connected controllers
func (dm *DeviceManager) Controllers() map[string]Controller {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	copy := make(map[string]Controller, len(dm.controllers))
	for k, v := range dm.controllers {
		copy[k] = v
	}
	return copy
}

// GetKeyboard returns the first connected keyboard (or nil)
func (dm *DeviceManager) GetKeyboard() Controller {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	for _, c := range dm.controllers {
		if c.Type() == ControllerKeyboard {
			return c
		}
	}
	return nil
}

// Run starts the polling loop (blocking - run in goroutine)
func (dm *DeviceManager) Run(ctx context.Context) {
	ticker := time.NewTicker(dm.pollRate)
	defer ticker.Stop()

	// Initial scan
	dm.scan()

	for {
		select {
		case <-ctx.Done():
			dm.closeAll()
			close(dm.events)
			return
		case <-ticker.C:
			dm.scan()
		}
	}
}

func (dm *DeviceManager) scan() {
	// Get current MIDI ports with timeout (CoreMIDI can hang)
	type portsResult struct {
		inPorts []drivers.In
	}

	ch := make(chan portsResult, 1)
	go func() {
		ch <- portsResult{inPorts: gomidi.GetInPorts()}
	}()

	var inPorts []drivers.In

	select {
	case result := <-ch:
		inPorts = result.inPorts
	case <-time.After(3 * time.Second):
		// CoreMIDI is hung - skip this scan
		return
	}

	// Build map of what we see now
	seenIDs := make(map[string]bool)

	for i, inPort := range inPorts {
		if !dm.wantPort(inPort.String()) {
			continue
		}
		id := inPort.String()
		seenIDs[id] = true

		dm.mu.RLock()
		_, exists := dm.controllers[id]
		dm.mu.RUnlock()

		if !exists {
			kb, err := NewKeyboardController(id, inPorts[i])
			if err != nil {
				continue
			}

			dm.mu.Lock()
			dm.controllers[id] = kb
			dm.mu.Unlock()

			dm.events <- DeviceEvent{
				Type:       DeviceConnected,
				Controller: kb,
				ID:         id,
			}
		}
	}

	// Check for disconnects
	dm.mu.Lock()
	var toRemove []string
	for id := range dm.controllers {
		if !seenIDs[id] {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range toRemove {
		c := dm.controllers[id]
		c.Close()
		delete(dm.controllers, id)
		dm.events <- DeviceEvent{
			Type: DeviceDisconnected,
			ID:   id,
		}
	}
	dm.mu.Unlock()
}

func (dm *DeviceManager) closeAll() {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	for _, c := range dm.controllers {
		c.Close()
	}
	dm.controllers = make(map[string]Controller)
}

// wantPort decides whether to connect to a port. When a preferred port is
// configured only matching names qualify; otherwise any non-loopback port
// counts as a playable keyboard.
func (dm *DeviceManager) wantPort(name string) bool {
	if dm.preferred != "" {
		return strings.Contains(strings.ToLower(name), strings.ToLower(dm.preferred))
	}
	return isKeyboard(name)
}

// isKeyboard filters out software loopback ports; anything else with an
// input is treated as a playable keyboard.
func isKeyboard(name string) bool {
	name = strings.ToLower(name)
	return !strings.Contains(name, "through") && !strings.Contains(name, "thru")
}
