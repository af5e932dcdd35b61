package midi

import (
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"pianestro/debug"
)

// Output sends notes to a MIDI output port, used for sounding the notes of
// a disabled hand. The port is opened lazily on first use so the app can
// start before the synth is plugged in.
type Output struct {
	portName string
	channel  uint8

	mu     sync.Mutex
	sender func(gomidi.Message) error

	// Port discovery and opening, swappable in tests.
	ports func() []drivers.Out
	open  func(drivers.Out) (func(gomidi.Message) error, error)
}

// NewOutput creates an output targeting the named port. An empty name picks
// the first openable port at send time.
func NewOutput(portName string, channel uint8) *Output {
	return &Output{
		portName: portName,
		channel:  channel,
		ports:    gomidi.GetOutPorts,
		open:     gomidi.SendTo,
	}
}

// PlayNote sends NoteOn now and the matching NoteOff after the duration.
func (o *Output) PlayNote(pitch, velocity uint8, duration time.Duration) {
	sender := o.getSender()
	if sender == nil {
		return
	}
	sender(gomidi.NoteOn(o.channel, pitch, velocity))
	go func() {
		time.Sleep(duration)
		sender(gomidi.NoteOff(o.channel, pitch))
	}()
	debug.Log("out", "play note=%d vel=%d dur=%s", pitch, velocity, duration)
}

// getSender returns the port sender, opening the port on first use. A port
// that fails to open is skipped; the next matching port is tried.
func (o *Output) getSender() func(gomidi.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.sender != nil {
		return o.sender
	}

	for _, port := range o.ports() {
		if o.portName != "" && port.String() != o.portName {
			continue
		}
		sender, err := o.open(port)
		if err != nil {
			debug.Log("out", "open %s: %v", port.String(), err)
			continue
		}
		o.sender = sender
		return sender
	}
	return nil
}

// Close releases the port.
func (o *Output) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sender = nil
}
