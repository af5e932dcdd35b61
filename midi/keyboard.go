package midi

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// KeyboardController handles a standard MIDI keyboard
type KeyboardController struct {
	id       string
	inPort   drivers.In
	stopFunc func()

	noteChan chan NoteEvent
}

// NewKeyboardController creates a keyboard controller (input only).
// Both presses and releases are forwarded; the lesson engine needs the
// releases to track what the learner is still holding.
func NewKeyboardController(id string, inPort drivers.In) (*KeyboardController, error) {
	kb := &KeyboardController{
		id:       id,
		inPort:   inPort,
		noteChan: make(chan NoteEvent, 32),
	}

	// Open input
	if inPort != nil {
		stop, err := gomidi.ListenTo(inPort, func(msg gomidi.Message, timestampms int32) {
			var channel, note, velocity uint8
			switch {
			case msg.GetNoteOn(&channel, &note, &velocity) && velocity > 0:
				select {
				case kb.noteChan <- NoteEvent{Note: note, Velocity: velocity, Channel: channel, On: true}:
				default:
				}
			case msg.GetNoteOff(&channel, &note, &velocity):
				select {
				case kb.noteChan <- NoteEvent{Note: note, Channel: channel, On: false}:
				default:
				}
			}
		})
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		kb.stopFunc = stop
	}

	return kb, nil
}

func (kb *KeyboardController) ID() string {
	return kb.id
}

func (kb *KeyboardController) Type() ControllerType {
	return ControllerKeyboard
}

func (kb *KeyboardController) NoteEvents() <-chan NoteEvent {
	return kb.noteChan
}

func (kb *KeyboardController) Close() error {
	if kb.stopFunc != nil {
		kb.stopFunc()
	}
	close(kb.noteChan)
	return nil
}
