package midi

import (
	"errors"
	"testing"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

type fakeOutPort struct{ name string }

func (p fakeOutPort) Number() int             { return 0 }
func (p fakeOutPort) String() string          { return p.name }
func (p fakeOutPort) Underlying() interface{} { return nil }
func (p fakeOutPort) Open() error             { return nil }
func (p fakeOutPort) Close() error            { return nil }
func (p fakeOutPort) IsOpen() bool            { return true }
func (p fakeOutPort) Send(data []byte) error  { return nil }

func TestOutputSkipsUnopenablePort(t *testing.T) {
	var opened []string
	o := NewOutput("", 0)
	o.ports = func() []drivers.Out {
		return []drivers.Out{fakeOutPort{"Broken Synth"}, fakeOutPort{"Good Synth"}}
	}
	o.open = func(p drivers.Out) (func(gomidi.Message) error, error) {
		opened = append(opened, p.String())
		if p.String() == "Broken Synth" {
			return nil, errors.New("port in use")
		}
		return func(gomidi.Message) error { return nil }, nil
	}

	if o.getSender() == nil {
		t.Fatal("no sender despite an openable port")
	}
	if len(opened) != 2 || opened[0] != "Broken Synth" || opened[1] != "Good Synth" {
		t.Errorf("open attempts = %v, want broken then good", opened)
	}

	// Second call reuses the cached sender, no reopen.
	if o.getSender() == nil {
		t.Fatal("cached sender lost")
	}
	if len(opened) != 2 {
		t.Errorf("open attempts after cache = %d, want 2", len(opened))
	}
}

func TestOutputNamedPortOnly(t *testing.T) {
	var opened []string
	o := NewOutput("Good Synth", 0)
	o.ports = func() []drivers.Out {
		return []drivers.Out{fakeOutPort{"Other Synth"}, fakeOutPort{"Good Synth"}}
	}
	o.open = func(p drivers.Out) (func(gomidi.Message) error, error) {
		opened = append(opened, p.String())
		return func(gomidi.Message) error { return nil }, nil
	}

	if o.getSender() == nil {
		t.Fatal("no sender for the named port")
	}
	if len(opened) != 1 || opened[0] != "Good Synth" {
		t.Errorf("open attempts = %v, want only the named port", opened)
	}
}
