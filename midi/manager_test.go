package midi

import "testing"

func TestWantPort(t *testing.T) {
	tests := []struct {
		preferred string
		port      string
		want      bool
	}{
		{"", "CASIO USB-MIDI", true},
		{"", "Midi Through Port-0", false},
		{"", "MIDI Thru", false},
		{"CASIO", "CASIO USB-MIDI", true},
		{"casio usb", "CASIO USB-MIDI", true}, // case-insensitive
		{"Roland", "CASIO USB-MIDI", false},
		{"Through", "Midi Through Port-0", true}, // explicit config overrides the loopback filter
	}
	for _, tt := range tests {
		dm := NewDeviceManager(tt.preferred)
		if got := dm.wantPort(tt.port); got != tt.want {
			t.Errorf("wantPort(%q) with preferred %q = %v, want %v",
				tt.port, tt.preferred, got, tt.want)
		}
	}
}
