package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "monitor":
		monitorInput()
	case "poll":
		pollDevices()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("MIDI Test Scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list     - List all MIDI ports")
	fmt.Println("  monitor  - Print incoming notes from the first keyboard")
	fmt.Println("  poll     - Poll for device changes")
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	type result struct {
		ins  []drivers.In
		outs []drivers.Out
	}
	ch := make(chan result, 1)
	go func() {
		ins := midi.GetInPorts()
		outs := midi.GetOutPorts()
		ch <- result{ins: ins, outs: outs}
	}()

	select {
	case r := <-ch:
		for i, p := range r.ins {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
		fmt.Println("\n=== MIDI Output Ports ===")
		for i, p := range r.outs {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
	case <-time.After(3 * time.Second):
		fmt.Println("\nTIMEOUT! CoreMIDI is hung.")
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
	}
}

func monitorInput() {
	ins := midi.GetInPorts()
	var inPort drivers.In
	for _, p := range ins {
		name := strings.ToLower(p.String())
		if !strings.Contains(name, "through") && !strings.Contains(name, "thru") {
			inPort = p
			break
		}
	}

	if inPort == nil {
		fmt.Println("No keyboard found")
		return
	}

	fmt.Printf("Listening on %s (Ctrl+C to exit)...\n", inPort.String())

	stop, err := midi.ListenTo(inPort, func(msg midi.Message, timestampms int32) {
		var ch, note, vel uint8
		switch {
		case msg.GetNoteOn(&ch, &note, &vel) && vel > 0:
			fmt.Printf("  down  note=%3d vel=%3d ch=%d\n", note, vel, ch)
		case msg.GetNoteOff(&ch, &note, &vel):
			fmt.Printf("  up    note=%3d ch=%d\n", note, ch)
		}
	})
	if err != nil {
		fmt.Printf("Error opening port: %v\n", err)
		return
	}
	defer stop()

	select {}
}

func pollDevices() {
	fmt.Println("Polling for device changes every 2 seconds...")
	fmt.Println("Connect/disconnect a keyboard to test. Ctrl+C to exit.")

	lastIn := ""
	lastOut := ""

	for {
		ins := midi.GetInPorts()
		outs := midi.GetOutPorts()

		// Build current state
		var inNames, outNames []string
		for _, p := range ins {
			inNames = append(inNames, p.String())
		}
		for _, p := range outs {
			outNames = append(outNames, p.String())
		}

		currentIn := strings.Join(inNames, ",")
		currentOut := strings.Join(outNames, ",")

		if currentIn != lastIn || currentOut != lastOut {
			fmt.Printf("\n[%s] Device change detected!\n", time.Now().Format("15:04:05"))
			fmt.Printf("  Inputs: %v\n", inNames)
			fmt.Printf("  Outputs: %v\n", outNames)

			lastIn = currentIn
			lastOut = currentOut
		}

		time.Sleep(2 * time.Second)
	}
}
