package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pianestro/config"
	"pianestro/debug"
	"pianestro/lesson"
	"pianestro/midi"
	"pianestro/theme"
	"pianestro/tui"
)

func main() {
	debugFlag := flag.Bool("debug", false, "write a debug log to ~/.config/pianestro")
	flag.Parse()

	if *debugFlag {
		if err := debug.Enable(); err != nil {
			fmt.Printf("Warning: debug log unavailable: %v\n", err)
		}
		defer debug.Disable()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Load theme
	palette := theme.Default()
	if cfg.Palette != "" {
		palette = theme.MustLoadGPL(cfg.Palette)
	}
	th := theme.New(palette)

	// Pick the lesson file: argument wins, otherwise the last one used
	path := cfg.Lesson.LastFile
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	if path == "" {
		fmt.Println("usage: pianestro [-debug] <lesson.mid>")
		os.Exit(1)
	}

	records, err := midi.LoadFile(path)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", path, err)
		os.Exit(1)
	}

	seq, durationMs, err := lesson.BuildSequence(records, cfg.Lesson.SplitPoint)
	if err != nil {
		fmt.Printf("Error building lesson: %v\n", err)
		os.Exit(1)
	}

	// Create the playback engine on the real clock
	engine := lesson.NewEngine(time.Now)
	engine.SetSplitPoint(cfg.Lesson.SplitPoint)
	engine.SetHandEnabled(lesson.Left, cfg.Hands.Left)
	engine.SetHandEnabled(lesson.Right, cfg.Hands.Right)
	if err := engine.Load(seq, durationMs); err != nil {
		fmt.Printf("Error loading lesson: %v\n", err)
		os.Exit(1)
	}

	// MIDI out for the notes the learner isn't playing
	out := midi.NewOutput(cfg.MIDI.OutputPort, cfg.MIDI.Channel)
	defer out.Close()

	// Create MIDI device manager (handles hot-plug)
	deviceMgr := midi.NewDeviceManager(cfg.MIDI.InputPort)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go deviceMgr.Run(ctx)

	cfg.Lesson.LastFile = path
	_ = cfg.Save()

	fmt.Println("pianestro")
	fmt.Println("Connect a MIDI keyboard any time - it'll be detected automatically")
	fmt.Println("")

	m := tui.NewModel(engine, deviceMgr, out, th, filepath.Base(path), cfg.Lesson.RewindMs)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
