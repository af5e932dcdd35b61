package lesson

import "errors"

var (
	// ErrEmptySequence is returned by BuildSequence when there are no input
	// records or the resulting sequence is empty.
	ErrEmptySequence = errors.New("lesson: empty note sequence")

	// ErrNotLoaded is returned by Start when no sequence has been loaded.
	ErrNotLoaded = errors.New("lesson: no sequence loaded")

	// ErrAlreadyLoaded is returned by Load while a session is running or paused.
	ErrAlreadyLoaded = errors.New("lesson: session in progress")

	// ErrSessionActive is returned by Start when playback is already under way.
	ErrSessionActive = errors.New("lesson: session already started")
)
