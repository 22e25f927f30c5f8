package model

// MidiRef is one discovered MIDI file with its genre label (the
// directory immediately under the dataset root).
type MidiRef struct {
	Path  string
	Genre string
}

// GenreMap assigns genre ids by ascending sorted genre name so ids
// stay meaningful across runs.
type GenreMap = map[string]int

// Record is one dataset entry.
type Record struct {
	Tokens  []Token
	GenreID int
}

// Failure is a skipped file and why it was skipped.
type Failure struct {
	Path   string
	Reason string
}
