package model

// NoteEvent is one note onset/offset pair in seconds. Immutable once
// read from the source file.
type NoteEvent struct {
	Pitch uint8
	Start float64
	End   float64
}

// InstrumentTrack is one instrument's worth of notes from a parsed
// MIDI file. Notes stay in source order; the role classifier's
// concurrency statistic depends on that.
type InstrumentTrack struct {
	Program uint8
	IsDrum  bool
	Name    string
	Notes   []NoteEvent
}

// Token is one entry of the fixed event vocabulary: NOTE_ON ids are
// 0..127 (id = pitch), TIME_SHIFT ids are 128..227 (id = 127 + shift).
type Token int
