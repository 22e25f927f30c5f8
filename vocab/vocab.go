// Package vocab holds the fixed token vocabulary: a bijection between
// token ids [0,228) and symbolic event names. The tables are built once
// at init and never mutated, so they are safe to read from any
// goroutine and identical across processes and runs.
package vocab

import (
	"fmt"

	"github.com/jsphweid/midiprep/constants"
	"github.com/jsphweid/midiprep/model"
)

var idToEvent map[model.Token]string
var eventToID map[string]model.Token

func init() {
	idToEvent = make(map[model.Token]string, constants.VocabSize)
	eventToID = make(map[string]model.Token, constants.VocabSize)

	// NOTE_ON tokens: 0..127
	for pitch := 0; pitch <= constants.MaxPitch; pitch++ {
		name := fmt.Sprintf("NOTE_ON_%v", pitch)
		idToEvent[model.Token(pitch)] = name
		eventToID[name] = model.Token(pitch)
	}

	// TIME_SHIFT tokens: 128..227
	for shift := 1; shift <= constants.MaxShift; shift++ {
		name := fmt.Sprintf("TIME_SHIFT_%v", shift)
		id := model.Token(constants.MaxPitch + shift)
		idToEvent[id] = name
		eventToID[name] = id
	}
}

// NoteOn returns the token for the onset of pitch.
func NoteOn(pitch uint8) model.Token {
	return model.Token(pitch)
}

// TimeShift returns the token for a forward shift of bins grid steps.
// bins must be in [1, MaxShift].
func TimeShift(bins int) model.Token {
	return model.Token(constants.MaxPitch + bins)
}

func EventForID(id model.Token) (string, bool) {
	name, ok := idToEvent[id]
	return name, ok
}

func IDForEvent(name string) (model.Token, bool) {
	id, ok := eventToID[name]
	return id, ok
}

func Size() int {
	return constants.VocabSize
}
