// Package tokenizer turns parsed MIDI note events into the flat token
// representation the sequence models train on: NOTE_ON tokens for
// onsets and TIME_SHIFT tokens for the quantized gaps between them.
// The encoding is onset-only; durations and velocities are discarded.
package tokenizer

import (
	"math"
	"sort"

	"github.com/jsphweid/midiprep/constants"
	"github.com/jsphweid/midiprep/midifile"
	"github.com/jsphweid/midiprep/model"
	"github.com/jsphweid/midiprep/util"
	"github.com/jsphweid/midiprep/vocab"
)

type noteOnset struct {
	bin   int
	pitch uint8
}

// quantize rounds a time in seconds to the nearest grid index,
// half to even.
func quantize(seconds float64) int {
	return int(math.RoundToEven(seconds / constants.TimeStep))
}

// Tokenize encodes every note of every track (drums included) as a
// single token stream. Onsets are sorted by (time bin, pitch); the
// first occupied bin gets no leading TIME_SHIFT; a gap between bins is
// split greedily into TIME_SHIFT tokens of at most MaxShift each,
// summing exactly to the gap. A structure with no notes yields an
// empty sequence.
func Tokenize(tracks []model.InstrumentTrack) []model.Token {
	var onsets []noteOnset
	for _, track := range tracks {
		for _, note := range track.Notes {
			onsets = append(onsets, noteOnset{bin: quantize(note.Start), pitch: note.Pitch})
		}
	}
	if len(onsets) == 0 {
		return nil
	}

	sort.Slice(onsets, func(i, j int) bool {
		if onsets[i].bin != onsets[j].bin {
			return onsets[i].bin < onsets[j].bin
		}
		return onsets[i].pitch < onsets[j].pitch
	})

	var tokens []model.Token
	prevBin := onsets[0].bin
	i := 0
	for i < len(onsets) && onsets[i].bin == prevBin {
		tokens = append(tokens, vocab.NoteOn(onsets[i].pitch))
		i++
	}

	for i < len(onsets) {
		currBin := onsets[i].bin

		delta := currBin - prevBin
		for delta > 0 {
			shift := util.Min(delta, constants.MaxShift)
			tokens = append(tokens, vocab.TimeShift(shift))
			delta -= shift
		}

		for i < len(onsets) && onsets[i].bin == currBin {
			tokens = append(tokens, vocab.NoteOn(onsets[i].pitch))
			i++
		}

		prevBin = currBin
	}

	return tokens
}

// TokenizeFile parses path and tokenizes it. Parse failures come back
// as midifile.ErrInvalidInput with the cause attached.
func TokenizeFile(path string) ([]model.Token, error) {
	tracks, err := midifile.Read(path)
	if err != nil {
		return nil, err
	}
	return Tokenize(tracks), nil
}
