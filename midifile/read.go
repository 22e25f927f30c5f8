package midifile

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/midiprep/model"
)

// ErrInvalidInput covers missing, empty and corrupt source files.
var ErrInvalidInput = errors.New("invalid input")

func readSMF(path string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.Wrap(ErrInvalidInput, r)
		}
	}()

	info, err := os.Stat(path)
	if err != nil {
		return &blank, errors.Wrapf(ErrInvalidInput, "file %v does not exist or is not accessible", path)
	}
	if info.Size() == 0 {
		return &blank, errors.Wrapf(ErrInvalidInput, "file %v is empty and cannot be processed", path)
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return &blank, errors.Wrapf(ErrInvalidInput, "error reading midi file: %v", err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrapf(ErrInvalidInput, "error parsing midi file: %v", err)
	}

	return res, nil
}

type channelProgram struct {
	channel uint8
	program uint8
}

// Read parses one MIDI file into instrument tracks. Each (channel,
// program) combination encountered within an SMF track becomes one
// InstrumentTrack, in first-appearance order; channel 9 marks drums.
// Notes are appended as they close, which keeps them in source order.
// A note-on that never closes is dropped.
func Read(path string) ([]model.InstrumentTrack, error) {
	s, err := readSMF(path)
	if err != nil {
		return nil, err
	}

	var res []model.InstrumentTrack
	for _, events := range s.Tracks {
		var absTicks int64
		var trackName string
		var programs [16]uint8
		var order []channelProgram
		byProgram := make(map[channelProgram]*model.InstrumentTrack)
		open := make(map[[2]uint8]*model.InstrumentTrack)
		openStart := make(map[[2]uint8]float64)

		for _, event := range events {
			absTicks += int64(event.Delta)
			seconds := float64(s.TimeAt(absTicks)) / 1_000_000

			var channel uint8
			var key uint8
			var velocity uint8
			var program uint8
			var text string
			switch {
			case event.Message.GetProgramChange(&channel, &program):
				programs[channel] = program
			case event.Message.GetMetaTrackName(&text):
				trackName = text
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				cp := channelProgram{channel: channel, program: programs[channel]}
				inst, ok := byProgram[cp]
				if !ok {
					inst = &model.InstrumentTrack{
						Program: cp.program,
						IsDrum:  channel == 9,
						Name:    trackName,
					}
					byProgram[cp] = inst
					order = append(order, cp)
				}
				open[[2]uint8{channel, key}] = inst
				openStart[[2]uint8{channel, key}] = seconds
			case event.Message.GetNoteEnd(&channel, &key):
				id := [2]uint8{channel, key}
				inst, ok := open[id]
				if !ok {
					continue
				}
				inst.Notes = append(inst.Notes, model.NoteEvent{
					Pitch: key,
					Start: openStart[id],
					End:   seconds,
				})
				delete(open, id)
				delete(openStart, id)
			}
		}

		for _, cp := range order {
			res = append(res, *byProgram[cp])
		}
	}

	return res, nil
}
