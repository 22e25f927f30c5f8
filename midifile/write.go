package midifile

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/midiprep/constants"
	"github.com/jsphweid/midiprep/model"
)

type noteEdge struct {
	tick  uint32
	isOff bool
	key   uint8
}

func toTicks(mt smf.MetricTicks, seconds float64) uint32 {
	return mt.Ticks(constants.WriteBPM, time.Duration(seconds*float64(time.Second)))
}

// Write renders instrument tracks back to a standard MIDI file on a
// fixed 120 BPM, 960 ticks-per-quarter grid, creating directories as
// needed. Track i plays on channel i, so callers must not pass more
// than 16 tracks; the role reducer never produces more than 3.
func Write(path string, tracks []model.InstrumentTrack) error {
	mt := smf.MetricTicks(constants.TicksPerQuarter)
	var out smf.SMF
	out.TimeFormat = mt

	for i, tr := range tracks {
		channel := uint8(i)
		var track smf.Track
		if i == 0 {
			track = append(track, smf.Event{Delta: 0, Message: smf.MetaTempo(constants.WriteBPM)})
		}
		if tr.Name != "" {
			track = append(track, smf.Event{Delta: 0, Message: smf.MetaTrackSequenceName(tr.Name)})
		}
		track = append(track, smf.Event{
			Delta:   0,
			Message: smf.Message(midi.ProgramChange(channel, tr.Program)),
		})

		var edges []noteEdge
		for _, n := range tr.Notes {
			edges = append(edges, noteEdge{tick: toTicks(mt, n.Start), isOff: false, key: n.Pitch})
			edges = append(edges, noteEdge{tick: toTicks(mt, n.End), isOff: true, key: n.Pitch})
		}

		// note-offs before note-ons at equal ticks so back-to-back
		// repeats of a pitch don't swallow each other
		sort.SliceStable(edges, func(i, j int) bool {
			if edges[i].tick != edges[j].tick {
				return edges[i].tick < edges[j].tick
			}
			return edges[i].isOff && !edges[j].isOff
		})

		var prevTick uint32
		for _, edge := range edges {
			var msg midi.Message
			if edge.isOff {
				msg = midi.NoteOff(channel, edge.key)
			} else {
				msg = midi.NoteOn(channel, edge.key, 100)
			}
			track = append(track, smf.Event{
				Delta:   edge.tick - prevTick,
				Message: smf.Message(msg),
			})
			prevTick = edge.tick
		}
		track.Close(0)

		out.Tracks = append(out.Tracks, track)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return errors.Wrapf(err, "could not create output dir for %v", path)
	}
	if err := out.WriteFile(path); err != nil {
		return errors.Wrapf(err, "could not write midi file %v", path)
	}
	return nil
}
