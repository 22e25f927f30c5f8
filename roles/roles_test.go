package roles

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/midiprep/model"
)

// monophonic notes: count notes of the same pitch, length apart
func monoNotes(pitch uint8, count int, length float64) []model.NoteEvent {
	var notes []model.NoteEvent
	for i := 0; i < count; i++ {
		start := float64(i) * (length + 0.1)
		notes = append(notes, model.NoteEvent{Pitch: pitch, Start: start, End: start + length})
	}
	return notes
}

// overlapping notes: every note after the first starts before the
// previous one ends
func polyNotes(pitch uint8, count int, length float64) []model.NoteEvent {
	var notes []model.NoteEvent
	for i := 0; i < count; i++ {
		start := float64(i) * (length / 2)
		notes = append(notes, model.NoteEvent{Pitch: pitch, Start: start, End: start + length})
	}
	return notes
}

func TestClassifyNoEligibleTracks(t *testing.T) {
	tracks := []model.InstrumentTrack{
		{IsDrum: true, Notes: monoNotes(36, 4, 0.2)},
		{Program: 1}, // no notes
	}

	_, err := Classify(tracks)

	assert := assert.New(t)
	assert.Error(err)
	assert.True(errors.Is(err, ErrNoEligibleTracks))

	_, err = Classify(nil)
	assert.True(errors.Is(err, ErrNoEligibleTracks))
}

func TestClassifySingleTrackBecomesMelody(t *testing.T) {
	only := model.InstrumentTrack{Program: 24, Name: "Guitar", Notes: monoNotes(64, 5, 0.3)}
	tracks := []model.InstrumentTrack{
		{IsDrum: true, Notes: monoNotes(36, 8, 0.1)},
		only,
	}

	assignment, err := Classify(tracks)
	assert.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(1, len(assignment))
	assert.Equal("Guitar", assignment[RoleMelody].Name)
}

func TestClassifyTwoTracksBassAndMelody(t *testing.T) {
	bass := model.InstrumentTrack{Program: 36, Name: "bass", Notes: monoNotes(40, 1, 2.0)}
	lead := model.InstrumentTrack{Program: 80, Name: "lead", Notes: monoNotes(90, 10, 0.2)}

	assignment, err := Classify([]model.InstrumentTrack{bass, lead})
	assert.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(2, len(assignment))
	assert.Equal("bass", assignment[RoleBass].Name)
	assert.Equal("lead", assignment[RoleMelody].Name)
}

func TestClassifyTwoTracksBassAndChords(t *testing.T) {
	// the pad's concurrency and note length pull it to chords
	bass := model.InstrumentTrack{Program: 34, Name: "bass", Notes: monoNotes(38, 4, 0.5)}
	pad := model.InstrumentTrack{Program: 48, Name: "pad", Notes: polyNotes(60, 6, 2.0)}

	assignment, err := Classify([]model.InstrumentTrack{bass, pad})
	assert.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(2, len(assignment))
	assert.Equal("bass", assignment[RoleBass].Name)
	assert.Equal("pad", assignment[RoleChords].Name)
}

func TestClassifyTwoTracksNeverReusesATrack(t *testing.T) {
	a := model.InstrumentTrack{Program: 0, Name: "a", Notes: monoNotes(60, 3, 0.4)}
	b := model.InstrumentTrack{Program: 0, Name: "b", Notes: monoNotes(60, 3, 0.4)}

	assignment, err := Classify([]model.InstrumentTrack{a, b})
	assert.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(2, len(assignment))
	names := make(map[string]int)
	for _, track := range assignment {
		names[track.Name]++
	}
	assert.Equal(1, names["a"])
	assert.Equal(1, names["b"])
}

func TestClassifyThreeTracksByPriority(t *testing.T) {
	bass := model.InstrumentTrack{Program: 35, Name: "bass", Notes: monoNotes(40, 4, 0.5)}
	lead := model.InstrumentTrack{Program: 80, Name: "lead", Notes: monoNotes(90, 8, 0.25)}
	pad := model.InstrumentTrack{Program: 48, Name: "pad", Notes: polyNotes(60, 6, 2.0)}

	assignment, err := Classify([]model.InstrumentTrack{pad, bass, lead})
	assert.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(3, len(assignment))
	assert.Equal("bass", assignment[RoleBass].Name)
	assert.Equal("lead", assignment[RoleMelody].Name)
	assert.Equal("pad", assignment[RoleChords].Name)
}

func TestClassifyTieBreaksByOriginalOrder(t *testing.T) {
	first := model.InstrumentTrack{Program: 33, Name: "first", Notes: monoNotes(30, 2, 0.5)}
	second := model.InstrumentTrack{Program: 33, Name: "second", Notes: monoNotes(30, 2, 0.5)}
	lead := model.InstrumentTrack{Program: 80, Name: "lead", Notes: monoNotes(90, 8, 0.25)}

	assignment, err := Classify([]model.InstrumentTrack{first, second, lead})
	assert.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("first", assignment[RoleBass].Name)
	assert.Equal("lead", assignment[RoleMelody].Name)
	assert.Equal("second", assignment[RoleChords].Name)
}

func TestConcurrencyDependsOnSourceOrder(t *testing.T) {
	a := model.NoteEvent{Pitch: 60, Start: 0, End: 3}
	b := model.NoteEvent{Pitch: 64, Start: 1, End: 1.5}
	c := model.NoteEvent{Pitch: 67, Start: 2, End: 2.5}

	sourceOrder := model.InstrumentTrack{Program: 0, Notes: []model.NoteEvent{a, b, c}}
	reordered := model.InstrumentTrack{Program: 0, Notes: []model.NoteEvent{b, a, c}}

	first, err := Report([]model.InstrumentTrack{sourceOrder})
	assert.NoError(t, err)
	second, err := Report([]model.InstrumentTrack{reordered})
	assert.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(1, first[0].Concurrency)
	assert.Equal(2, second[0].Concurrency)
}

func TestReportStats(t *testing.T) {
	track := model.InstrumentTrack{
		Program: 48,
		Name:    "pad",
		Notes: []model.NoteEvent{
			{Pitch: 60, Start: 0, End: 1},
			{Pitch: 64, Start: 0.5, End: 1.5},
			{Pitch: 67, Start: 2, End: 4},
		},
	}

	reports, err := Report([]model.InstrumentTrack{track})
	assert.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(1, len(reports))
	r := reports[0]
	assert.Equal(3, r.NumNotes)
	assert.InDelta(63.666, r.AvgPitch, 0.001)
	assert.InDelta(4.0/3.0, r.AvgLength, 0.001)
	assert.Equal(1, r.Concurrency)
}

func TestReduceRelabelsWithoutMutatingInput(t *testing.T) {
	bass := model.InstrumentTrack{Program: 36, Name: "original bass", Notes: monoNotes(40, 2, 0.5)}
	lead := model.InstrumentTrack{Program: 80, Name: "original lead", Notes: monoNotes(90, 4, 0.25)}
	pad := model.InstrumentTrack{Program: 48, Name: "original pad", Notes: polyNotes(60, 4, 2.0)}

	reduced := Reduce(Assignment{
		RoleBass:   bass,
		RoleMelody: lead,
		RoleChords: pad,
	})

	assert := assert.New(t)
	assert.Equal(3, len(reduced))

	assert.Equal(uint8(33), reduced[0].Program)
	assert.Equal("Bass", reduced[0].Name)
	assert.Equal(bass.Notes, reduced[0].Notes)

	assert.Equal(uint8(1), reduced[1].Program)
	assert.Equal("Melody", reduced[1].Name)

	assert.Equal(uint8(0), reduced[2].Program)
	assert.Equal("Chords", reduced[2].Name)

	// inputs untouched
	assert.Equal(uint8(36), bass.Program)
	assert.Equal("original bass", bass.Name)
}

func TestReducePartialAssignment(t *testing.T) {
	lead := model.InstrumentTrack{Program: 80, Name: "lead", Notes: monoNotes(90, 4, 0.25)}

	reduced := Reduce(Assignment{RoleMelody: lead})

	assert := assert.New(t)
	assert.Equal(1, len(reduced))
	assert.Equal(uint8(1), reduced[0].Program)
	assert.Equal("Melody", reduced[0].Name)
}
