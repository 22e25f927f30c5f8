// Package roles scores the instrument tracks of a MIDI file and
// assigns them the functional roles a simplified arrangement keeps:
// bass, melody and chords.
package roles

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/jsphweid/midiprep/constants"
	"github.com/jsphweid/midiprep/model"
)

type Role string

const (
	RoleBass   Role = "bass"
	RoleMelody Role = "melody"
	RoleChords Role = "chords"
)

// Assignment maps each role to at most one track and never reuses a
// track across roles.
type Assignment map[Role]model.InstrumentTrack

// ErrNoEligibleTracks means no non-drum track with at least one note
// was found.
var ErrNoEligibleTracks = errors.New("no eligible tracks")

type trackStats struct {
	track       model.InstrumentTrack
	numNotes    int
	avgPitch    float64
	avgLength   float64
	concurrency int
}

// gatherStats runs the single stats pass over a track's notes.
// Precondition: notes are in source order. The concurrency counter
// compares each start against the previous note's end, so sorting the
// notes first would change the result.
func gatherStats(track model.InstrumentTrack) trackStats {
	var totalPitch float64
	var totalLength float64
	var concurrency int
	var prevEnd float64

	for _, n := range track.Notes {
		totalPitch += float64(n.Pitch)
		if n.Start < prevEnd {
			concurrency++
		}
		prevEnd = n.End
		totalLength += n.End - n.Start
	}

	numNotes := len(track.Notes)
	return trackStats{
		track:       track,
		numNotes:    numNotes,
		avgPitch:    totalPitch / float64(numNotes),
		avgLength:   totalLength / float64(numNotes),
		concurrency: concurrency,
	}
}

// Scores holds the three role scores of one track, each in [0,1].
type Scores struct {
	Track  model.InstrumentTrack
	Bass   float64
	Melody float64
	Chords float64
}

func isBassProgram(program uint8) float64 {
	if program >= constants.BassProgramLow && program <= constants.BassProgramHigh {
		return 1
	}
	return 0
}

// score turns raw stats into role scores. The chord weighting is
// 0.5 concurrency / 0.4 length / 0.1 note count.
func score(stats []trackStats) []Scores {
	maxNumNotes := 1
	maxConcurrency := 1
	maxAvgLength := 1.0
	for _, s := range stats {
		if s.numNotes > maxNumNotes {
			maxNumNotes = s.numNotes
		}
		if s.concurrency > maxConcurrency {
			maxConcurrency = s.concurrency
		}
		if s.avgLength > maxAvgLength {
			maxAvgLength = s.avgLength
		}
	}

	var res []Scores
	for _, s := range stats {
		normNumNotes := float64(s.numNotes) / float64(maxNumNotes)
		normConcurrency := float64(s.concurrency) / float64(maxConcurrency)
		normAvgLength := s.avgLength / maxAvgLength

		res = append(res, Scores{
			Track:  s.track,
			Bass:   0.5*isBassProgram(s.track.Program) + 0.5*(constants.MaxPitch-s.avgPitch)/constants.MaxPitch,
			Melody: 0.45*(s.avgPitch/constants.MaxPitch) + 0.45*float64(maxConcurrency-s.concurrency)/float64(maxConcurrency) + 0.1*normNumNotes,
			Chords: 0.5*normConcurrency + 0.4*normAvgLength + 0.1*normNumNotes,
		})
	}
	return res
}

func eligible(tracks []model.InstrumentTrack) []model.InstrumentTrack {
	var res []model.InstrumentTrack
	for _, t := range tracks {
		if !t.IsDrum && len(t.Notes) > 0 {
			res = append(res, t)
		}
	}
	return res
}

type candidate struct {
	scoreIdx int
	role     Role
	value    float64
}

// assignPair handles the two-track case: a greedy maximal matching
// over the 2x3 (track, role) score table. Equal scores keep the
// build order, track-major then bass/melody/chords.
func assignPair(scored []Scores) Assignment {
	var flattened []candidate
	for i, s := range scored {
		flattened = append(flattened, candidate{scoreIdx: i, role: RoleBass, value: s.Bass})
		flattened = append(flattened, candidate{scoreIdx: i, role: RoleMelody, value: s.Melody})
		flattened = append(flattened, candidate{scoreIdx: i, role: RoleChords, value: s.Chords})
	}

	sort.SliceStable(flattened, func(i, j int) bool {
		return flattened[i].value > flattened[j].value
	})

	assigned := make(Assignment)
	usedTracks := make(map[int]bool)
	for _, c := range flattened {
		if usedTracks[c.scoreIdx] {
			continue
		}
		if _, ok := assigned[c.role]; ok {
			continue
		}
		assigned[c.role] = scored[c.scoreIdx].Track
		usedTracks[c.scoreIdx] = true
		if len(assigned) == 2 {
			break
		}
	}
	return assigned
}

// assignByPriority handles three or more tracks: argmax bass over all,
// then argmax melody over the rest, then argmax chords. Strict
// comparison keeps the first track on ties.
func assignByPriority(scored []Scores) Assignment {
	remaining := scored

	pick := func(value func(Scores) float64) Scores {
		best := 0
		for i := range remaining {
			if value(remaining[i]) > value(remaining[best]) {
				best = i
			}
		}
		chosen := remaining[best]
		remaining = append(append([]Scores{}, remaining[:best]...), remaining[best+1:]...)
		return chosen
	}

	bass := pick(func(s Scores) float64 { return s.Bass })
	melody := pick(func(s Scores) float64 { return s.Melody })
	chords := pick(func(s Scores) float64 { return s.Chords })

	return Assignment{
		RoleBass:   bass.Track,
		RoleMelody: melody.Track,
		RoleChords: chords.Track,
	}
}

// Classify assigns roles to the eligible (non-drum, non-empty) tracks.
// One eligible track becomes the melody; two get the two best
// non-conflicting (track, role) pairs; three or more get the fixed
// bass -> melody -> chords priority order.
func Classify(tracks []model.InstrumentTrack) (Assignment, error) {
	candidates := eligible(tracks)
	if len(candidates) == 0 {
		return nil, errors.Wrap(ErrNoEligibleTracks, "no non-drum track with notes")
	}

	if len(candidates) == 1 {
		return Assignment{RoleMelody: candidates[0]}, nil
	}

	var stats []trackStats
	for _, t := range candidates {
		stats = append(stats, gatherStats(t))
	}
	scored := score(stats)

	if len(scored) == 2 {
		return assignPair(scored), nil
	}
	return assignByPriority(scored), nil
}

// Reduce builds the simplified track list from an assignment: fresh
// track records relabeled to the fixed programs and names, in bass,
// melody, chords order. Input tracks are never mutated; the note
// slices are shared since notes are immutable.
func Reduce(a Assignment) []model.InstrumentTrack {
	var res []model.InstrumentTrack
	if t, ok := a[RoleBass]; ok {
		res = append(res, model.InstrumentTrack{Program: constants.BassProgram, Name: "Bass", Notes: t.Notes})
	}
	if t, ok := a[RoleMelody]; ok {
		res = append(res, model.InstrumentTrack{Program: constants.MelodyProgram, Name: "Melody", Notes: t.Notes})
	}
	if t, ok := a[RoleChords]; ok {
		res = append(res, model.InstrumentTrack{Program: constants.ChordsProgram, Name: "Chords", Notes: t.Notes})
	}
	return res
}
