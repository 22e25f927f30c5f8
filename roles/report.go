package roles

import "github.com/jsphweid/midiprep/model"

// TrackReport is one eligible track's raw stats and role scores, for
// inspection output.
type TrackReport struct {
	Name        string
	Program     uint8
	NumNotes    int
	AvgPitch    float64
	AvgLength   float64
	Concurrency int
	Bass        float64
	Melody      float64
	Chords      float64
}

// Report returns stats and scores for every eligible track without
// assigning roles.
func Report(tracks []model.InstrumentTrack) ([]TrackReport, error) {
	candidates := eligible(tracks)
	if len(candidates) == 0 {
		return nil, ErrNoEligibleTracks
	}

	var stats []trackStats
	for _, t := range candidates {
		stats = append(stats, gatherStats(t))
	}
	scored := score(stats)

	var res []TrackReport
	for i, s := range stats {
		res = append(res, TrackReport{
			Name:        s.track.Name,
			Program:     s.track.Program,
			NumNotes:    s.numNotes,
			AvgPitch:    s.avgPitch,
			AvgLength:   s.avgLength,
			Concurrency: s.concurrency,
			Bass:        scored[i].Bass,
			Melody:      scored[i].Melody,
			Chords:      scored[i].Chords,
		})
	}
	return res, nil
}
