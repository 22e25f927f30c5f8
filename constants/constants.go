package constants

import "os"

func GetMidiRoot() string {
	path := os.Getenv("MIDI_ROOT")
	if path != "" {
		return path
	}
	return "MIDIs"
}

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetSimplifiedDir() string {
	path := os.Getenv("SIMPLIFIED_PATH")
	if path != "" {
		return path
	}
	return "./simplified_MIDIs"
}

// GetDatasetBucket returns "" when uploading is disabled.
func GetDatasetBucket() string {
	return os.Getenv("DATASET_BUCKET")
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// TimeStep is the quantization grid in seconds. Two note onsets that
// round to the same grid index are treated as simultaneous.
const TimeStep = 0.03

// MaxShift is the largest single TIME_SHIFT value in grid steps
// (100 steps ~= 3 seconds). Bigger gaps get split into multiple tokens.
const MaxShift = 100

const MaxPitch = 127

// NOTE_ON_0..127 then TIME_SHIFT_1..100
const VocabSize = MaxPitch + 1 + MaxShift

// Sequences shorter than this are excluded from the dataset artifact.
const MinSequenceTokens = 10

// General MIDI bass family
const BassProgramLow = 33
const BassProgramHigh = 40

// Programs the simplified output tracks get relabeled to.
const BassProgram = 33
const MelodyProgram = 1
const ChordsProgram = 0

const DatasetFilename = "token_dataset.dat"
const GenresFilename = "genres.dat"

// Grid the MIDI writer renders onto.
const TicksPerQuarter = 960
const WriteBPM = 120
