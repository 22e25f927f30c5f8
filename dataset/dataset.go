// Package dataset compiles discovered MIDI files into the token
// dataset artifact: an ordered list of (token sequence, genre id)
// records plus the genre-name mapping that makes the ids meaningful.
package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jsphweid/midiprep/batch"
	"github.com/jsphweid/midiprep/constants"
	"github.com/jsphweid/midiprep/model"
	"github.com/jsphweid/midiprep/tokenizer"
	"github.com/jsphweid/midiprep/util"
)

// ErrSequenceTooShort marks files that tokenized to fewer than
// MinSequenceTokens tokens; they are logged and left out of the
// artifact.
var ErrSequenceTooShort = errors.New("sequence too short")

var datasetLog = zap.NewNop()

// EnableDebugLogging routes compile debug output to l.
func EnableDebugLogging(l *zap.Logger) {
	datasetLog = l.Named("dataset")
}

// CompileResult is one batch run's output: records in discovery order
// (successful files only) and one failure per skipped file.
type CompileResult struct {
	Records  []model.Record
	Genres   model.GenreMap
	Failures []model.Failure
}

// BuildGenreMap assigns genre ids by ascending sorted genre name so
// the mapping is identical for any discovery order of the same corpus.
func BuildGenreMap(refs []model.MidiRef) model.GenreMap {
	set := make(map[string]bool)
	for _, ref := range refs {
		set[ref.Genre] = true
	}

	res := make(model.GenreMap)
	for i, genre := range util.GetKeysSorted(set) {
		res[genre] = i
	}
	return res
}

// Compile tokenizes every ref on a worker pool. Invalid files and
// too-short sequences become failures; the batch always runs to the
// end.
func Compile(ctx context.Context, refs []model.MidiRef, workers int) CompileResult {
	genres := BuildGenreMap(refs)

	records, failures := batch.Map(ctx, refs, workers, func(ref model.MidiRef) (model.Record, error) {
		tokens, err := tokenizer.TokenizeFile(ref.Path)
		if err != nil {
			return model.Record{}, err
		}
		if len(tokens) < constants.MinSequenceTokens {
			return model.Record{}, errors.Wrapf(ErrSequenceTooShort, "%v tokens", len(tokens))
		}
		fmt.Printf("Converted %v to %v tokens.\n", ref.Path, len(tokens))
		return model.Record{Tokens: tokens, GenreID: genres[ref.Genre]}, nil
	})

	datasetLog.Debug("compile finished",
		zap.Int("records", len(records)),
		zap.Int("failures", len(failures)))

	return CompileResult{Records: records, Genres: genres, Failures: failures}
}

// WriteArtifacts saves the dataset, the genre map and, when there were
// skipped files, a failures log named by a fresh run id. It returns
// the paths of the written artifact files.
func WriteArtifacts(outDir string, res CompileResult) ([]string, error) {
	if err := os.MkdirAll(outDir, 0777); err != nil {
		return nil, errors.Wrapf(err, "could not create output dir %v", outDir)
	}

	datasetPath := filepath.Join(outDir, constants.DatasetFilename)
	genresPath := filepath.Join(outDir, constants.GenresFilename)
	util.CreateBinary(datasetPath, res.Records)
	util.CreateBinary(genresPath, res.Genres)
	paths := []string{datasetPath, genresPath}

	if len(res.Failures) > 0 {
		logPath := filepath.Join(outDir, fmt.Sprintf("failures-%v.log", uuid.New().String()))
		var lines []byte
		for _, f := range res.Failures {
			lines = append(lines, []byte(fmt.Sprintf("%v: %v\n", f.Path, f.Reason))...)
		}
		if err := os.WriteFile(logPath, lines, 0666); err != nil {
			return nil, errors.Wrapf(err, "could not write failures log %v", logPath)
		}
		paths = append(paths, logPath)
	}

	return paths, nil
}
