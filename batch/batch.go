// Package batch runs a per-file operation over many MIDI files on a
// small worker pool. Files are independent, so there is no shared
// state between tasks; one bad file never stops the rest.
package batch

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jsphweid/midiprep/model"
)

var batchLog = zap.NewNop()

// EnableDebugLogging routes per-task debug output to l.
func EnableDebugLogging(l *zap.Logger) {
	batchLog = l.Named("batch")
}

type job struct {
	num int
	ref model.MidiRef
}

func runOne[T any](j job, fn func(model.MidiRef) (T, error), out []T) (e error) {
	defer func() {
		if r := recover(); r != nil {
			e = errors.Errorf("panic: %v", r)
		}
	}()

	res, err := fn(j.ref)
	if err != nil {
		return err
	}
	out[j.num] = res
	return nil
}

// Map applies fn to every ref on workers goroutines and returns the
// successful results in input order plus one failure per skipped file.
// A cancelled context stops dispatching new work; refs never
// dispatched are reported as failures with the context's error.
func Map[T any](ctx context.Context, refs []model.MidiRef, workers int, fn func(model.MidiRef) (T, error)) ([]T, []model.Failure) {
	if workers < 1 {
		workers = 1
	}

	out := make([]T, len(refs))
	errs := make([]error, len(refs))

	jobs := make(chan job)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				errs[j.num] = runOne(j, fn, out)
				batchLog.Debug("processed",
					zap.String("path", j.ref.Path),
					zap.Error(errs[j.num]))
			}
		}()
	}

dispatch:
	for i, ref := range refs {
		if ctx.Err() != nil {
			for rest := i; rest < len(refs); rest++ {
				errs[rest] = ctx.Err()
			}
			break dispatch
		}
		select {
		case <-ctx.Done():
			for rest := i; rest < len(refs); rest++ {
				errs[rest] = ctx.Err()
			}
			break dispatch
		case jobs <- job{num: i, ref: ref}:
		}
	}
	close(jobs)
	wg.Wait()

	var results []T
	var failures []model.Failure
	for i := range refs {
		if errs[i] != nil {
			failures = append(failures, model.Failure{Path: refs[i].Path, Reason: errs[i].Error()})
			continue
		}
		results = append(results, out[i])
	}
	return results, failures
}
