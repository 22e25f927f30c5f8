package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jsphweid/midiprep/batch"
	"github.com/jsphweid/midiprep/collect"
	"github.com/jsphweid/midiprep/constants"
	"github.com/jsphweid/midiprep/midifile"
	"github.com/jsphweid/midiprep/model"
	"github.com/jsphweid/midiprep/roles"
)

var simplifyWorkers int

func init() {
	rootCmd.AddCommand(simplifyCmd)
	simplifyCmd.Flags().IntVar(&simplifyWorkers, "workers", 4, "number of files processed in parallel")
}

var simplifyCmd = &cobra.Command{
	Use:   "simplify",
	Short: "Writes role-reduced copies of every MIDI file",
	Long:  `Writes role-reduced copies of every MIDI file`,
	Run: func(cmd *cobra.Command, args []string) {
		Simplify()
	},
}

func simplifyOne(ref model.MidiRef) (string, error) {
	tracks, err := midifile.Read(ref.Path)
	if err != nil {
		return "", err
	}
	assignment, err := roles.Classify(tracks)
	if err != nil {
		return "", err
	}
	reduced := roles.Reduce(assignment)

	outPath := filepath.Join(constants.GetSimplifiedDir(), ref.Genre, filepath.Base(ref.Path))
	if err := midifile.Write(outPath, reduced); err != nil {
		return "", err
	}
	fmt.Printf("New MIDI file created and saved as '%v'\n", outPath)
	return outPath, nil
}

// Simplify classifies and reduces every discovered file.
func Simplify() {
	refs := collect.Gather(constants.GetMidiRoot(), 0)
	written, failures := batch.Map(context.Background(), refs, simplifyWorkers, simplifyOne)

	for _, f := range failures {
		fmt.Printf("Skipping %v because: %v\n", f.Path, f.Reason)
	}
	fmt.Printf("Simplified %v files, skipped %v files.\n", len(written), len(failures))
}
