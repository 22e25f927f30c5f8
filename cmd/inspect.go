package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/midiprep/midifile"
	"github.com/jsphweid/midiprep/roles"
	"github.com/jsphweid/midiprep/tokenizer"
	"github.com/jsphweid/midiprep/util"
	"github.com/jsphweid/midiprep/vocab"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects one MIDI file",
	Long:  `Inspects one MIDI file: per-track stats, role scores, assignment and tokens`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	tracks, err := midifile.Read(path)
	if err != nil {
		panic("Could not read midi file because: " + err.Error())
	}

	reports, err := roles.Report(tracks)
	if err != nil {
		fmt.Printf("No role report: %v\n", err)
	}
	for _, r := range reports {
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("Program %v", r.Program)
		}
		fmt.Printf("Track: %v\n", name)
		fmt.Printf("  Bass score:   %.3f\n", r.Bass)
		fmt.Printf("  Chord score:  %.3f\n", r.Chords)
		fmt.Printf("  Melody score: %.3f\n", r.Melody)
		fmt.Printf("    Avg pitch: %.1f, Concurrency: %v, Avg length: %.3f, Notes: %v\n",
			r.AvgPitch, r.Concurrency, r.AvgLength, r.NumNotes)
	}

	if assignment, err := roles.Classify(tracks); err == nil {
		for _, role := range util.GetKeysSorted(assignment) {
			track := assignment[role]
			name := track.Name
			if name == "" {
				name = fmt.Sprintf("Program %v", track.Program)
			}
			fmt.Printf("%v: %v\n", role, name)
		}
	}

	tokens := tokenizer.Tokenize(tracks)
	fmt.Printf("Tokens: %v\n", len(tokens))
	for i, tok := range tokens {
		if i >= 20 {
			fmt.Println("...")
			break
		}
		name, _ := vocab.EventForID(tok)
		fmt.Printf("  %v\n", name)
	}
}
