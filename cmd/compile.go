package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsphweid/midiprep/collect"
	"github.com/jsphweid/midiprep/constants"
	"github.com/jsphweid/midiprep/dataset"
	"github.com/jsphweid/midiprep/storage"
)

var compileWorkers int

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().IntVar(&compileWorkers, "workers", 4, "number of files processed in parallel")
}

var compileCmd = &cobra.Command{
	Use:   "compile [maxFiles]",
	Short: "Compiles the token dataset",
	Long:  `Compiles the token dataset`,
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			maxNum = arg1
		}

		Compile(maxNum)
	},
}

// Compile runs the full dataset build: discover, tokenize, write
// artifacts, optionally upload.
func Compile(maxNum int) {
	refs := collect.Gather(constants.GetMidiRoot(), maxNum)
	res := dataset.Compile(context.Background(), refs, compileWorkers)
	fmt.Printf("Genre mapping: %v\n", res.Genres)

	paths, err := dataset.WriteArtifacts(constants.GetOutDir(), res)
	if err != nil {
		panic("Could not write artifacts because: " + err.Error())
	}
	fmt.Printf("Converted %v files, skipped %v files.\n", len(res.Records), len(res.Failures))

	if bucket := constants.GetDatasetBucket(); bucket != "" {
		if err := storage.UploadArtifacts(bucket, paths); err != nil {
			fmt.Printf("Could not upload artifacts: %v\n", err)
		}
	}
}
