package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsphweid/midiprep/batch"
	"github.com/jsphweid/midiprep/dataset"
)

var rootCmd = &cobra.Command{
	Use:   "midiprep",
	Short: "MIDI dataset prep",
	Long:  `Prepares MIDI corpora for sequence-model training: token datasets and role-simplified files.`,
}

func Execute() {
	godotenv.Load()

	if os.Getenv("DEBUG") != "" {
		logger, _ := zap.NewDevelopment()
		batch.EnableDebugLogging(logger)
		dataset.EnableDebugLogging(logger)
	}

	cobra.CheckErr(rootCmd.Execute())
}
