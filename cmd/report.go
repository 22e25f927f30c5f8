package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/jsphweid/midiprep/constants"
	"github.com/jsphweid/midiprep/model"
	"github.com/jsphweid/midiprep/util"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report over the dataset artifacts",
	Long:  `Creates a report over the dataset artifacts`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

type datasetReport struct {
	numSequences int
	totalTokens  uint64
	minTokens    int
	maxTokens    int
	perGenre     map[string]int
	numFailures  int
}

func analyzeDataset(outDir string) datasetReport {
	records := util.ReadBinaryOrPanic[[]model.Record](filepath.Join(outDir, constants.DatasetFilename))
	genres := util.ReadBinaryOrPanic[model.GenreMap](filepath.Join(outDir, constants.GenresFilename))

	idToGenre := make(map[int]string)
	for name, id := range genres {
		idToGenre[id] = name
	}

	report := datasetReport{perGenre: make(map[string]int)}
	var lengths []int
	for _, rec := range records {
		report.numSequences += 1
		lengths = append(lengths, len(rec.Tokens))
		report.perGenre[idToGenre[rec.GenreID]] += 1
	}
	report.totalTokens = util.Sum(lengths)

	for i, l := range lengths {
		if i == 0 || l < report.minTokens {
			report.minTokens = l
		}
		if l > report.maxTokens {
			report.maxTokens = l
		}
	}

	files, err := os.ReadDir(outDir)
	if err != nil {
		panic("Could not read dir because: " + err.Error())
	}
	r, _ := regexp.Compile(`^failures-.*\.log$`)
	for _, file := range files {
		if r.MatchString(file.Name()) {
			data, err := os.ReadFile(filepath.Join(outDir, file.Name()))
			if err != nil {
				continue
			}
			for _, b := range data {
				if b == '\n' {
					report.numFailures += 1
				}
			}
		}
	}

	return report
}

func report() {
	r := analyzeDataset(constants.GetOutDir())
	fmt.Printf("numSequences: %v\n", r.numSequences)
	fmt.Printf("totalTokens: %v\n", r.totalTokens)
	fmt.Printf("minTokens: %v\n", r.minTokens)
	fmt.Printf("maxTokens: %v\n", r.maxTokens)
	if r.numSequences > 0 {
		fmt.Printf("avgTokens: %v\n", float64(r.totalTokens)/float64(r.numSequences))
	}
	for _, genre := range util.GetKeysSorted(r.perGenre) {
		fmt.Printf("genre %v: %v sequences\n", genre, r.perGenre[genre])
	}
	fmt.Printf("failures logged: %v\n", r.numFailures)
}
