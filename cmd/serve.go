package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/midiprep/constants"
	"github.com/jsphweid/midiprep/model"
	"github.com/jsphweid/midiprep/util"
	"github.com/jsphweid/midiprep/vocab"
)

var (
	serveMu      sync.RWMutex
	serveRecords []model.Record
	serveGenres  model.GenreMap
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves an inspection API over the dataset artifacts",
	Long:  `Serves an inspection API over the dataset artifacts`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// LoadArtifacts reads the dataset artifacts into memory, replacing
// whatever was loaded before.
func LoadArtifacts() {
	outDir := constants.GetOutDir()
	records := util.ReadBinaryOrPanic[[]model.Record](filepath.Join(outDir, constants.DatasetFilename))
	genres := util.ReadBinaryOrPanic[model.GenreMap](filepath.Join(outDir, constants.GenresFilename))

	serveMu.Lock()
	serveRecords = records
	serveGenres = genres
	serveMu.Unlock()
}

// watchArtifacts polls the dataset file's mtime and reloads on change.
// Reloads are debounced so a recompile that rewrites both artifact
// files triggers a single reload.
func watchArtifacts() {
	path := filepath.Join(constants.GetOutDir(), constants.DatasetFilename)
	debounced := debounce.New(500 * time.Millisecond)

	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	for range time.Tick(2 * time.Second) {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().After(lastMod) {
			lastMod = info.ModTime()
			debounced(func() {
				fmt.Println("Artifacts changed, reloading...")
				LoadArtifacts()
			})
		}
	}
}

func HandleVocab(w http.ResponseWriter, r *http.Request) {
	res := make([]model.VocabEntry, 0, vocab.Size())
	for id := 0; id < vocab.Size(); id++ {
		name, _ := vocab.EventForID(model.Token(id))
		res = append(res, model.VocabEntry{ID: id, Event: name})
	}
	json.NewEncoder(w).Encode(res)
}

func HandleGenres(w http.ResponseWriter, r *http.Request) {
	serveMu.RLock()
	defer serveMu.RUnlock()
	json.NewEncoder(w).Encode(serveGenres)
}

func HandleSummary(w http.ResponseWriter, r *http.Request) {
	serveMu.RLock()
	defer serveMu.RUnlock()

	idToGenre := make(map[int]string)
	for name, id := range serveGenres {
		idToGenre[id] = name
	}

	res := model.SummaryResponse{PerGenre: make(map[string]int)}
	res.NumSequences = len(serveRecords)
	for i, rec := range serveRecords {
		n := len(rec.Tokens)
		res.TotalTokens += uint64(n)
		if i == 0 || n < res.MinTokens {
			res.MinTokens = n
		}
		if n > res.MaxTokens {
			res.MaxTokens = n
		}
		res.PerGenre[idToGenre[rec.GenreID]] += 1
	}
	if res.NumSequences > 0 {
		res.AvgTokens = float64(res.TotalTokens) / float64(res.NumSequences)
	}
	json.NewEncoder(w).Encode(res)
}

func HandleSequence(w http.ResponseWriter, r *http.Request) {
	num, err := strconv.Atoi(mux.Vars(r)["num"])
	if err != nil {
		w.WriteHeader(400)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: "num must be an integer"})
		return
	}

	serveMu.RLock()
	defer serveMu.RUnlock()

	if num < 0 || num >= len(serveRecords) {
		w.WriteHeader(404)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: fmt.Sprintf("no sequence %v", num)})
		return
	}

	rec := serveRecords[num]
	res := model.SequenceResponse{
		Num:       num,
		GenreID:   rec.GenreID,
		NumTokens: len(rec.Tokens),
		Tokens:    rec.Tokens,
	}
	for name, id := range serveGenres {
		if id == rec.GenreID {
			res.Genre = name
		}
	}
	for _, tok := range rec.Tokens {
		name, _ := vocab.EventForID(tok)
		res.Events = append(res.Events, name)
	}
	json.NewEncoder(w).Encode(res)
}

// NewRouter builds the inspection API routes.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/vocab", HandleVocab).Methods("GET")
	router.HandleFunc("/genres", HandleGenres).Methods("GET")
	router.HandleFunc("/summary", HandleSummary).Methods("GET")
	router.HandleFunc("/sequences/{num}", HandleSequence).Methods("GET")
	return router
}

func serve() {
	LoadArtifacts()
	go watchArtifacts()

	handler := cors.Default().Handler(NewRouter())
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
