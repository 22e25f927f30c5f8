// Package collect discovers genre-labeled MIDI files under a dataset
// root laid out as root/<genre>/.../song.mid.
package collect

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/jsphweid/midiprep/model"
)

func isMidiFilename(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".mid") || strings.HasSuffix(lower, ".midi")
}

// Gather walks root and returns every MIDI file with the directory
// immediately under root as its genre. Files sitting directly under
// root have no genre and are skipped. The walk is lexical, so the
// result order is deterministic. maxNum of 0 means no limit.
func Gather(root string, maxNum int) []model.MidiRef {
	var res []model.MidiRef
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			panic("Error walking: " + err.Error())
		}
		if d.IsDir() || !isMidiFilename(s) {
			return nil
		}
		rel, err := filepath.Rel(root, s)
		if err != nil {
			return nil
		}
		parts := strings.Split(rel, string(filepath.Separator))
		if len(parts) < 2 {
			return nil
		}
		if maxNum == 0 || len(res) < maxNum {
			res = append(res, model.MidiRef{Path: s, Genre: parts[0]})
		}
		return nil
	}
	filepath.WalkDir(root, walk)
	return res
}
