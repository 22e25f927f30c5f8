package collect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/midiprep/model"
)

func touch(t *testing.T, path string) {
	t.Helper()
	err := os.MkdirAll(filepath.Dir(path), 0777)
	assert.NoError(t, err)
	err = os.WriteFile(path, []byte("x"), 0666)
	assert.NoError(t, err)
}

func TestGatherLabelsByGenreDirectory(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "rock", "a.mid"))
	touch(t, filepath.Join(root, "jazz", "someartist", "b.MIDI"))
	touch(t, filepath.Join(root, "rock", "notes.txt"))
	touch(t, filepath.Join(root, "toplevel.mid")) // no genre dir, skipped

	refs := Gather(root, 0)

	assert := assert.New(t)
	assert.Equal(2, len(refs))
	assert.Equal(model.MidiRef{Path: filepath.Join(root, "jazz", "someartist", "b.MIDI"), Genre: "jazz"}, refs[0])
	assert.Equal(model.MidiRef{Path: filepath.Join(root, "rock", "a.mid"), Genre: "rock"}, refs[1])
}

func TestGatherRespectsMaxNum(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "rock", "a.mid"))
	touch(t, filepath.Join(root, "rock", "b.mid"))
	touch(t, filepath.Join(root, "rock", "c.mid"))

	refs := Gather(root, 2)
	assert.Equal(t, 2, len(refs))
}

func TestGatherEmptyRoot(t *testing.T) {
	assert.Empty(t, Gather(t.TempDir(), 0))
}
