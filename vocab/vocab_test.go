package vocab

import (
	"fmt"
	"testing"

	"github.com/jsphweid/midiprep/model"
	"github.com/stretchr/testify/assert"
)

func TestNoteOnLayout(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(model.Token(0), NoteOn(0))
	assert.Equal(model.Token(60), NoteOn(60))
	assert.Equal(model.Token(127), NoteOn(127))
}

func TestTimeShiftLayout(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(model.Token(128), TimeShift(1))
	assert.Equal(model.Token(193), TimeShift(66))
	assert.Equal(model.Token(227), TimeShift(100))
}

func TestSize(t *testing.T) {
	assert.Equal(t, 228, Size())
}

func TestBijectionOverFullDomain(t *testing.T) {
	assert := assert.New(t)

	seen := make(map[string]bool)
	for id := 0; id < Size(); id++ {
		name, ok := EventForID(model.Token(id))
		assert.True(ok, "no event for id %v", id)
		assert.False(seen[name], "duplicate event name %v", name)
		seen[name] = true

		back, ok := IDForEvent(name)
		assert.True(ok)
		assert.Equal(model.Token(id), back)
	}
	assert.Equal(Size(), len(seen))
}

func TestRoundTripsForEveryName(t *testing.T) {
	assert := assert.New(t)

	var names []string
	for pitch := 0; pitch <= 127; pitch++ {
		names = append(names, fmt.Sprintf("NOTE_ON_%v", pitch))
	}
	for shift := 1; shift <= 100; shift++ {
		names = append(names, fmt.Sprintf("TIME_SHIFT_%v", shift))
	}

	for _, name := range names {
		id, ok := IDForEvent(name)
		assert.True(ok, "no id for %v", name)
		back, ok := EventForID(id)
		assert.True(ok)
		assert.Equal(name, back)
	}
}

func TestUnknownLookupsFail(t *testing.T) {
	assert := assert.New(t)

	_, ok := EventForID(model.Token(228))
	assert.False(ok)
	_, ok = EventForID(model.Token(-1))
	assert.False(ok)
	_, ok = IDForEvent("TIME_SHIFT_0")
	assert.False(ok)
	_, ok = IDForEvent("TIME_SHIFT_101")
	assert.False(ok)
	_, ok = IDForEvent("NOTE_ON_128")
	assert.False(ok)
}
