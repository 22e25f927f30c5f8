package dataset

import (
	"math/rand"

	"github.com/jsphweid/midiprep/model"
)

// Window produces one fixed-length training pair from a stored token
// sequence. Sequences of at most seqLen tokens are left-padded with
// token 0 to seqLen+1; longer ones contribute a uniformly random
// contiguous window of seqLen+1. The input is the window without its
// last token, the target the window shifted by one.
func Window(tokens []model.Token, seqLen int, rng *rand.Rand) (input []model.Token, target []model.Token) {
	window := make([]model.Token, 0, seqLen+1)
	if len(tokens) <= seqLen {
		for i := len(tokens); i < seqLen+1; i++ {
			window = append(window, 0)
		}
		window = append(window, tokens...)
	} else {
		start := rng.Intn(len(tokens) - seqLen)
		window = append(window, tokens[start:start+seqLen+1]...)
	}

	return window[:seqLen], window[1:]
}
