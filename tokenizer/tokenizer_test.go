package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDictAssignsIdsInOrderOfAppearance(t *testing.T) {
	d := NewDict([]string{"<sos>", "name=note_on", "pitch=60", "name=note_on", "<sos>"})

	assert := assert.New(t)
	assert.Equal(3, d.Len())
	assert.Equal(0, d.Stoi("<sos>"))
	assert.Equal(1, d.Stoi("name=note_on"))
	assert.Equal(2, d.Stoi("pitch=60"))
}

func TestDictRoundTrip(t *testing.T) {
	words := []string{"<sos>", "name=note_on", "time=0.5", "pitch=60"}
	d := NewDict(words)

	assert := assert.New(t)
	for _, w := range words {
		assert.Equal(w, d.Itos(d.Stoi(w)))
	}
}

func TestDictPanicsOnUnknownWord(t *testing.T) {
	d := NewDict([]string{"<sos>"})
	assert.Panics(t, func() { d.Stoi("pitch=61") })
}
