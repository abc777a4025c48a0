package util

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixLengthPads(t *testing.T) {
	assert.Equal(t, []int{7, 8, 0, 0}, FixLength([]int{7, 8}, 4))
}

func TestFixLengthTruncates(t *testing.T) {
	assert.Equal(t, []int{7, 8}, FixLength([]int{7, 8, 9}, 2))
}

func TestFixLengthExact(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, FixLength([]string{"a", "b"}, 2))
}

func TestGetKeys(t *testing.T) {
	m := map[uint8]bool{60: true, 64: true, 67: true}
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	assert.Equal(t, []uint8{60, 64, 67}, keys)
}

func TestBinaryRoundTrip(t *testing.T) {
	type record struct {
		Tokens    []int
		TokensNum int
	}
	path := filepath.Join(t.TempDir(), "encoding.dat")

	want := record{Tokens: []int{1, 2, 3, 0}, TokensNum: 9}
	CreateBinary(path, want)
	got := ReadBinaryOrPanic[record](path)

	assert.Equal(t, want, got)
}
