// Package tokenizer provides a dictionary symbol table mapping event words to
// integer ids.
package tokenizer

type Dict struct {
	words []string
	ids   map[string]int
}

// NewDict builds a symbol table assigning ids in order of first appearance.
func NewDict(words []string) *Dict {
	d := &Dict{ids: make(map[string]int)}
	for _, w := range words {
		if _, ok := d.ids[w]; ok {
			continue
		}
		d.ids[w] = len(d.words)
		d.words = append(d.words, w)
	}
	return d
}

func (d *Dict) Stoi(word string) int {
	id, ok := d.ids[word]
	if !ok {
		panic("unknown word: " + word)
	}
	return id
}

func (d *Dict) Itos(id int) string {
	return d.words[id]
}

func (d *Dict) Len() int {
	return len(d.words)
}
