package cache

import "github.com/gogpu/glyphcache/text"

// entryKey is the composite key of one table entry.
type entryKey[K comparable] struct {
	font   text.FontKey
	text   string
	params K
}

// table maps (font, text, params) to the arrangement laid out for them.
// Entries are inserted once and only ever removed all together.
type table[K comparable] struct {
	entries map[entryKey[K]]*text.Arrangement
}

func newTable[K comparable]() table[K] {
	return table[K]{entries: make(map[entryKey[K]]*text.Arrangement)}
}

func (t *table[K]) get(font text.FontKey, s string, params K) (*text.Arrangement, bool) {
	a, ok := t.entries[entryKey[K]{font: font, text: s, params: params}]
	return a, ok
}

// put stores a unless the key is already present, and returns the stored
// arrangement.
func (t *table[K]) put(font text.FontKey, s string, params K, a *text.Arrangement) *text.Arrangement {
	k := entryKey[K]{font: font, text: s, params: params}
	if existing, ok := t.entries[k]; ok {
		return existing
	}
	t.entries[k] = a
	return a
}

func (t *table[K]) len() int {
	return len(t.entries)
}

func (t *table[K]) clear() {
	clear(t.entries)
}

// addFonts records the distinct fonts of t in seen.
func (t *table[K]) addFonts(seen map[text.FontKey]struct{}) {
	for k := range t.entries {
		seen[k.font] = struct{}{}
	}
}
