package scripts

import (
	"slices"
	"sync"

	"github.com/derekparker/trie"
	"golang.org/x/text/cases"
)

// column indexes one side of the table. Keys are case-folded names, payloads
// are positions in table.
type column struct {
	trie *trie.Trie
	size int
}

type tableIndex struct {
	byModifier column
	byScript   column
}

var index = sync.OnceValue(buildIndex)

func buildIndex() *tableIndex {
	ix := &tableIndex{
		byModifier: column{trie: trie.New()},
		byScript:   column{trie: trie.New()},
	}
	for i, p := range table {
		ix.byModifier.add(p.Modifier, i)
		ix.byScript.add(p.Script, i)
	}
	tracer().Infof("script table indexed: %d pairs, %d modifiers, %d scripts",
		len(table), ix.byModifier.size, ix.byScript.size)
	return ix
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// add registers key at table position pos. An existing key is kept, so the
// first pair of an ambiguous name wins.
func (c *column) add(key string, pos int) {
	k := fold(key)
	if _, found := c.trie.Find(k); found {
		tracer().Debugf("%q already mapped, keeping first entry", key)
		return
	}
	c.trie.Add(k, pos)
	c.size++
}

func (c *column) lookup(key string) (int, bool) {
	if key == "" {
		return 0, false
	}
	node, found := c.trie.Find(fold(key))
	if !found {
		return 0, false
	}
	pos, ok := node.Meta().(int)
	return pos, ok
}

func (c *column) withPrefix(prefix string) []string {
	var keys []string
	if prefix == "" {
		keys = c.trie.Keys()
	} else {
		keys = c.trie.PrefixSearch(fold(prefix))
	}
	slices.Sort(keys)
	return keys
}
