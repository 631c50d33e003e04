package suggest

import (
	"slices"

	"github.com/bastiangx/lexserve/internal/utils"
)

// trieNode holds one code point of a key. Children are kept sorted by rune
// and ids sorted lexically so traversal order is fixed for a given trie.
type trieNode struct {
	runes    []rune
	children []*trieNode
	ids      []string
	wordEnd  bool
}

func (n *trieNode) child(r rune) *trieNode {
	i, found := slices.BinarySearch(n.runes, r)
	if !found {
		return nil
	}
	return n.children[i]
}

// childOrCreate returns the child for r, creating it when missing.
// created is true if a new node was added.
func (n *trieNode) childOrCreate(r rune) (c *trieNode, created bool) {
	i, found := slices.BinarySearch(n.runes, r)
	if found {
		return n.children[i], false
	}
	c = &trieNode{}
	n.runes = slices.Insert(n.runes, i, r)
	n.children = slices.Insert(n.children, i, c)
	return c, true
}

// addID inserts id into the sorted id set. Returns false if already present.
func (n *trieNode) addID(id string) bool {
	i, found := slices.BinarySearch(n.ids, id)
	if found {
		return false
	}
	n.ids = slices.Insert(n.ids, i, id)
	return true
}

// PrefixTrie maps code point sequences to sets of identifiers.
// It is filled during Build and only read afterwards.
type PrefixTrie struct {
	root  *trieNode
	keys  int
	nodes int
}

// NewPrefixTrie creates an empty trie.
func NewPrefixTrie() *PrefixTrie {
	return &PrefixTrie{root: &trieNode{}, nodes: 1}
}

// Insert adds id under key. Inserting the same pair twice is a no-op.
func (t *PrefixTrie) Insert(key, id string) {
	node := t.root
	for _, r := range key {
		var created bool
		node, created = node.childOrCreate(r)
		if created {
			t.nodes++
		}
	}
	if !node.wordEnd {
		node.wordEnd = true
		t.keys++
	}
	node.addID(id)
}

// Find returns up to limit distinct ids stored under keys starting with prefix.
// Keys closer to the prefix come first: the walk is breadth first, starting
// at the prefix node itself. An empty prefix matches the whole trie.
func (t *PrefixTrie) Find(prefix string, limit int) []string {
	if limit <= 0 {
		return []string{}
	}
	node := t.startsWith(prefix)
	if node == nil {
		return []string{}
	}
	return collectIDs(node, limit)
}

// Len returns the number of distinct keys.
func (t *PrefixTrie) Len() int {
	return t.keys
}

// Size returns the number of nodes, root included.
func (t *PrefixTrie) Size() int {
	return t.nodes
}

func (t *PrefixTrie) startsWith(prefix string) *trieNode {
	node := t.root
	for _, r := range prefix {
		node = node.child(r)
		if node == nil {
			return nil
		}
	}
	return node
}

// collectIDs walks level by level from start and stops as soon as limit
// distinct ids were gathered.
func collectIDs(start *trieNode, limit int) []string {
	ids := make([]string, 0, min(limit, 16))
	seen := utils.NewSeenFilter(min(limit, 16))
	queue := []*trieNode{start}

	for len(queue) > 0 && len(ids) < limit {
		node := queue[0]
		queue = queue[1:]

		if node.wordEnd {
			for _, id := range node.ids {
				if !seen.ShouldInclude(id) {
					continue
				}
				ids = append(ids, id)
				if len(ids) == limit {
					return ids
				}
			}
		}
		queue = append(queue, node.children...)
	}
	return ids
}
