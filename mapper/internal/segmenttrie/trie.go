/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package segmenttrie

import (
	"errors"
	"strings"
)

// Sep separates the words of a registry name.
const Sep = "_"

// Trie is a word-aware prefix index over snake_case registry names such as
// "qrl_missing_chunk". Each node represents one word; the wildcard "*"
// matches exactly one word. Lookups return the longest matching prefix, so
// a more specific rule wins over a shorter one.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the prefix as inserted, kept for Explain.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty words, contains invalid characters, or consists only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with a snake_case prefix, e.g.:
//
//	"qrl"
//	"qrl_missing"
//	"can_not_*_html"
//
// A prefix made only of "*" words is rejected.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	words, ok := split(prefix, true)
	if !ok || len(words) == 0 {
		return ErrInvalidPrefix
	}
	allWild := true
	for _, w := range words {
		if w != "*" {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, w := range words {
		child, exists := cur.children[w]
		if !exists {
			child = New[T]()
			cur.children[w] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Len reports how many prefixes carry a value.
func (t *Trie[T]) Len() int {
	if t == nil {
		return 0
	}
	n := 0
	if t.hasVal {
		n++
	}
	for _, c := range t.children {
		n += c.Len()
	}
	return n
}

// Match finds the deepest prefix of name that carries a value and returns
// the value and the prefix as it was inserted. Exact words and "*"
// branches are both explored. Invalid names match nothing.
func (t *Trie[T]) Match(name string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	words, ok := split(name, false)
	if !ok {
		return zero, false, ""
	}

	bestDepth := -1
	var best *Trie[T]
	var walk func(n *Trie[T], depth int)
	walk = func(n *Trie[T], depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth, best = depth, n
		}
		if depth == len(words) {
			return
		}
		if next, ok := n.children[words[depth]]; ok {
			walk(next, depth+1)
		}
		if next, ok := n.children["*"]; ok {
			walk(next, depth+1)
		}
	}
	walk(t, 0)

	if best == nil {
		return zero, false, ""
	}
	return best.val, true, best.pattern
}

// split breaks s into words and validates each one. The empty string is
// an empty, valid word list.
func split(s string, allowWildcard bool) ([]string, bool) {
	if s == "" {
		return []string{}, true
	}
	words := strings.Split(s, Sep)
	for _, w := range words {
		if !validWord(w, allowWildcard) {
			return nil, false
		}
	}
	return words, true
}

// validWord accepts [a-z][a-z0-9]*, and "*" when allowWildcard is set.
func validWord(w string, allowWildcard bool) bool {
	if w == "" {
		return false
	}
	if allowWildcard && w == "*" {
		return true
	}
	if w[0] < 'a' || w[0] > 'z' {
		return false
	}
	for i := 1; i < len(w); i++ {
		c := w[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			continue
		}
		return false
	}
	return true
}
