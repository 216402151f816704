// internal/rank/list.go

// Package rank keeps scored matches ordered for output.
package rank

import "iter"

type node struct {
	next  *node
	text  string
	score int
}

// List is a singly linked sequence of matches in non-increasing score
// order. Among equal scores the most recently inserted match comes first.
// List owns every accepted text; it is not safe for concurrent use, callers
// in pooled mode guard it with their own mutex.
type List struct {
	head *node
	n    int
}

// New returns an empty List.
func New() *List { return &List{} }

// Insert splices the match in front of the first node whose score does not
// exceed it. A score equal to the head's therefore lands at the head, which
// is what yields the most-recent-first tie order.
func (l *List) Insert(text string, score int) {
	l.n++
	nn := &node{text: text, score: score}
	if l.head == nil || l.head.score <= score {
		nn.next = l.head
		l.head = nn
		return
	}
	cur := l.head
	for cur.next != nil && cur.next.score > score {
		cur = cur.next
	}
	nn.next = cur.next
	cur.next = nn
}

// Len reports the number of matches held.
func (l *List) Len() int { return l.n }

// All yields (text, score) from best to worst. The sequence is restartable.
func (l *List) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.text, cur.score) {
				return
			}
		}
	}
}
