package catalog

import (
	"strings"

	"docvault/internal/model"
)

// TagSet is an ordered collection of distinct, case-sensitive tags.
// It is a value type: Add and Remove return a new set and never modify the receiver.
type TagSet struct {
	tags []string
}

// NewTagSet builds a set by adding each tag in order, so blanks and duplicates are dropped.
func NewTagSet(tags ...string) TagSet {
	var s TagSet
	for _, t := range tags {
		s = s.Add(t)
	}
	return s
}

// Add returns a set with tag appended. The tag is trimmed first; an empty tag or one
// already present (exact match) leaves the set unchanged.
func (s TagSet) Add(tag string) TagSet {
	tag = strings.TrimSpace(tag)
	if tag == "" || s.Contains(tag) {
		return s
	}
	out := make([]string, len(s.tags), len(s.tags)+1)
	copy(out, s.tags)
	return TagSet{tags: append(out, tag)}
}

// Remove returns a set without tag. Removing a missing tag is a no-op.
func (s TagSet) Remove(tag string) TagSet {
	for i, t := range s.tags {
		if t != tag {
			continue
		}
		out := make([]string, 0, len(s.tags)-1)
		out = append(out, s.tags[:i]...)
		return TagSet{tags: append(out, s.tags[i+1:]...)}
	}
	return s
}

func (s TagSet) Contains(tag string) bool {
	for _, t := range s.tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (s TagSet) Len() int { return len(s.tags) }

// Tags returns the tags in insertion order.
func (s TagSet) Tags() []string {
	out := make([]string, len(s.tags))
	copy(out, s.tags)
	return out
}

// Records renders the set in the wire shape. The result is never nil.
func (s TagSet) Records() []model.Tag {
	out := make([]model.Tag, 0, len(s.tags))
	for _, t := range s.tags {
		out = append(out, model.Tag{Name: t})
	}
	return out
}
