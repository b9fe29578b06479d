// Package draft models a community post being composed: title, Markdown
// body, tags and post kind, stored as Markdown with TOML front matter.
package draft

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrEmptyTitle   = errors.New("draft has no title")
	ErrEmptyContent = errors.New("draft has no content")
	ErrUnknownKind  = errors.New("unknown post kind")
)

// Kind is the post category shown in the community feed.
type Kind string

const (
	KindPoetry     Kind = "poetry"
	KindLiterature Kind = "literature"
	KindResource   Kind = "resource"
	KindCultural   Kind = "cultural"
	KindGeneral    Kind = "general"
)

var kinds = []struct {
	kind  Kind
	label string
}{
	{KindPoetry, "Poetry"},
	{KindLiterature, "Literature Discussion"},
	{KindResource, "Language Resource"},
	{KindCultural, "Cultural Insight"},
	{KindGeneral, "General Discussion"},
}

// Kinds returns every kind in menu order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	for i, k := range kinds {
		out[i] = k.kind
	}
	return out
}

func (k Kind) Valid() bool {
	return k.index() >= 0
}

func (k Kind) Label() string {
	if i := k.index(); i >= 0 {
		return kinds[i].label
	}
	return string(k)
}

// Next cycles to the following kind in menu order.
func (k Kind) Next() Kind {
	return kinds[(k.index()+1)%len(kinds)].kind
}

func (k Kind) index() int {
	for i, e := range kinds {
		if e.kind == k {
			return i
		}
	}
	return -1
}

// ParseKind accepts a kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Draft is a post under composition.
type Draft struct {
	Title   string   `toml:"title"`
	Kind    Kind     `toml:"kind"`
	Tags    []string `toml:"tags,omitempty"`
	Content string   `toml:"-"`
}

// New returns an empty poetry draft.
func New() *Draft {
	return &Draft{Kind: KindPoetry}
}

// AddTag trims tag and appends it. Empty and already present tags are
// rejected.
func (d *Draft) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || slices.Contains(d.Tags, tag) {
		return false
	}
	d.Tags = append(d.Tags, tag)
	return true
}

func (d *Draft) RemoveTag(tag string) bool {
	i := slices.Index(d.Tags, tag)
	if i < 0 {
		return false
	}
	d.Tags = slices.Delete(d.Tags, i, i+1)
	return true
}

// Validate reports whether the draft can be published.
func (d *Draft) Validate() error {
	var errs []error
	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, ErrEmptyTitle)
	}
	if strings.TrimSpace(d.Content) == "" {
		errs = append(errs, ErrEmptyContent)
	}
	if !d.Kind.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind))
	}
	return errors.Join(errs...)
}

// DisplayTitle is the title or "Untitled".
func (d *Draft) DisplayTitle() string {
	if t := strings.TrimSpace(d.Title); t != "" {
		return t
	}
	return "Untitled"
}
