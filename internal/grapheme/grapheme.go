// Package grapheme wraps uniseg with the few cluster helpers the document
// model and the formatting engine share.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order. Split("") is nil.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text))
	state := -1
	rest := text
	var cluster string
	for rest != "" {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		out = append(out, cluster)
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates clusters.
func Join(clusters []string) string {
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return clusters[0]
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Class buckets clusters for word-wise cursor movement.
type Class uint8

const (
	ClassSpace Class = iota
	ClassPunct
	ClassWord
)

// Classify reports the class of a single cluster. A cluster is space or
// punctuation only if every rune in it is.
func Classify(cluster string) Class {
	if cluster == "" {
		return ClassSpace
	}
	space, punct := true, true
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			space = false
		}
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			punct = false
		}
	}
	switch {
	case space:
		return ClassSpace
	case punct:
		return ClassPunct
	default:
		return ClassWord
	}
}
