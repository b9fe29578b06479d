package draft

import (
	"errors"
	"slices"
	"testing"
)

func TestAddTag_TrimsAndDedupes(t *testing.T) {
	d := New()
	if !d.AddTag("  spanish ") {
		t.Fatalf("expected first add to succeed")
	}
	if d.AddTag("spanish") {
		t.Fatalf("duplicate tag accepted")
	}
	if d.AddTag("   ") {
		t.Fatalf("blank tag accepted")
	}
	d.AddTag("poesía")
	if want := []string{"spanish", "poesía"}; !slices.Equal(d.Tags, want) {
		t.Fatalf("tags=%q, want %q", d.Tags, want)
	}
}

func TestRemoveTag(t *testing.T) {
	d := &Draft{Tags: []string{"a", "b", "c"}}
	if !d.RemoveTag("b") {
		t.Fatalf("expected remove to succeed")
	}
	if d.RemoveTag("b") {
		t.Fatalf("removed missing tag")
	}
	if want := []string{"a", "c"}; !slices.Equal(d.Tags, want) {
		t.Fatalf("tags=%q, want %q", d.Tags, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		want  []error
	}{
		{"ok", Draft{Title: "Oda", Content: "text", Kind: KindPoetry}, nil},
		{"no title", Draft{Title: "  ", Content: "text", Kind: KindGeneral}, []error{ErrEmptyTitle}},
		{"no content", Draft{Title: "Oda", Kind: KindGeneral}, []error{ErrEmptyContent}},
		{"bad kind", Draft{Title: "Oda", Content: "x", Kind: "essay"}, []error{ErrUnknownKind}},
		{"all", Draft{}, []error{ErrEmptyTitle, ErrEmptyContent, ErrUnknownKind}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if len(tt.want) == 0 {
				if err != nil {
					t.Fatalf("err=%v, want nil", err)
				}
				return
			}
			for _, w := range tt.want {
				if !errors.Is(err, w) {
					t.Fatalf("err=%v, want %v", err, w)
				}
			}
		})
	}
}

func TestKinds(t *testing.T) {
	ks := Kinds()
	if len(ks) != 5 || ks[0] != KindPoetry {
		t.Fatalf("kinds=%v", ks)
	}
	if got := KindGeneral.Next(); got != KindPoetry {
		t.Fatalf("general.Next()=%q, want poetry", got)
	}
	if got := KindPoetry.Label(); got != "Poetry" {
		t.Fatalf("label=%q", got)
	}
	if got := KindLiterature.Label(); got != "Literature Discussion" {
		t.Fatalf("label=%q", got)
	}

	k, err := ParseKind(" Cultural ")
	if err != nil || k != KindCultural {
		t.Fatalf("ParseKind=%q, %v", k, err)
	}
	if _, err := ParseKind("essay"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err=%v, want ErrUnknownKind", err)
	}
}

func TestDisplayTitle(t *testing.T) {
	if got := New().DisplayTitle(); got != "Untitled" {
		t.Fatalf("title=%q", got)
	}
	if got := (&Draft{Title: " Oda "}).DisplayTitle(); got != "Oda" {
		t.Fatalf("title=%q", got)
	}
}
