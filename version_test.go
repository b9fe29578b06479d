package linguista

import "testing"

func TestVersion_EmbeddedIsSemver(t *testing.T) {
	if !ValidSemver(Version()) {
		t.Fatalf("embedded version is not semver: %q", Version())
	}
}

func TestBanner(t *testing.T) {
	if got, want := Banner(), "linguista v"+Version(); got != want {
		t.Fatalf("banner=%q, want %q", got, want)
	}
	if got, want := Tag(), "v"+Version(); got != want {
		t.Fatalf("tag=%q, want %q", got, want)
	}
}

func TestValidSemver(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{in: "0.1.0", want: true},
		{in: " 1.0.0\n", want: true},
		{in: "1.4.0-rc.2", want: true},
		{in: "3.1.4+sha.abc", want: true},
		{in: "v0.1.0", want: false},
		{in: "1.0", want: false},
		{in: "1.02.0", want: false},
		{in: "", want: false},
	}
	for _, tc := range cases {
		if got := ValidSemver(tc.in); got != tc.want {
			t.Fatalf("ValidSemver(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}
