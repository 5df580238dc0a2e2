package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "abc", 8, "abc"},
		{"exact", "abcdefgh", 8, "abcdefgh"},
		{"long", "abcdefghij", 8, "abcdefg…"},
		{"keeps spaces", " a ", 8, " a "},
		{"no limit", "abcdefghij", 0, "abcdefghij"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q, want %q", got, "ab  ")
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Fatalf("padRight long = %q, want unchanged", got)
	}
}

func TestPositionRunes(t *testing.T) {
	if !positionRunes([]rune("-12")) {
		t.Fatalf("positionRunes(-12) = false, want true")
	}
	if positionRunes([]rune("1a")) {
		t.Fatalf("positionRunes(1a) = true, want false")
	}
}

func TestPlural(t *testing.T) {
	if got := plural(1, "node"); got != "1 node" {
		t.Fatalf("plural(1) = %q", got)
	}
	if got := plural(0, "node"); got != "0 nodes" {
		t.Fatalf("plural(0) = %q", got)
	}
}

func TestSingleLine(t *testing.T) {
	if got := singleLine("a\nb\tc"); got != "a b c" {
		t.Fatalf("singleLine = %q, want %q", got, "a b c")
	}
}
