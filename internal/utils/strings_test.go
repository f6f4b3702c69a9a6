package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation stripped", "Go: The Good Parts!", "go-the-good-parts"},
		{"collapsed whitespace", "  a   lot \t of   space  ", "a-lot-of-space"},
		{"already slug", "already-a-slug", "already-a-slug"},
		{"hyphens kept", "Well-Known Gin Tricks", "well-known-gin-tricks"},
		{"underscores stripped", "snake_case_title", "snakecasetitle"},
		{"unicode dropped", "café au lait", "caf-au-lait"},
		{"empty", "", ""},
		{"only punctuation", "?!...", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	if Slugify("Some Title") != Slugify("Some Title") {
		t.Error("Slugify() is not deterministic")
	}
}

func TestSearchRegex(t *testing.T) {
	tests := []struct {
		name string
		term string
		want string
	}{
		{"plain", "golang", "golang"},
		{"trimmed", "  golang ", "golang"},
		{"metacharacters escaped", "c++ (basics)", `c\+\+ \(basics\)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SearchRegex(tt.term); got != tt.want {
				t.Errorf("SearchRegex(%q) = %q, want %q", tt.term, got, tt.want)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("TruncateString() = %q, want short", got)
	}
	if got := TruncateString("longer string", 6); got != "longer..." {
		t.Errorf("TruncateString() = %q, want longer...", got)
	}
}
