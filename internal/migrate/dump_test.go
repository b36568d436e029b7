package migrate

import (
	"testing"

	"github.com/nvinuesa/opmigrate/internal/model"
)

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Plain", in: "My Login", want: "My Login"},
		{name: "Punctuation stripped", in: "acme.com (work)", want: "acmecom work"},
		{name: "Slashes stripped", in: "../../etc/passwd", want: "etcpasswd"},
		{name: "Trailing spaces trimmed", in: "Site!  ", want: "Site"},
		{name: "Unicode letters kept", in: "Büro Köln", want: "Büro Köln"},
		{name: "Only punctuation", in: "!!!", want: ""},
		{name: "Empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeFileName(tt.in); got != tt.want {
				t.Errorf("SafeFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDumpFileName(t *testing.T) {
	t.Run("Uses sanitized name", func(t *testing.T) {
		item := &model.Item{ID: "id-1", Name: "Site 1!"}
		if got := dumpFileName(item); got != "Site 1" {
			t.Errorf("dumpFileName() = %q, want %q", got, "Site 1")
		}
	})

	t.Run("Falls back to item ID", func(t *testing.T) {
		item := &model.Item{ID: "id-1", Name: "///"}
		if got := dumpFileName(item); got != "id-1" {
			t.Errorf("dumpFileName() = %q, want %q", got, "id-1")
		}
	})

	t.Run("Never empty", func(t *testing.T) {
		if got := dumpFileName(&model.Item{}); got == "" {
			t.Error("dumpFileName() = empty string")
		}
	})
}
