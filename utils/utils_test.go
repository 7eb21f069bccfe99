package utils

import (
	"regexp"
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple two words", "Best Price", "best-price"},
		{"already a slug", "best-price", "best-price"},
		{"accented spanish", "Cerca del Metro Ñuñoa", "cerca-del-metro-nunoa"},
		{"region name", "Valparaíso", "valparaiso"},
		{"punctuation runs", "Casas -- en, Venta!!", "casas-en-venta"},
		{"leading and trailing junk", "  ¡Oportunidades!  ", "oportunidades"},
		{"digits kept", "Top 10 Parcelas 2026", "top-10-parcelas-2026"},
		{"empty", "", ""},
		{"only symbols", "$$$", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateSlug(tt.input); got != tt.want {
				t.Errorf("GenerateSlug(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Slugs must be idempotent and contain only lowercase alphanumerics with
// internal hyphens, for both algorithms.
func TestSlugProperties(t *testing.T) {
	valid := regexp.MustCompile(`^$|^[a-z0-9]+(-[a-z0-9]+)*$`)

	inputs := []string{
		"Best Price", "Mejores Precios", "Ñuble & O'Higgins",
		"--weird--input--", "MiXeD CaSe 42", "   ", "a", "1 + 1 = 2",
		"Departamentos céntricos, Biobío",
	}

	for _, fn := range []struct {
		name string
		f    func(string) string
	}{
		{"GenerateSlug", GenerateSlug},
		{"NormalizeSlug", NormalizeSlug},
	} {
		for _, in := range inputs {
			once := fn.f(in)
			twice := fn.f(once)
			if once != twice {
				t.Errorf("%s not idempotent for %q: %q != %q", fn.name, in, once, twice)
			}
			if !valid.MatchString(once) {
				t.Errorf("%s(%q) = %q contains disallowed characters", fn.name, in, once)
			}
		}
	}
}

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Best Price", "best-price"},
		{"Casas!! en   Venta", "casas-en-venta"},
		{"ya-con-guiones", "ya-con-guiones"},
		{"--bordes--", "bordes"},
		// Unlike GenerateSlug, accented letters are stripped, not folded.
		{"Ñuñoa", "uoa"},
	}

	for _, tt := range tests {
		if got := NormalizeSlug(tt.input); got != tt.want {
			t.Errorf("NormalizeSlug(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseIntDefault(t *testing.T) {
	tests := []struct {
		v    string
		def  int
		want int
	}{
		{"", 10, 10},
		{"5", 10, 5},
		{"abc", 10, 10},
		{"-3", 10, -3},
		{"3.5", 10, 10},
	}

	for _, tt := range tests {
		if got := ParseIntDefault(tt.v, tt.def); got != tt.want {
			t.Errorf("ParseIntDefault(%q, %d) = %d, want %d", tt.v, tt.def, got, tt.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 25, 1},
		{5, 1, 5},
		{7, 0, 0},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.perPage); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
		}
	}
}

func TestStringsToObjectIDs(t *testing.T) {
	ids, err := StringsToObjectIDs([]string{
		"64a7b2f4e13f4a2d9c8b4567",
		"64a7b2f4e13f4a2d9c8b4568",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("got %d ids, want 2", len(ids))
	}
	if ids[0].Hex() != "64a7b2f4e13f4a2d9c8b4567" {
		t.Errorf("round trip mismatch: %s", ids[0].Hex())
	}

	if _, err := StringsToObjectIDs([]string{"not-an-id"}); err == nil {
		t.Error("expected error for malformed id")
	}
}
