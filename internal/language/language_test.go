package language

import (
	"reflect"
	"testing"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"de", "deu", true},
		{"de", "ger", true},
		{"german", "ger", true},
		{"DE", "German", true},
		{"fr", "fre", true},
		{"fr", "fra", true},
		{"en", "eng", true},
		{"en", "fr", false},
		{"eng", "fra", false},
		{"", "en", false},
		{"en", "", false},
		{"xx", "xx", true},
		{"qaa", "qaa", true},
		{"xx", "yy", false},
	}

	for _, tt := range tests {
		if got := Matches(tt.a, tt.b); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestKnown(t *testing.T) {
	for _, code := range []string{"en", "eng", "german", "GER"} {
		if !Known(code) {
			t.Errorf("Known(%q) = false, want true", code)
		}
	}
	for _, code := range []string{"", "qaa", "klingon"} {
		if Known(code) {
			t.Errorf("Known(%q) = true, want false", code)
		}
	}
}

func TestToISO2(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"eng", "en"},
		{"ger", "de"},
		{"deu", "de"},
		{"japanese", "ja"},
		{"EN", "en"},
		{"en", "en"},
		{"xx", "xx"},
		{"unknownlang", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ToISO2(tt.in); got != tt.want {
			t.Errorf("ToISO2(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"eng", "en"},
		{"fre", "fr"},
		{"French", "fr"},
		{"", "und"},
		{"  ", "und"},
		{"qaa", "qaa"},
	}

	for _, tt := range tests {
		if got := Code(tt.in); got != tt.want {
			t.Errorf("Code(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"en", "English"},
		{"eng", "English"},
		{"ger", "German"},
		{"zho", "Chinese"},
		{"", "Unknown"},
		{"und", "Unknown"},
		{"qaa", "QAA"},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.in); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeList(t *testing.T) {
	got := NormalizeList([]string{"English", "eng", "EN", " fr ", "", "ger"})
	want := []string{"en", "fr", "de"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeList = %v, want %v", got, want)
	}
}

func TestNormalizeListEmpty(t *testing.T) {
	if got := NormalizeList(nil); got != nil {
		t.Errorf("NormalizeList(nil) = %v, want nil", got)
	}
}
