package skill

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lowercases and splits", "Swift iOS App!", []string{"swift", "ios", "app"}},
		{"drops stopwords", "use the debugger when in doubt", []string{"debugger", "doubt"}},
		{"keeps duplicates", "ios ios improvements", []string{"ios", "ios", "improvements"}},
		{"splits on punctuation runs", "frontend-design/ui...layout", []string{"frontend", "design", "ui", "layout"}},
		{"keeps alphanumeric runs whole", "ios17 beta2", []string{"ios17", "beta2"}},
		{"empty input", "", []string{}},
		{"stopwords only", "the a an of", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenize_OrderFollowsInput(t *testing.T) {
	got := Tokenize("zebra apple zebra")
	want := []string{"zebra", "apple", "zebra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize order = %v, want %v", got, want)
	}
}
