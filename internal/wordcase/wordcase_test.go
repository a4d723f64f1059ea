package wordcase

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		input string
		want  Case
	}{
		{"", Lower},
		{"test", Lower},
		{"çà", Lower},
		{"测试", Lower},
		{"测试test", Lower},
		{"test测试", Lower},
		{"42", Lower},
		{"foo_bar", Lower},

		{"TEST", Upper},
		{"ÇÀ", Upper},
		{"TEST测试", Upper},
		{"测试TEST", Upper},
		{"FOO_BAR", Upper},

		{"Test", Sentence},
		{"Çà", Sentence},
		{"X测试test", Sentence},
		{"I", Sentence},
		{"Å", Sentence},

		{"TESt", Mixed},
		{"tEST", Mixed},
		{"çÀ", Mixed},
		{"x测试Test", Mixed},
		{"iPhone", Mixed},
		{"SpOnGeBoB", Mixed},
	}
	for _, tt := range tests {
		got := Detect(tt.input)
		if got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		input string
		c     Case
		want  string
	}{
		{"", Lower, ""},
		{"tEsT", Lower, "test"},
		{"À", Lower, "à"},
		{"测试", Lower, "测试"},

		{"", Upper, ""},
		{"tEsT", Upper, "TEST"},
		{"à", Upper, "À"},
		{"测试", Upper, "测试"},

		{"", Sentence, ""},
		{"tEsT", Sentence, "Test"},
		{"âgé", Sentence, "Âgé"},
		{"测试", Sentence, "测试"},

		{"", Mixed, ""},
		{"tEsT", Mixed, "tEsT"},
		{"âgé", Mixed, "âgé"},
		{"测试", Mixed, "测试"},
	}
	for _, tt := range tests {
		got := Apply(tt.input, tt.c)
		if got != tt.want {
			t.Errorf("Apply(%q, %v) = %q, want %q", tt.input, tt.c, got, tt.want)
		}
	}
}

// A decomposed letter and its combining mark must be sentence-cased as one
// grapheme cluster.
func TestApplySentenceDecomposed(t *testing.T) {
	got := Apply("áge", Sentence)
	if got != "Áge" {
		t.Errorf("Apply(%q, Sentence) = %q, want %q", "áge", got, "Áge")
	}
}
