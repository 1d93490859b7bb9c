package domain

import "testing"

func TestHybridScore(t *testing.T) {
	cases := []struct {
		name    string
		ocean   OceanVector
		mbti    MBTIVector
		lexical LexicalVector
		want    float64
	}{
		{
			name:    "all maxed",
			ocean:   OceanVector{5, 5, 5, 5, 5, 0.9},
			mbti:    MBTIVector{EI: 5, SN: -5, TF: 5, JP: -5},
			lexical: LexicalVector{5, 5, 5, 5, 5, 0.9},
			want:    100,
		},
		{
			name:    "minimum scores and neutral axes",
			ocean:   OceanVector{1, 1, 1, 1, 1, 0.5},
			mbti:    MBTIVector{},
			lexical: LexicalVector{1, 1, 1, 1, 1, 0.5},
			// (20*2 + 50*2 + 20) / 5
			want: 32,
		},
		{
			name:    "direction discarded",
			ocean:   OceanVector{3, 4, 2, 5, 1, 0.8},
			mbti:    MBTIVector{EI: -2, SN: 3, TF: -1, JP: 0},
			lexical: LexicalVector{3, 2, 4, 3, 5, 0.8},
			// ocean 60, mbti (1.5+5)*10 = 65, lexical 68 -> (120+130+68)/5
			want: 63.6,
		},
		{
			name:    "rounded to two decimals",
			ocean:   OceanVector{1, 1, 1, 1, 2, 0},
			mbti:    MBTIVector{EI: 1},
			lexical: LexicalVector{1, 1, 1, 1, 1, 0},
			// ocean 24, mbti 52.5, lexical 20 -> 173/5 = 34.6
			want: 34.6,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := HybridScore(tc.ocean, tc.mbti, tc.lexical)
			if got != tc.want {
				t.Fatalf("expected %.2f, got %.4f", tc.want, got)
			}
			if again := HybridScore(tc.ocean, tc.mbti, tc.lexical); again != got {
				t.Fatalf("expected deterministic score, got %.4f then %.4f", got, again)
			}
		})
	}
}

func TestDeriveMBTIType(t *testing.T) {
	cases := []struct {
		v    MBTIVector
		want string
	}{
		{MBTIVector{EI: 3, SN: 4, TF: 1, JP: -1}, "INFJ"},
		{MBTIVector{EI: -4, SN: -1, TF: -2, JP: 3}, "ESTP"},
		{MBTIVector{EI: 0, SN: 2, TF: 0, JP: 1}, "XNXP"},
	}
	for _, tc := range cases {
		if got := tc.v.DeriveMBTIType(); got != tc.want {
			t.Fatalf("axes %+v: expected %s, got %s", tc.v, tc.want, got)
		}
	}
}

func TestNormalizeMBTIType(t *testing.T) {
	v := MBTIVector{EI: 2, SN: -3, TF: 1, JP: -2}
	if got := v.NormalizeMBTIType(" infp "); got != "INFP" {
		t.Fatalf("expected model type kept uppercased, got %s", got)
	}
	if got := v.NormalizeMBTIType("introvert"); got != "ISFJ" {
		t.Fatalf("expected derived type for garbage, got %s", got)
	}
	if got := v.NormalizeMBTIType(""); got != "ISFJ" {
		t.Fatalf("expected derived type for empty, got %s", got)
	}
}

func TestConfidenceLevel(t *testing.T) {
	cases := map[int]string{5: "low", 49: "low", 50: "medium", 99: "medium", 100: "high", 300: "high"}
	for words, want := range cases {
		if got := ConfidenceLevel(words); got != want {
			t.Fatalf("words=%d: expected %s, got %s", words, want, got)
		}
	}
}

func TestClampHelpers(t *testing.T) {
	if ClampInt(7, 1, 5) != 5 || ClampInt(-2, 1, 5) != 1 || ClampInt(3, 1, 5) != 3 {
		t.Fatalf("unexpected ClampInt behaviour")
	}
	if ClampConfidence(1.4) != 1 || ClampConfidence(-0.3) != 0 || ClampConfidence(0.42) != 0.42 {
		t.Fatalf("unexpected ClampConfidence behaviour")
	}
}
