package extract

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestBalancedSkipsProseAndStringBraces(t *testing.T) {
	obj := `{"reasoning": "a {weird} one", "recommendations": ["close } early", "open { late"], "nested": {"a": 1}}`
	input := "Here is my analysis:\n" + obj + "\nHope that helps {really}."

	got, err := Balanced(input)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != obj {
		t.Fatalf("expected %q, got %q", obj, got)
	}
}

func TestBalancedEscapedQuotes(t *testing.T) {
	obj := `{"msg": "she said \"}\" loudly", "n": 2}`
	got, err := Balanced("prefix " + obj)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != obj {
		t.Fatalf("expected %q, got %q", obj, got)
	}
}

func TestBalancedNotFound(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{name: "no brace", input: "the model refused to answer"},
		{name: "empty", input: ""},
		{name: "unterminated", input: `ok {"a": {"b": 1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Balanced(tc.input)
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestFlat(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "first of two",
			input: `thinking... {"a": 1} and later {"b": 2}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "multiline object",
			input: "Answer:\n{\n  \"openness\": 4,\n  \"confidence\": 0.7\n}",
			want:  "{\n  \"openness\": 4,\n  \"confidence\": 0.7\n}",
		},
		{
			name:    "nested object rejected",
			input:   `{"a": {"b": 1}}`,
			wantErr: true,
		},
		{
			name:  "top level after nested",
			input: `{"x": {"y": 1}} then {"a": 2}`,
			want:  `{"a": 2}`,
		},
		{
			name:  "unclosed brace in reasoning",
			input: "Step 1: the set {openness, calm tone ...\n{\"openness\": 4, \"conscientiousness\": 3}",
			want:  `{"openness": 4, "conscientiousness": 3}`,
		},
		{
			name:  "unclosed brace and odd quote in reasoning",
			input: `traits {warm, "steady ... final: {"score": 2}`,
			want:  `{"score": 2}`,
		},
		{
			name:  "closed prose braces match first",
			input: `sets {a} and {b}`,
			want:  `{a}`,
		},
		{
			name:    "no object",
			input:   "nothing here",
			wantErr: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Flat(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("expected ErrNotFound, got %q, %v", got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFlatWithKeys(t *testing.T) {
	input := `Sure! {"note": "x"} {"user_content": ["hola", "que tal"], "other_content": ["bien"]}`
	got, err := FlatWithKeys(input, "user_content", "other_content")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := `{"user_content": ["hola", "que tal"], "other_content": ["bien"]}`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	stray := "I see bubbles {green and white\n" + want
	if got, err := FlatWithKeys(stray, "user_content", "other_content"); err != nil || got != want {
		t.Fatalf("expected chat object after stray brace, got %q, %v", got, err)
	}

	if _, err := FlatWithKeys(`{"other_content": [], "user_content": []}`, "user_content", "other_content"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for wrong key order, got %v", err)
	}
}

func TestDecodeSanitizesRawNewlines(t *testing.T) {
	span := "{\"reasoning\": \"line one\nline two\tend\", \"recommendations\": [\"a\r\nb\"]}"
	var out struct {
		Reasoning       string   `json:"reasoning"`
		Recommendations []string `json:"recommendations"`
	}
	if err := Decode(span, &out); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Reasoning != "line one line two end" {
		t.Fatalf("unexpected reasoning %q", out.Reasoning)
	}
	if len(out.Recommendations) != 1 || out.Recommendations[0] != "a  b" {
		t.Fatalf("unexpected recommendations %#v", out.Recommendations)
	}
}

func TestDecodeKeepsValuesWithoutNewlines(t *testing.T) {
	span := `{"a": "x y", "b": ["p", "q {r}"], "c": {"d": 1.5}}`

	var direct, sanitized map[string]any
	if err := json.Unmarshal([]byte(span), &direct); err != nil {
		t.Fatalf("direct unmarshal: %v", err)
	}
	if err := Decode(span, &sanitized); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(direct, sanitized) {
		t.Fatalf("sanitizing changed content: %#v vs %#v", direct, sanitized)
	}
}

func TestDecodeMalformed(t *testing.T) {
	var out map[string]any
	err := Decode(`{"a": }`, &out)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("malformed must be distinct from not found")
	}
}

func TestThinking(t *testing.T) {
	raw := "Step 1: openness looks high.\nStep 2: calm tone.\n```json\n{\"openness\": 5}\n```"
	got := Thinking(raw)
	want := "Step 1: openness looks high.\nStep 2: calm tone."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	if got := Thinking(`{"openness": 5}`); got != "" {
		t.Fatalf("expected empty thinking when response starts with json, got %q", got)
	}
	if got := Thinking("no json at all"); got != "" {
		t.Fatalf("expected empty thinking without json, got %q", got)
	}
}

func TestStripFences(t *testing.T) {
	got := StripFences("\uFEFF```json\n{\"a\":1}\n```")
	if got != `{"a":1}` {
		t.Fatalf("unexpected cleaned output %q", got)
	}
}

func TestParseFlatCarriesThinking(t *testing.T) {
	res, err := ParseFlat("Reasoning about the text.\n{\"ei\": 2}")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Object != `{"ei": 2}` || res.Thinking != "Reasoning about the text." {
		t.Fatalf("unexpected result %#v", res)
	}
}
