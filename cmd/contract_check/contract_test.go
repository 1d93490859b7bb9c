package main

import (
	"strings"
	"testing"

	"psygen-api/internal/domain"
	"psygen-api/internal/service"
)

func validReport(text string) service.PersonalityReport {
	ocean := domain.OceanVector{Openness: 4, Conscientiousness: 3, Extraversion: 2, Agreeableness: 5, Neuroticism: 1, Confidence: 0.8}
	mbti := domain.MBTIVector{EI: 2, SN: 3, TF: -1, JP: 0, Type: "INTX", Confidence: 0.7}
	lexical := domain.LexicalVector{Formality: 3, EmotionalIntensity: 2, Complexity: 4, Certainty: 3, SocialOrientation: 3, Confidence: 0.9}
	wc := service.CountWords(text)
	return service.PersonalityReport{
		Ocean:           ocean,
		MBTI:            mbti,
		Lexical:         lexical,
		HybridScore:     domain.HybridScore(ocean, mbti, lexical),
		PersonalityType: domain.PersonalityLabel{Type: "Quiet Strategist"},
		ConfidenceLevel: domain.ConfidenceLevel(wc),
		WordCount:       wc,
	}
}

func TestCheckPersonalityContractValid(t *testing.T) {
	sc := Scenario{Text: "one two three four five six"}
	if v := checkPersonalityContract(sc, validReport(sc.Text)); len(v) != 0 {
		t.Fatalf("expected no violations, got %v", v)
	}
}

func TestCheckPersonalityContractViolations(t *testing.T) {
	sc := Scenario{Text: "one two three four five six"}
	r := validReport(sc.Text)
	r.Ocean.Openness = 7
	r.MBTI.Type = "ABCD"
	r.Lexical.Confidence = 1.5
	r.ConfidenceLevel = "high"
	r.PersonalityType.Type = ""

	v := checkPersonalityContract(sc, r)
	joined := strings.Join(v, "\n")
	for _, want := range []string{"ocean.openness", "mbti.type", "lexical.confidence", "hybrid_score", "confidence_level", "personality_type"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected violation for %s, got %v", want, v)
		}
	}
}

func TestEIWarning(t *testing.T) {
	r := validReport("a b c d e")
	if w := eiWarning(Scenario{EISign: 1}, r); w != "" {
		t.Fatalf("expected no warning for matching sign, got %q", w)
	}
	if w := eiWarning(Scenario{EISign: -1}, r); w == "" {
		t.Fatalf("expected warning for contradicting sign")
	}
	if w := eiWarning(Scenario{}, r); w != "" {
		t.Fatalf("expected no warning without hint")
	}
}

func TestCheckScoreContract(t *testing.T) {
	sc := ScoreScenario{Input: service.ScoreInput{Category: "suicidal_ideation"}, WantCrisis: true}

	ok := domain.ScoreResult{Score: 3, Crisis: true, Resources: domain.CrisisResources()}
	if v := checkScoreContract(sc, ok); len(v) != 0 {
		t.Fatalf("expected no violations, got %v", v)
	}

	missed := domain.ScoreResult{Score: 1}
	if v := checkScoreContract(sc, missed); len(v) != 1 || v[0] != "se esperaba crisis" {
		t.Fatalf("expected missed crisis violation, got %v", v)
	}

	bad := domain.ScoreResult{Score: 5, Crisis: true}
	if v := checkScoreContract(ScoreScenario{Input: service.ScoreInput{Category: "mood"}}, bad); len(v) != 3 {
		t.Fatalf("expected range, crisis and resources violations, got %v", v)
	}
}
