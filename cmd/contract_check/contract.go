package main

import (
	"fmt"
	"math"

	"psygen-api/internal/domain"
	"psygen-api/internal/service"
)

// Scenario es un texto de muestra con una pista opcional sobre el eje E/I esperado.
type Scenario struct {
	Name string
	Text string
	// EISign: -1 extrovertido, +1 introvertido, 0 sin expectativa.
	EISign int
}

// ScoreScenario es una respuesta de cuestionario con su flag de crisis esperado.
type ScoreScenario struct {
	Name       string
	Input      service.ScoreInput
	WantCrisis bool
}

// checkPersonalityContract devuelve las violaciones estructurales del reporte.
// Los campos de prosa (thinking, descripcion) se tratan como opacos.
func checkPersonalityContract(sc Scenario, r service.PersonalityReport) []string {
	var v []string

	for name, score := range map[string]int{
		"ocean.openness":          r.Ocean.Openness,
		"ocean.conscientiousness": r.Ocean.Conscientiousness,
		"ocean.extraversion":      r.Ocean.Extraversion,
		"ocean.agreeableness":     r.Ocean.Agreeableness,
		"ocean.neuroticism":       r.Ocean.Neuroticism,
		"lexical.formality":       r.Lexical.Formality,
		"lexical.emotional":       r.Lexical.EmotionalIntensity,
		"lexical.complexity":      r.Lexical.Complexity,
		"lexical.certainty":       r.Lexical.Certainty,
		"lexical.social":          r.Lexical.SocialOrientation,
	} {
		if score < 1 || score > 5 {
			v = append(v, fmt.Sprintf("%s fuera de rango: %d", name, score))
		}
	}
	for name, axis := range map[string]int{
		"mbti.ei": r.MBTI.EI,
		"mbti.sn": r.MBTI.SN,
		"mbti.tf": r.MBTI.TF,
		"mbti.jp": r.MBTI.JP,
	} {
		if axis < -5 || axis > 5 {
			v = append(v, fmt.Sprintf("%s fuera de rango: %d", name, axis))
		}
	}
	if !domain.ValidMBTIType(r.MBTI.Type) {
		v = append(v, fmt.Sprintf("mbti.type invalido: %q", r.MBTI.Type))
	}
	for name, c := range map[string]float64{
		"ocean.confidence":   r.Ocean.Confidence,
		"mbti.confidence":    r.MBTI.Confidence,
		"lexical.confidence": r.Lexical.Confidence,
	} {
		if c < 0 || c > 1 {
			v = append(v, fmt.Sprintf("%s fuera de rango: %.2f", name, c))
		}
	}

	want := domain.HybridScore(r.Ocean, r.MBTI, r.Lexical)
	if r.HybridScore < 0 || r.HybridScore > 100 || math.Abs(r.HybridScore-want) > 0.01 {
		v = append(v, fmt.Sprintf("hybrid_score inconsistente: %.2f (esperado %.2f)", r.HybridScore, want))
	}
	if r.WordCount != service.CountWords(sc.Text) {
		v = append(v, fmt.Sprintf("word_count %d != %d", r.WordCount, service.CountWords(sc.Text)))
	}
	if r.ConfidenceLevel != domain.ConfidenceLevel(r.WordCount) {
		v = append(v, fmt.Sprintf("confidence_level %q no corresponde a %d palabras", r.ConfidenceLevel, r.WordCount))
	}
	if r.PersonalityType.Type == "" {
		v = append(v, "personality_type.type vacio")
	}
	return v
}

// eiWarning avisa si el eje E/I contradice la pista del escenario. No cuenta como violacion.
func eiWarning(sc Scenario, r service.PersonalityReport) string {
	if sc.EISign == 0 || r.MBTI.EI == 0 {
		return ""
	}
	if (sc.EISign > 0) != (r.MBTI.EI > 0) {
		return fmt.Sprintf("eje E/I %d contradice la pista del escenario", r.MBTI.EI)
	}
	return ""
}

func checkScoreContract(sc ScoreScenario, r domain.ScoreResult) []string {
	var v []string
	if r.Score < domain.ScoreMin || r.Score > domain.ScoreMax {
		v = append(v, fmt.Sprintf("score fuera de rango: %d", r.Score))
	}
	if r.Crisis != domain.IsCrisis(sc.Input.Category, r.Score) {
		v = append(v, "crisis no corresponde a categoria y score")
	}
	if r.Crisis && len(r.Resources) == 0 {
		v = append(v, "crisis sin recursos de ayuda")
	}
	if sc.WantCrisis && !r.Crisis {
		v = append(v, "se esperaba crisis")
	}
	return v
}
