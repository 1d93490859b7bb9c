package domain

import (
	"math"
	"regexp"
	"strings"
)

// OceanVector son los rasgos Big Five en escala 1-5.
type OceanVector struct {
	Openness          int     `json:"openness"`
	Conscientiousness int     `json:"conscientiousness"`
	Extraversion      int     `json:"extraversion"`
	Agreeableness     int     `json:"agreeableness"`
	Neuroticism       int     `json:"neuroticism"`
	Confidence        float64 `json:"confidence"`
}

func (v OceanVector) scores() []int {
	return []int{v.Openness, v.Conscientiousness, v.Extraversion, v.Agreeableness, v.Neuroticism}
}

// MBTIVector guarda los cuatro ejes en -5..5. Negativo es E/S/T/J, positivo I/N/F/P.
type MBTIVector struct {
	EI         int     `json:"ei"`
	SN         int     `json:"sn"`
	TF         int     `json:"tf"`
	JP         int     `json:"jp"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

var mbtiTypeRe = regexp.MustCompile(`^[EIX][SNX][TFX][JPX]$`)

// ValidMBTIType reporta si t es un codigo de cuatro letras aceptable.
func ValidMBTIType(t string) bool {
	return mbtiTypeRe.MatchString(t)
}

// DeriveMBTIType arma el tipo a partir del signo de cada eje. Un eje en cero queda como X.
func (v MBTIVector) DeriveMBTIType() string {
	letter := func(axis int, neg, pos byte) byte {
		switch {
		case axis < 0:
			return neg
		case axis > 0:
			return pos
		default:
			return 'X'
		}
	}
	return string([]byte{
		letter(v.EI, 'E', 'I'),
		letter(v.SN, 'S', 'N'),
		letter(v.TF, 'T', 'F'),
		letter(v.JP, 'J', 'P'),
	})
}

// NormalizeMBTIType devuelve t en mayusculas si es valido, o el tipo derivado de los ejes.
func (v MBTIVector) NormalizeMBTIType(t string) string {
	t = strings.ToUpper(strings.TrimSpace(t))
	if ValidMBTIType(t) {
		return t
	}
	return v.DeriveMBTIType()
}

// LexicalVector describe el estilo del texto en escala 1-5.
type LexicalVector struct {
	Formality          int     `json:"formality"`
	EmotionalIntensity int     `json:"emotional_intensity"`
	Complexity         int     `json:"complexity"`
	Certainty          int     `json:"certainty"`
	SocialOrientation  int     `json:"social_orientation"`
	Confidence         float64 `json:"confidence"`
}

func (v LexicalVector) scores() []int {
	return []int{v.Formality, v.EmotionalIntensity, v.Complexity, v.Certainty, v.SocialOrientation}
}

// PersonalityLabel es la etiqueta corta que devuelve la clasificacion final.
type PersonalityLabel struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// DefaultPersonalityLabel se usa cuando el clasificador no devuelve JSON.
var DefaultPersonalityLabel = PersonalityLabel{
	Type:        "Unique Individual",
	Description: "Complex personality profile",
}

// HybridScore combina los tres vectores en un puntaje 0-100.
// Pesos fijos 2:2:1 (OCEAN, MBTI, lexico), redondeado a dos decimales.
func HybridScore(ocean OceanVector, mbti MBTIVector, lexical LexicalVector) float64 {
	oceanAvg := mean(ocean.scores()) * 20

	// Solo importa la magnitud de cada eje; el offset hace que magnitud 0 valga 50.
	mbtiAvg := mean([]int{abs(mbti.EI), abs(mbti.SN), abs(mbti.TF), abs(mbti.JP)})
	mbtiNormalized := (mbtiAvg + 5) * 10

	lexicalAvg := mean(lexical.scores()) * 20

	score := (oceanAvg*2 + mbtiNormalized*2 + lexicalAvg) / 5
	return math.Round(score*100) / 100
}

// ConfidenceLevel traduce la cantidad de palabras analizadas a low/medium/high.
func ConfidenceLevel(wordCount int) string {
	switch {
	case wordCount < 50:
		return "low"
	case wordCount < 100:
		return "medium"
	default:
		return "high"
	}
}

// ClampInt acota v al rango [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampConfidence acota una confianza a [0, 1].
func ClampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
