package domain

import "strings"

// SeverityBand ordena los resultados de la evaluacion de depresion.
type SeverityBand int

const (
	SeverityMinimal SeverityBand = iota
	SeverityMild
	SeverityModerate
	SeverityModeratelySevere
	SeveritySevere
)

// Severity clasifica un total 0-30. Los limites superiores son inclusivos.
func Severity(total int) SeverityBand {
	switch {
	case total <= 5:
		return SeverityMinimal
	case total <= 10:
		return SeverityMild
	case total <= 15:
		return SeverityModerate
	case total <= 20:
		return SeverityModeratelySevere
	default:
		return SeveritySevere
	}
}

// Label es el nombre que se devuelve al cliente.
func (b SeverityBand) Label() string {
	switch b {
	case SeverityMinimal:
		return "Minimal"
	case SeverityMild:
		return "Mild"
	case SeverityModerate:
		return "Moderate"
	case SeverityModeratelySevere:
		return "Moderately Severe"
	default:
		return "Severe"
	}
}

// Slug es la forma que se usa dentro de los prompts.
func (b SeverityBand) Slug() string {
	return strings.ReplaceAll(strings.ToLower(b.Label()), " ", "_")
}

func (b SeverityBand) String() string { return b.Label() }

const (
	ScoreMin = 0
	ScoreMax = 3

	// CrisisCategory es la categoria de pregunta que puede levantar el flag de crisis.
	CrisisCategory = "suicidal ideation"
	crisisMinScore = 2
)

// ScoreResult es la puntuacion 0-3 de una respuesta individual.
type ScoreResult struct {
	Score     int              `json:"score"`
	Reasoning string           `json:"reasoning"`
	Crisis    bool             `json:"crisis"`
	Resources []CrisisResource `json:"resources,omitempty"`
}

// NormalizeCategory unifica "Suicidal_Ideation", "suicidal-ideation" y "suicidal ideation".
func NormalizeCategory(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	c = strings.NewReplacer("_", " ", "-", " ").Replace(c)
	return strings.Join(strings.Fields(c), " ")
}

// IsCrisis es true solo para ideacion suicida con puntaje >= 2.
func IsCrisis(category string, score int) bool {
	return NormalizeCategory(category) == CrisisCategory && score >= crisisMinScore
}

// DepressionAssessment es el total acumulado del cuestionario y las respuestas libres.
type DepressionAssessment struct {
	TotalScore int      `json:"total_score"`
	Responses  []string `json:"responses"`
}

// DepressionReport es el analisis agregado que recibe el cliente.
type DepressionReport struct {
	Level            string   `json:"level"`
	Reasoning        string   `json:"reasoning,omitempty"`
	DetailedAnalysis string   `json:"detailed_analysis,omitempty"`
	Message          string   `json:"message"`
	Recommendations  []string `json:"recommendations"`
}
