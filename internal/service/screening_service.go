package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"psygen-api/internal/domain"
	"psygen-api/internal/extract"
	"psygen-api/internal/llm"
)

const (
	defaultResponseScore = 1

	defaultDepressionMessage  = "You're taking an important step by checking in with yourself."
	fallbackDepressionMessage = "You're taking an important step by checking in with yourself. That takes courage."
)

var defaultRecommendations = []string{
	"Practice deep breathing for 5 minutes daily",
	"Reach out to a friend or family member",
	"Maintain a regular sleep schedule",
}

// ScoreInput es una respuesta libre a una pregunta del cuestionario.
type ScoreInput struct {
	Response string `json:"response"`
	Question string `json:"question"`
	Category string `json:"category"`
}

// ScreeningService puntua respuestas y genera el analisis agregado de depresion.
// Ambas operaciones degradan a un default seguro en vez de fallar.
type ScreeningService struct {
	llmClient llm.LLMClient
	model     string
	policy    RecoveryPolicy
	logger    *zap.Logger
}

func NewScreeningService(llmClient llm.LLMClient, model string, logger *zap.Logger) *ScreeningService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScreeningService{
		llmClient: llmClient,
		model:     model,
		policy:    PolicyDegrade,
		logger:    logger,
	}
}

// ScoreResponse puntua una respuesta 0-3. El flag de crisis se calcula aca, no lo decide el modelo.
// Sin cliente configurado devuelve ErrServiceNotConfigured en vez de degradar.
func (s *ScreeningService) ScoreResponse(ctx context.Context, in ScoreInput) (domain.ScoreResult, error) {
	if s == nil || s.llmClient == nil {
		return domain.ScoreResult{}, ErrServiceNotConfigured
	}
	result, err := s.scoreResponse(ctx, in)
	return recoverWith(s.policy, s.logger, "score_response", result, err, func(error) domain.ScoreResult {
		return domain.ScoreResult{Score: defaultResponseScore, Reasoning: "Error in scoring"}
	})
}

func (s *ScreeningService) scoreResponse(ctx context.Context, in ScoreInput) (domain.ScoreResult, error) {
	raw, err := s.llmClient.Complete(ctx, llm.ChatRequest{
		Model: s.model,
		Messages: []llm.Message{
			llm.System(scoreSystemPrompt),
			llm.User(buildScorePrompt(in)),
		},
		Temperature: 0.2,
		MaxTokens:   2000,
	})
	if err != nil {
		return domain.ScoreResult{}, fmt.Errorf("score response: llm generate: %w", err)
	}

	obj, err := extract.Flat(raw)
	if err != nil {
		s.logger.Warn("score response without json, using default score")
		return domain.ScoreResult{Score: defaultResponseScore, Reasoning: "Default score"}, nil
	}

	var parsed struct {
		Score     *float64 `json:"score"`
		Reasoning string   `json:"reasoning"`
	}
	if err := extract.Decode(obj, &parsed); err != nil {
		return domain.ScoreResult{}, fmt.Errorf("score response: %w", err)
	}

	score := defaultResponseScore
	if parsed.Score != nil {
		score = domain.ClampInt(int(math.Round(*parsed.Score)), domain.ScoreMin, domain.ScoreMax)
	}

	result := domain.ScoreResult{
		Score:     score,
		Reasoning: strings.TrimSpace(parsed.Reasoning),
		Crisis:    domain.IsCrisis(in.Category, score),
	}
	if result.Crisis {
		result.Resources = domain.CrisisResources()
		s.logger.Warn("crisis flag raised", zap.String("category", in.Category), zap.Int("score", score))
	}
	return result, nil
}

// AnalyzeDepression clasifica el total en una banda y pide al modelo mensaje y recomendaciones.
func (s *ScreeningService) AnalyzeDepression(ctx context.Context, a domain.DepressionAssessment) (domain.DepressionReport, error) {
	if s == nil || s.llmClient == nil {
		return domain.DepressionReport{}, ErrServiceNotConfigured
	}
	band := domain.Severity(a.TotalScore)
	report, err := s.analyzeDepression(ctx, a, band)
	return recoverWith(s.policy, s.logger, "analyze_depression", report, err, func(error) domain.DepressionReport {
		return FallbackDepressionReport(a.TotalScore)
	})
}

func (s *ScreeningService) analyzeDepression(ctx context.Context, a domain.DepressionAssessment, band domain.SeverityBand) (domain.DepressionReport, error) {
	raw, err := s.llmClient.Complete(ctx, llm.ChatRequest{
		Model: s.model,
		Messages: []llm.Message{
			llm.System(depressionSystemPrompt),
			llm.User(buildDepressionPrompt(a, band)),
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return domain.DepressionReport{}, fmt.Errorf("analyze depression: llm generate: %w", err)
	}

	obj, err := extract.Balanced(raw)
	if err != nil {
		return domain.DepressionReport{}, fmt.Errorf("analyze depression: %w", err)
	}

	var parsed struct {
		Reasoning        string    `json:"reasoning"`
		DetailedAnalysis string    `json:"detailed_analysis"`
		Message          *string   `json:"message"`
		Recommendations  *[]string `json:"recommendations"`
	}
	if err := extract.Decode(obj, &parsed); err != nil {
		return domain.DepressionReport{}, fmt.Errorf("analyze depression: %w", err)
	}

	s.logger.Debug("depression analysis parsed", zap.String("level", band.Label()))

	report := domain.DepressionReport{
		Level:            band.Label(),
		Reasoning:        parsed.Reasoning,
		DetailedAnalysis: parsed.DetailedAnalysis,
		Message:          defaultDepressionMessage,
		Recommendations:  append([]string(nil), defaultRecommendations...),
	}
	if parsed.Message != nil {
		report.Message = *parsed.Message
	}
	if parsed.Recommendations != nil {
		report.Recommendations = *parsed.Recommendations
	}
	return report, nil
}

// FallbackDepressionReport es la respuesta generica cuando el analisis no se pudo completar.
// La ultima recomendacion depende de si el total supera la banda moderada.
func FallbackDepressionReport(total int) domain.DepressionReport {
	last := "Practice self-compassion - be kind to yourself"
	if total > 15 {
		last = "Consider speaking with a mental health professional"
	}
	return domain.DepressionReport{
		Level:   domain.Severity(total).Label(),
		Message: fallbackDepressionMessage,
		Recommendations: []string{
			"Try to maintain a regular sleep schedule - aim for 7-8 hours",
			"Spend 10-15 minutes outside in natural light each day",
			"Connect with someone you trust, even if just for a brief chat",
			"Engage in one activity you used to enjoy, even if you don't feel like it",
			last,
		},
	}
}
