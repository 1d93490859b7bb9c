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
	socialCommunicatorLabel   = "Social Communicator"
	defaultSocialDescription  = "Analyzed from chat patterns"
	chatExtractionMaxTokens   = 2000
	socialAnalysisMaxTokens   = 1000
	socialAnalysisTemperature = 0.3
)

// SocialModels agrupa los modelos de vision y de analisis de texto.
type SocialModels struct {
	Vision   string
	Analysis string
}

// SocialService analiza capturas de WhatsApp: extrae los mensajes y evalua el comportamiento social.
type SocialService struct {
	vision    llm.VisionClient
	llmClient llm.LLMClient
	models    SocialModels
	policy    RecoveryPolicy
	logger    *zap.Logger
}

func NewSocialService(vision llm.VisionClient, llmClient llm.LLMClient, models SocialModels, logger *zap.Logger) *SocialService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SocialService{
		vision:    vision,
		llmClient: llmClient,
		models:    models,
		policy:    PolicyPropagate,
		logger:    logger,
	}
}

// WhatsAppReport es la respuesta de POST /analyze-whatsapp.
type WhatsAppReport struct {
	ChatData        domain.ChatExtraction   `json:"chat_data"`
	SocialBehavior  domain.SocialBehavior   `json:"social_behavior"`
	PersonalityType domain.PersonalityLabel `json:"personality_type"`
}

// AnalyzeWhatsApp extrae el chat de la imagen y luego analiza los mensajes del usuario.
func (s *SocialService) AnalyzeWhatsApp(ctx context.Context, imageBase64 string) (WhatsAppReport, error) {
	if s == nil || s.vision == nil || s.llmClient == nil {
		return WhatsAppReport{}, ErrServiceNotConfigured
	}
	report, err := s.analyzeWhatsApp(ctx, imageBase64)
	return recoverWith(s.policy, s.logger, "analyze_whatsapp", report, err, func(error) WhatsAppReport {
		return WhatsAppReport{}
	})
}

func (s *SocialService) analyzeWhatsApp(ctx context.Context, imageBase64 string) (WhatsAppReport, error) {
	if strings.TrimSpace(imageBase64) == "" {
		return WhatsAppReport{}, ErrEmptyImage
	}

	chat, err := s.ExtractChat(ctx, imageBase64)
	if err != nil {
		return WhatsAppReport{}, err
	}

	behavior, err := s.analyzeBehavior(ctx, chat)
	if err != nil {
		return WhatsAppReport{}, err
	}

	description := strings.TrimSpace(behavior.BehavioralSummary)
	if description == "" {
		description = defaultSocialDescription
	}

	return WhatsAppReport{
		ChatData:       chat,
		SocialBehavior: behavior,
		PersonalityType: domain.PersonalityLabel{
			Type:        socialCommunicatorLabel,
			Description: description,
		},
	}, nil
}

// ExtractChat usa el modelo de vision para separar mensajes del usuario y del otro participante.
func (s *SocialService) ExtractChat(ctx context.Context, imageBase64 string) (domain.ChatExtraction, error) {
	if s == nil || s.vision == nil {
		return domain.ChatExtraction{}, ErrServiceNotConfigured
	}
	raw, err := s.vision.DescribeImage(ctx, llm.VisionRequest{
		Model:       s.models.Vision,
		Instruction: chatExtractionInstruction,
		ImageBase64: imageBase64,
		MaxTokens:   chatExtractionMaxTokens,
	})
	if err != nil {
		return domain.ChatExtraction{}, fmt.Errorf("extract chat: %w", err)
	}

	obj, err := extract.FlatWithKeys(raw, "user_content", "other_content")
	if err != nil {
		return domain.ChatExtraction{}, fmt.Errorf("failed to extract chat data: %w", err)
	}

	var chat domain.ChatExtraction
	if err := extract.Decode(obj, &chat); err != nil {
		return domain.ChatExtraction{}, fmt.Errorf("failed to extract chat data: %w", err)
	}
	if chat.UserContent == nil {
		chat.UserContent = []string{}
	}
	if chat.OtherContent == nil {
		chat.OtherContent = []string{}
	}
	return chat, nil
}

func (s *SocialService) analyzeBehavior(ctx context.Context, chat domain.ChatExtraction) (domain.SocialBehavior, error) {
	raw, err := s.llmClient.Complete(ctx, llm.ChatRequest{
		Model: s.models.Analysis,
		Messages: []llm.Message{
			llm.System(socialSystemPrompt),
			llm.User(buildSocialPrompt(chat.UserContent, chat.OtherContent)),
		},
		Temperature: socialAnalysisTemperature,
		MaxTokens:   socialAnalysisMaxTokens,
	})
	if err != nil {
		return domain.SocialBehavior{}, fmt.Errorf("analyze behavior: llm generate: %w", err)
	}

	obj, err := extract.Flat(raw)
	if err != nil {
		return domain.SocialBehavior{}, fmt.Errorf("failed to analyze behavior: %w", err)
	}

	var parsed struct {
		ResponseEngagement      *float64 `json:"response_engagement"`
		EmotionalExpressiveness *float64 `json:"emotional_expressiveness"`
		ConversationInitiation  *float64 `json:"conversation_initiation"`
		SocialReciprocity       *float64 `json:"social_reciprocity"`
		AttachmentStyle         *float64 `json:"attachment_style"`
		CommunicationClarity    *float64 `json:"communication_clarity"`
		EmpathyDisplay          *float64 `json:"empathy_display"`
		BoundaryManagement      *float64 `json:"boundary_management"`
		Confidence              *float64 `json:"confidence"`
		BehavioralSummary       string   `json:"behavioral_summary"`
	}
	if err := extract.Decode(obj, &parsed); err != nil {
		return domain.SocialBehavior{}, fmt.Errorf("failed to analyze behavior: %w", err)
	}

	behavior := domain.SocialBehavior{BehavioralSummary: strings.TrimSpace(parsed.BehavioralSummary)}
	metrics := []struct {
		name string
		val  *float64
		dst  *int
	}{
		{"response_engagement", parsed.ResponseEngagement, &behavior.ResponseEngagement},
		{"emotional_expressiveness", parsed.EmotionalExpressiveness, &behavior.EmotionalExpressiveness},
		{"conversation_initiation", parsed.ConversationInitiation, &behavior.ConversationInitiation},
		{"social_reciprocity", parsed.SocialReciprocity, &behavior.SocialReciprocity},
		{"attachment_style", parsed.AttachmentStyle, &behavior.AttachmentStyle},
		{"communication_clarity", parsed.CommunicationClarity, &behavior.CommunicationClarity},
		{"empathy_display", parsed.EmpathyDisplay, &behavior.EmpathyDisplay},
		{"boundary_management", parsed.BoundaryManagement, &behavior.BoundaryManagement},
	}
	for _, m := range metrics {
		if m.val == nil {
			return domain.SocialBehavior{}, fmt.Errorf("failed to analyze behavior: %w: %s", ErrMissingField, m.name)
		}
		*m.dst = int(math.Round(*m.val))
	}
	behavior.Confidence = confidenceOrDefault(parsed.Confidence)
	return behavior.Clamp(), nil
}
