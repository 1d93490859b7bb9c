package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"psygen-api/internal/domain"
	"psygen-api/internal/extract"
	"psygen-api/internal/llm"
)

const (
	MinWords = 5
	MaxWords = 300

	defaultConfidence = 0.5
)

// ErrMissingField indica que el JSON del modelo no trae un campo obligatorio.
var ErrMissingField = errors.New("missing field in model output")

// Models agrupa los identificadores de modelo usados por los servicios de texto.
type Models struct {
	Analysis string
	Refine   string
}

// PersonalityService corre los tres analisis de rasgos y arma el reporte.
type PersonalityService struct {
	llmClient llm.LLMClient
	models    Models
	logger    *zap.Logger
}

func NewPersonalityService(llmClient llm.LLMClient, models Models, logger *zap.Logger) *PersonalityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PersonalityService{
		llmClient: llmClient,
		models:    models,
		logger:    logger,
	}
}

// PersonalityReport es la respuesta de POST /analyze.
type PersonalityReport struct {
	Ocean           domain.OceanVector      `json:"ocean"`
	MBTI            domain.MBTIVector       `json:"mbti"`
	Lexical         domain.LexicalVector    `json:"lexical"`
	HybridScore     float64                 `json:"hybrid_score"`
	PersonalityType domain.PersonalityLabel `json:"personality_type"`
	ConfidenceLevel string                  `json:"confidence_level"`
	WordCount       int                     `json:"word_count"`
	Thinking        ThinkingReport          `json:"thinking"`
}

// ThinkingReport es el razonamiento de cada analisis reescrito en lenguaje llano.
type ThinkingReport struct {
	Ocean   string `json:"ocean"`
	MBTI    string `json:"mbti"`
	Lexical string `json:"lexical"`
}

// CountWords cuenta palabras separadas por espacios.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ValidateText exige entre MinWords y MaxWords palabras.
func ValidateText(text string) (int, error) {
	wc := CountWords(text)
	if wc < MinWords {
		return wc, &ValidationError{Message: fmt.Sprintf("Text must contain at least %d words", MinWords)}
	}
	if wc > MaxWords {
		return wc, &ValidationError{Message: fmt.Sprintf("Text must not exceed %d words", MaxWords)}
	}
	return wc, nil
}

// Analyze valida el texto, corre OCEAN/MBTI/lexico en paralelo, refina el razonamiento y clasifica.
// Si cualquiera de las ramas falla, falla todo el request.
func (s *PersonalityService) Analyze(ctx context.Context, text string) (PersonalityReport, error) {
	if s == nil || s.llmClient == nil {
		return PersonalityReport{}, ErrServiceNotConfigured
	}

	text = strings.TrimSpace(text)
	wordCount, err := ValidateText(text)
	if err != nil {
		return PersonalityReport{}, err
	}

	var (
		ocean   domain.OceanVector
		mbti    domain.MBTIVector
		lexical domain.LexicalVector

		oceanRaw, mbtiRaw, lexRaw string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ocean, oceanRaw, err = s.analyzeOcean(gctx, text)
		return err
	})
	g.Go(func() error {
		var err error
		mbti, mbtiRaw, err = s.analyzeMBTI(gctx, text)
		return err
	})
	g.Go(func() error {
		var err error
		lexical, lexRaw, err = s.analyzeLexical(gctx, text)
		return err
	})
	if err := g.Wait(); err != nil {
		return PersonalityReport{}, err
	}

	var thinking ThinkingReport
	rg, rctx := errgroup.WithContext(ctx)
	rg.Go(func() error {
		var err error
		thinking.Ocean, err = s.refineThinking(rctx, oceanRaw)
		return err
	})
	rg.Go(func() error {
		var err error
		thinking.MBTI, err = s.refineThinking(rctx, mbtiRaw)
		return err
	})
	rg.Go(func() error {
		var err error
		thinking.Lexical, err = s.refineThinking(rctx, lexRaw)
		return err
	})
	if err := rg.Wait(); err != nil {
		return PersonalityReport{}, err
	}

	label, err := s.classify(ctx, ocean, mbti, lexical)
	if err != nil {
		return PersonalityReport{}, err
	}

	return PersonalityReport{
		Ocean:           ocean,
		MBTI:            mbti,
		Lexical:         lexical,
		HybridScore:     domain.HybridScore(ocean, mbti, lexical),
		PersonalityType: label,
		ConfidenceLevel: domain.ConfidenceLevel(wordCount),
		WordCount:       wordCount,
		Thinking:        thinking,
	}, nil
}

// runTraitAnalysis manda el prompt con few-shot y devuelve el objeto junto a su razonamiento.
func (s *PersonalityService) runTraitAnalysis(ctx context.Context, name, system string, fewShot []llm.Message, prompt string) (extract.Result, error) {
	msgs := make([]llm.Message, 0, len(fewShot)+2)
	msgs = append(msgs, llm.System(system))
	msgs = append(msgs, fewShot...)
	msgs = append(msgs, llm.User(prompt))

	raw, err := s.llmClient.Complete(ctx, llm.ChatRequest{
		Model:       s.models.Analysis,
		Messages:    msgs,
		Temperature: 0.3,
		MaxTokens:   10000,
	})
	if err != nil {
		return extract.Result{}, fmt.Errorf("%s analysis: llm generate: %w", name, err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return extract.Result{}, fmt.Errorf("%s analysis: empty response from model", name)
	}

	res, err := extract.ParseFlat(raw)
	if err != nil {
		return extract.Result{}, fmt.Errorf("%s analysis: %w in response: %s", name, err, truncate(raw, 200))
	}
	return res, nil
}

func (s *PersonalityService) analyzeOcean(ctx context.Context, text string) (domain.OceanVector, string, error) {
	res, err := s.runTraitAnalysis(ctx, "ocean", traitSystemPrompt, oceanFewShot, buildOceanPrompt(text))
	if err != nil {
		return domain.OceanVector{}, "", err
	}

	var raw struct {
		Openness          *float64 `json:"openness"`
		Conscientiousness *float64 `json:"conscientiousness"`
		Extraversion      *float64 `json:"extraversion"`
		Agreeableness     *float64 `json:"agreeableness"`
		Neuroticism       *float64 `json:"neuroticism"`
		Confidence        *float64 `json:"confidence"`
	}
	if err := extract.Decode(res.Object, &raw); err != nil {
		return domain.OceanVector{}, "", fmt.Errorf("ocean analysis: %w", err)
	}

	var v domain.OceanVector
	fields := []struct {
		name string
		val  *float64
		dst  *int
	}{
		{"openness", raw.Openness, &v.Openness},
		{"conscientiousness", raw.Conscientiousness, &v.Conscientiousness},
		{"extraversion", raw.Extraversion, &v.Extraversion},
		{"agreeableness", raw.Agreeableness, &v.Agreeableness},
		{"neuroticism", raw.Neuroticism, &v.Neuroticism},
	}
	for _, f := range fields {
		score, err := requireScore("ocean", f.name, f.val, 1, 5)
		if err != nil {
			return domain.OceanVector{}, "", err
		}
		*f.dst = score
	}
	v.Confidence = confidenceOrDefault(raw.Confidence)
	return v, res.Thinking, nil
}

func (s *PersonalityService) analyzeMBTI(ctx context.Context, text string) (domain.MBTIVector, string, error) {
	res, err := s.runTraitAnalysis(ctx, "mbti", traitSystemPrompt, mbtiFewShot, buildMBTIPrompt(text))
	if err != nil {
		return domain.MBTIVector{}, "", err
	}

	var raw struct {
		EI         *float64 `json:"ei"`
		SN         *float64 `json:"sn"`
		TF         *float64 `json:"tf"`
		JP         *float64 `json:"jp"`
		Type       string   `json:"type"`
		Confidence *float64 `json:"confidence"`
	}
	if err := extract.Decode(res.Object, &raw); err != nil {
		return domain.MBTIVector{}, "", fmt.Errorf("mbti analysis: %w", err)
	}

	var v domain.MBTIVector
	axes := []struct {
		name string
		val  *float64
		dst  *int
	}{
		{"ei", raw.EI, &v.EI},
		{"sn", raw.SN, &v.SN},
		{"tf", raw.TF, &v.TF},
		{"jp", raw.JP, &v.JP},
	}
	for _, a := range axes {
		score, err := requireScore("mbti", a.name, a.val, -5, 5)
		if err != nil {
			return domain.MBTIVector{}, "", err
		}
		*a.dst = score
	}
	v.Type = v.NormalizeMBTIType(raw.Type)
	v.Confidence = confidenceOrDefault(raw.Confidence)
	return v, res.Thinking, nil
}

func (s *PersonalityService) analyzeLexical(ctx context.Context, text string) (domain.LexicalVector, string, error) {
	res, err := s.runTraitAnalysis(ctx, "lexical", lexicalSystemPrompt, lexicalFewShot, buildLexicalPrompt(text))
	if err != nil {
		return domain.LexicalVector{}, "", err
	}

	var raw struct {
		Formality          *float64 `json:"formality"`
		EmotionalIntensity *float64 `json:"emotional_intensity"`
		Complexity         *float64 `json:"complexity"`
		Certainty          *float64 `json:"certainty"`
		SocialOrientation  *float64 `json:"social_orientation"`
		Confidence         *float64 `json:"confidence"`
	}
	if err := extract.Decode(res.Object, &raw); err != nil {
		return domain.LexicalVector{}, "", fmt.Errorf("lexical analysis: %w", err)
	}

	var v domain.LexicalVector
	features := []struct {
		name string
		val  *float64
		dst  *int
	}{
		{"formality", raw.Formality, &v.Formality},
		{"emotional_intensity", raw.EmotionalIntensity, &v.EmotionalIntensity},
		{"complexity", raw.Complexity, &v.Complexity},
		{"certainty", raw.Certainty, &v.Certainty},
		{"social_orientation", raw.SocialOrientation, &v.SocialOrientation},
	}
	for _, f := range features {
		score, err := requireScore("lexical", f.name, f.val, 1, 5)
		if err != nil {
			return domain.LexicalVector{}, "", err
		}
		*f.dst = score
	}
	v.Confidence = confidenceOrDefault(raw.Confidence)
	return v, res.Thinking, nil
}

// refineThinking reescribe el razonamiento sin jerga. Sin razonamiento no hay llamada.
func (s *PersonalityService) refineThinking(ctx context.Context, rawThinking string) (string, error) {
	rawThinking = strings.TrimSpace(rawThinking)
	if rawThinking == "" {
		return "", nil
	}

	out, err := s.llmClient.Complete(ctx, llm.ChatRequest{
		Model: s.models.Refine,
		Messages: []llm.Message{
			llm.System(refineSystemPrompt),
			llm.User(buildRefinePrompt(rawThinking)),
		},
		Temperature: 0.5,
		MaxTokens:   5000,
	})
	if err != nil {
		return "", fmt.Errorf("refine thinking: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// classify pide la etiqueta final. Si el modelo no devuelve JSON usable se usa la etiqueta por defecto.
func (s *PersonalityService) classify(ctx context.Context, ocean domain.OceanVector, mbti domain.MBTIVector, lexical domain.LexicalVector) (domain.PersonalityLabel, error) {
	raw, err := s.llmClient.Complete(ctx, llm.ChatRequest{
		Model: s.models.Analysis,
		Messages: []llm.Message{
			llm.System(classifySystemPrompt),
			llm.User(buildClassifyPrompt(ocean, mbti, lexical)),
		},
		Temperature: 0.7,
		MaxTokens:   100,
	})
	if err != nil {
		return domain.PersonalityLabel{}, fmt.Errorf("classify personality: %w", err)
	}

	obj, err := extract.Flat(raw)
	if err != nil {
		s.logger.Warn("classification without json, using default label")
		return domain.DefaultPersonalityLabel, nil
	}
	var label domain.PersonalityLabel
	if err := extract.Decode(obj, &label); err != nil || strings.TrimSpace(label.Type) == "" {
		s.logger.Warn("classification json unusable, using default label", zap.Error(err))
		return domain.DefaultPersonalityLabel, nil
	}
	label.Type = strings.TrimSpace(label.Type)
	label.Description = strings.TrimSpace(label.Description)
	return label, nil
}

func requireScore(vector, field string, val *float64, lo, hi int) (int, error) {
	if val == nil {
		return 0, fmt.Errorf("%s analysis: %w: %s", vector, ErrMissingField, field)
	}
	return domain.ClampInt(int(math.Round(*val)), lo, hi), nil
}

func confidenceOrDefault(val *float64) float64 {
	if val == nil {
		return defaultConfidence
	}
	return domain.ClampConfidence(*val)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
