package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"psygen-api/internal/config"
	"psygen-api/internal/domain"
	"psygen-api/internal/llm"
	"psygen-api/internal/service"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewExample()
	defer logger.Sync()

	groqClient := llm.NewGroqClient(cfg.GroqBaseURL, cfg.GroqAPIKey, logger)
	screeningSvc := service.NewScreeningService(groqClient, cfg.AnalysisModel, logger)

	sessionID := uuid.NewString()
	logger = logger.With(zap.String("session_id", sessionID))

	if _, err := runScreening(ctx, screeningSvc, bufio.NewReader(os.Stdin), os.Stdout, logger); err != nil {
		log.Fatal(err)
	}
}

// runScreening hace las 10 preguntas, puntua cada respuesta y al final imprime el analisis agregado.
func runScreening(ctx context.Context, svc *service.ScreeningService, reader *bufio.Reader, out io.Writer, logger *zap.Logger) (domain.DepressionReport, error) {
	questions := domain.Questionnaire()
	answers := make([]string, 0, len(questions))
	total := 0
	crisisShown := false

	fmt.Fprintln(out, "===== Evaluacion de bienestar =====")
	fmt.Fprintln(out, "Responde con tus palabras. Escribe 'salir' para terminar.")

	for i, q := range questions {
		answer, err := ask(reader, out, fmt.Sprintf("\n[%d/%d] %s\nTu > ", i+1, len(questions), q.Text))
		if err != nil {
			return domain.DepressionReport{}, fmt.Errorf("leer respuesta: %w", err)
		}
		if strings.EqualFold(answer, "salir") || strings.EqualFold(answer, "exit") {
			fmt.Fprintln(out, "Evaluacion cancelada.")
			return domain.DepressionReport{}, nil
		}

		res, err := svc.ScoreResponse(ctx, service.ScoreInput{
			Response: answer,
			Question: q.Text,
			Category: q.Category,
		})
		if err != nil {
			return domain.DepressionReport{}, fmt.Errorf("puntuar respuesta: %w", err)
		}
		logger.Debug("response scored", zap.Int("question", q.ID), zap.Int("score", res.Score))

		total += res.Score
		answers = append(answers, answer)

		if res.Crisis && !crisisShown {
			crisisShown = true
			fmt.Fprintln(out, "\nLo que compartiste es importante. No estas solo, hay ayuda disponible ahora mismo:")
			for _, r := range res.Resources {
				fmt.Fprintf(out, "  - %s: %s\n", r.Name, r.Contact)
			}
		}
	}

	fmt.Fprintln(out, "\nAnalizando tus respuestas. Por favor, espera...")

	report, err := svc.AnalyzeDepression(ctx, domain.DepressionAssessment{TotalScore: total, Responses: answers})
	if err != nil {
		return domain.DepressionReport{}, fmt.Errorf("analizar evaluacion: %w", err)
	}

	fmt.Fprintf(out, "\nPuntaje total: %d/30 (%s)\n", total, report.Level)
	fmt.Fprintln(out, report.Message)
	if report.DetailedAnalysis != "" {
		fmt.Fprintln(out, report.DetailedAnalysis)
	}
	fmt.Fprintln(out, "Recomendaciones:")
	for _, r := range report.Recommendations {
		fmt.Fprintf(out, "  * %s\n", r)
	}
	return report, nil
}

// ask repite la pregunta hasta recibir una respuesta no vacia.
func ask(reader *bufio.Reader, out io.Writer, prompt string) (string, error) {
	for {
		fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if err != nil {
			return "", err
		}
	}
}
