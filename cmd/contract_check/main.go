package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"psygen-api/internal/config"
	"psygen-api/internal/llm"
	"psygen-api/internal/service"
)

const (
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorReset  = "\033[0m"
)

var personalityScenarios = []Scenario{
	{
		Name:   "introvertido reflexivo",
		Text:   "I prefer spending my weekends alone with a good book. Large parties drain me and I need time to recharge afterwards.",
		EISign: 1,
	},
	{
		Name:   "extrovertido espontaneo",
		Text:   "omg last night was amazing!! met so many new people at the party, can't wait to do it again this weekend with everyone",
		EISign: -1,
	},
	{
		Name: "formal analitico",
		Text: "The quarterly results indicate a consistent improvement in operational efficiency, although further analysis of the underlying variables is required before drawing firm conclusions.",
	},
}

var scoreScenarios = []ScoreScenario{
	{
		Name:  "animo positivo",
		Input: service.ScoreInput{Response: "I've been feeling pretty good lately, enjoying my hobbies", Question: "How would you describe your mood over the past two weeks?", Category: "mood"},
	},
	{
		Name:       "ideacion",
		Input:      service.ScoreInput{Response: "Sometimes I think everyone would be better off without me", Question: "Have you had thoughts that you would be better off dead, or of hurting yourself in some way?", Category: "suicidal_ideation"},
		WantCrisis: true,
	},
}

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
	personalitySvc := service.NewPersonalityService(groqClient, service.Models{Analysis: cfg.AnalysisModel, Refine: cfg.RefineModel}, logger)
	screeningSvc := service.NewScreeningService(groqClient, cfg.AnalysisModel, logger)

	failures := 0
	for _, sc := range personalityScenarios {
		fmt.Printf("%s[Analyze]%s %s\n", colorCyan, colorReset, sc.Name)
		report, err := personalitySvc.Analyze(ctx, sc.Text)
		if err != nil {
			fmt.Printf("%sERROR%s %v\n\n", colorRed, colorReset, err)
			failures++
			continue
		}
		fmt.Printf("MBTI %s | hybrid %.2f | %s\n", report.MBTI.Type, report.HybridScore, report.PersonalityType.Type)
		if w := eiWarning(sc, report); w != "" {
			fmt.Printf("%sAVISO%s %s\n", colorYellow, colorReset, w)
		}
		failures += printViolations(checkPersonalityContract(sc, report))
	}

	for _, sc := range scoreScenarios {
		fmt.Printf("%s[Score]%s %s\n", colorCyan, colorReset, sc.Name)
		res, err := screeningSvc.ScoreResponse(ctx, sc.Input)
		if err != nil {
			fmt.Printf("%sERROR%s %v\n\n", colorRed, colorReset, err)
			failures++
			continue
		}
		fmt.Printf("score %d | crisis %t\n", res.Score, res.Crisis)
		failures += printViolations(checkScoreContract(sc, res))
	}

	fmt.Println("==== Resumen ====")
	if failures > 0 {
		fmt.Printf("%s%d escenarios con violaciones%s\n", colorRed, failures, colorReset)
		os.Exit(1)
	}
	fmt.Printf("%sTodos los contratos OK%s\n", colorGreen, colorReset)
}

func printViolations(v []string) int {
	if len(v) == 0 {
		fmt.Printf("%sOK%s\n\n", colorGreen, colorReset)
		return 0
	}
	for _, msg := range v {
		fmt.Printf("%sFALLA%s %s\n", colorRed, colorReset, msg)
	}
	fmt.Println()
	return 1
}
