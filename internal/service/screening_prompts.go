package service

import (
	"fmt"
	"strings"

	"psygen-api/internal/domain"
)

const scoreSystemPrompt = "You are an expert clinical psychologist. Use comprehensive Chain-of-Thought reasoning. Think deeply through all steps, then return JSON with detailed reasoning."

const depressionSystemPrompt = "You are an expert mental health counselor. Provide COMPREHENSIVE, DETAILED, UNRESTRICTED analysis. Use complete Chain-of-Thought reasoning. Be thorough and specific. Return JSON with extensive content."

func buildScorePrompt(in ScoreInput) string {
	return fmt.Sprintf(`You are an expert clinical psychologist with 20+ years of experience in depression assessment and mental health evaluation. Use comprehensive Chain-of-Thought reasoning to analyze this response.

Question: %s
Category: %s
User Response: "%s"

=== CHAIN-OF-THOUGHT ANALYSIS PROCESS ===

Step 1: LINGUISTIC ANALYSIS
- Identify key emotional words, phrases, and linguistic markers
- Analyze tone (hopeful, neutral, distressed, desperate)
- Note intensity indicators (always, never, sometimes, occasionally)
- Detect temporal markers (lately, always, used to, now)

Step 2: SYMPTOM SEVERITY MAPPING
- Map response to clinical depression indicators
- Consider frequency (how often symptoms occur)
- Assess duration (how long symptoms persist)
- Evaluate functional impairment (impact on daily life)

Step 3: CONTEXTUAL INTERPRETATION
- Distinguish between temporary mood vs persistent state
- Identify coping mechanisms or lack thereof
- Recognize minimization or exaggeration patterns
- Consider cultural and linguistic variations in expression

Step 4: EDGE CASE HANDLING
- Ambiguous responses ("I'm okay I guess")
- Contradictory statements ("I'm fine but everything feels pointless")
- Deflection or avoidance ("I don't know", "whatever")
- Extreme brevity ("bad", "terrible", "fine")
- Metaphorical language ("drowning", "empty shell")
- Sarcasm or dark humor masking distress

Step 5: SCORE DETERMINATION
0 = No symptoms / Positive state / Healthy functioning
1 = Mild symptoms / Occasional distress / Minimal impairment
2 = Moderate symptoms / Frequent distress / Notable impairment
3 = Severe symptoms / Persistent distress / Significant impairment

=== COMPREHENSIVE FEW-SHOT EXAMPLES ===

%s

=== YOUR TASK ===

Now analyze the user's response using the complete Chain-of-Thought process above. Think through ALL steps comprehensively, then provide your final answer as JSON.

Return format:
{"score": 2, "reasoning": "Detailed multi-sentence explanation of your analysis", "crisis": false}`,
		in.Question, in.Category, in.Response, formatScoreExamples())
}

type scoreExample struct {
	label    string
	response string
	analysis string
	verdict  string
}

var scoreExamples = []scoreExample{
	{"Score 0", "I've been feeling really good lately, energized and optimistic about the future", "Positive emotional state, energy present, future-oriented thinking, no distress indicators", "0"},
	{"Score 1", "I'm okay, just a bit stressed with work but managing", `Mild stress acknowledged, coping mechanisms implied ("managing"), temporary situational factor`, "1"},
	{"Score 1 - Ambiguous", "I don't know, I guess I'm fine", `Uncertainty suggests mild disconnection, "I guess" indicates lack of conviction, but no severe distress`, "1"},
	{"Score 2", "I feel sad most days and it's hard to enjoy things I used to love", `Frequency indicator ("most days"), anhedonia present, past vs present comparison shows decline`, "2"},
	{"Score 2 - Deflection", "Whatever, does it even matter?", "Deflection masks distress, existential questioning, apathy indicator, suggests moderate hopelessness", "2"},
	{"Score 3", "I feel completely hopeless, like there's no point in anything anymore", `Absolute language ("completely", "no point"), pervasive hopelessness, existential despair`, "3"},
	{"Score 3 - Metaphorical", "I'm drowning and nobody can see it, I'm just an empty shell going through motions", `Drowning metaphor indicates overwhelming distress, depersonalization ("empty shell"), severe disconnection`, "3"},
	{"Score 0 - Brief positive", "Good", "Brief but positive, no distress indicators, assume healthy state unless context suggests otherwise", "0"},
	{"Score 2 - Contradictory", "I'm fine really, just that everything feels meaningless and I can't get out of bed", `Contradiction between "fine" and severe symptoms, minimization pattern, functional impairment evident`, "2"},
	{"Score 3 - Suicidal ideation", "I keep thinking everyone would be better off without me, I have a plan", "Active suicidal ideation, plan formation, severe risk indicator, immediate concern", "3, CRISIS"},
	{"Score 1 - Suicidal ideation", "Sometimes I wonder what it would be like to not exist, but I'd never do anything", "Passive ideation, no intent or plan, philosophical wondering, low immediate risk", "1"},
	{"Score 2 - Sleep issues", "I barely sleep anymore, maybe 2-3 hours a night, and I'm exhausted all the time", "Severe sleep disruption, chronic pattern, functional impairment (exhaustion), moderate severity", "2"},
}

func formatScoreExamples() string {
	parts := make([]string, 0, len(scoreExamples))
	for i, ex := range scoreExamples {
		parts = append(parts, fmt.Sprintf("Example %d (%s):\nResponse: %q\nAnalysis: %s\nScore: %s",
			i+1, ex.label, ex.response, ex.analysis, ex.verdict))
	}
	return strings.Join(parts, "\n\n")
}

func buildDepressionPrompt(a domain.DepressionAssessment, band domain.SeverityBand) string {
	return fmt.Sprintf(`Analyze depression assessment. Score: %d/30, Level: %s, Responses: %s

Return JSON with 4 fields:
1. "reasoning": Brief analysis of symptom patterns and severity
2. "detailed_analysis": 2-3 sentence clinical assessment
3. "message": Empathetic 2-3 sentence personalized message
4. "recommendations": Array of 5-7 actionable recommendations

Example:
{
    "reasoning": "Score indicates %s depression with symptoms of [key patterns]. Requires [intervention level].",
    "detailed_analysis": "Your responses show [main symptoms]. This impacts [areas of life].",
    "message": "Taking this assessment shows strength. These feelings can improve with support.",
    "recommendations": [
        "Try 4-7-8 breathing before bed for better sleep",
        "Schedule consultation with mental health professional",
        "Get 10-15 min morning sunlight daily",
        "Do one enjoyable activity for 10 min, 3x this week",
        "Reach out to one trusted person this week"
    ]
}

Be concise but helpful. Return only JSON.`,
		a.TotalScore, band.Label(), strings.Join(a.Responses, " "), band.Slug())
}
