package service

import (
	"fmt"

	"psygen-api/internal/domain"
	"psygen-api/internal/llm"
)

const traitSystemPrompt = "You are a personality analysis expert. Think step-by-step, then provide JSON at the end."

const lexicalSystemPrompt = "You are a linguistic analysis expert. Think step-by-step, then provide JSON at the end."

const refineSystemPrompt = "You are a writing assistant. Convert technical analysis into natural explanations. Remove all references to JSON, code, formatting, or technical terms. Output ONLY the refined thinking content directly, without any introductory phrases like 'Here is' or 'The rewritten analysis'. Start immediately with the actual analysis."

const classifySystemPrompt = "You are a personality expert. Create concise, meaningful personality labels. Return only JSON."

var oceanFewShot = []llm.Message{
	llm.User("Text: 'I love exploring new ideas and thinking outside the box. Routine bores me.'"),
	llm.Assistant(`{"openness": 5, "conscientiousness": 2, "extraversion": 3, "agreeableness": 3, "neuroticism": 2, "confidence": 0.85}`),
	llm.User("Text: 'I always plan everything in advance and stick to my schedule. Organization is key.'"),
	llm.Assistant(`{"openness": 2, "conscientiousness": 5, "extraversion": 3, "agreeableness": 3, "neuroticism": 1, "confidence": 0.9}`),
}

var mbtiFewShot = []llm.Message{
	llm.User("Text: 'I prefer deep conversations over small talk. Abstract concepts fascinate me.'"),
	llm.Assistant(`{"ei": 3, "sn": 4, "tf": 1, "jp": 0, "type": "INFJ", "confidence": 0.8}`),
	llm.User("Text: 'I love parties and meeting new people! Life is about having fun and being spontaneous.'"),
	llm.Assistant(`{"ei": -4, "sn": -1, "tf": 2, "jp": 3, "type": "ENFP", "confidence": 0.85}`),
}

var lexicalFewShot = []llm.Message{
	llm.User("Text: 'gonna meet up with friends later lol cant wait!!'"),
	llm.Assistant(`{"formality": 1, "emotional_intensity": 4, "complexity": 1, "certainty": 4, "social_orientation": 5, "confidence": 0.95}`),
	llm.User("Text: 'The implementation of this methodology requires careful consideration of various parameters.'"),
	llm.Assistant(`{"formality": 5, "emotional_intensity": 1, "complexity": 5, "certainty": 3, "social_orientation": 1, "confidence": 0.9}`),
}

func buildOceanPrompt(text string) string {
	return fmt.Sprintf(`Analyze the following text for OCEAN personality traits. Use Chain of Thought reasoning.

First, think step-by-step about each trait:
- Openness (1=conventional, routine-focused | 5=creative, abstract, curious, imaginative)
- Conscientiousness (1=spontaneous, disorganized | 5=organized, disciplined, goal-oriented, reliable)
- Extraversion (1=reserved, solitary | 5=outgoing, energetic, social, talkative)
- Agreeableness (1=competitive, critical | 5=cooperative, empathetic, trusting, warm)
- Neuroticism (1=calm, stable | 5=anxious, emotional, stressed, worried)

Text: "%s"

Think through your reasoning, then provide your final answer as JSON:
{"openness": 3, "conscientiousness": 4, "extraversion": 2, "agreeableness": 5, "neuroticism": 1, "confidence": 0.8}`, text)
}

func buildMBTIPrompt(text string) string {
	return fmt.Sprintf(`Analyze the following text for MBTI dimensions. Use Chain of Thought reasoning.

Think step-by-step about each dimension:
- E/I: Extraversion(-5: very outgoing, social) to Introversion(+5: very reserved, reflective)
- S/N: Sensing(-5: concrete, practical, detail-focused) to Intuition(+5: abstract, theoretical, big-picture)
- T/F: Thinking(-5: logical, objective, analytical) to Feeling(+5: empathetic, values-driven, personal)
- J/P: Judging(-5: structured, planned, decisive) to Perceiving(+5: flexible, spontaneous, adaptable)

Text: "%s"

Think through your reasoning, determine the 4-letter type, then provide JSON:
{"ei": 2, "sn": -3, "tf": 1, "jp": -2, "type": "INFP", "confidence": 0.7}`, text)
}

func buildLexicalPrompt(text string) string {
	return fmt.Sprintf(`Analyze the following text for lexical features. Use Chain of Thought reasoning.

Think step-by-step about each feature:
- Formality (1=casual, slang, contractions | 5=formal, professional, proper grammar)
- Emotional Intensity (1=neutral, detached, factual | 5=passionate, expressive, emotional)
- Complexity (1=simple vocabulary, short sentences | 5=sophisticated vocabulary, complex sentences)
- Certainty (1=hesitant, uncertain, questioning | 5=confident, assertive, definitive)
- Social Orientation (1=self-focused, individual | 5=other-focused, community, relationships)

Text: "%s"

Think through your reasoning, then provide JSON:
{"formality": 3, "emotional_intensity": 2, "complexity": 4, "certainty": 3, "social_orientation": 5, "confidence": 0.8}`, text)
}

func buildRefinePrompt(rawThinking string) string {
	return "Convert this to natural language, removing technical terms. Output only the analysis content:\n\n" + rawThinking
}

func buildClassifyPrompt(ocean domain.OceanVector, mbti domain.MBTIVector, lexical domain.LexicalVector) string {
	return fmt.Sprintf(`Based on the following personality analysis, create a concise personality type label (1-2 words) and a brief description (3-5 words).

OCEAN Scores:
- Openness: %d/5
- Conscientiousness: %d/5
- Extraversion: %d/5
- Agreeableness: %d/5
- Neuroticism: %d/5

MBTI Type: %s

Lexical Features:
- Formality: %d/5
- Complexity: %d/5

Provide only JSON:
{"type": "Creative Thinker", "description": "Imaginative and analytical"}`,
		ocean.Openness, ocean.Conscientiousness, ocean.Extraversion, ocean.Agreeableness, ocean.Neuroticism,
		mbti.Type,
		lexical.Formality, lexical.Complexity,
	)
}
