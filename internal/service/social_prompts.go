package service

import (
	"fmt"
	"strings"
)

const chatExtractionInstruction = `Extract all messages from this WhatsApp chat screenshot. Identify messages by bubble color: GREEN bubbles are from the USER, WHITE/GRAY/BLACK bubbles are from OTHER person. Return ONLY valid JSON with this exact format: {"user_content": ["message1", "message2"], "other_content": ["message1", "message2"]}. Include only the message text, no timestamps or names.`

const socialSystemPrompt = "You are a clinical psychologist analyzing social media behavior patterns. Return only JSON."

func buildSocialPrompt(userMessages, otherMessages []string) string {
	return fmt.Sprintf(`Analyze this person's social media behavior based on their WhatsApp messages. Use clinical psychological metrics.

User's Messages: %s
Other Person's Messages: %s

Analyze these clinical metrics (1-5 scale):
- Response Engagement (1=dismissive, brief | 5=engaged, detailed responses)
- Emotional Expressiveness (1=flat, minimal emotion | 5=highly expressive, emotive)
- Conversation Initiation (1=passive, reactive | 5=proactive, initiates topics)
- Social Reciprocity (1=self-focused, ignores cues | 5=balanced, reciprocal)
- Attachment Style (1=avoidant, distant | 5=secure, warm)
- Communication Clarity (1=vague, ambiguous | 5=clear, direct)
- Empathy Display (1=low empathy, dismissive | 5=high empathy, validating)
- Boundary Management (1=poor boundaries | 5=healthy boundaries)

Return JSON:
{"response_engagement": 3, "emotional_expressiveness": 4, "conversation_initiation": 2, "social_reciprocity": 4, "attachment_style": 3, "communication_clarity": 4, "empathy_display": 5, "boundary_management": 3, "confidence": 0.8, "behavioral_summary": "Brief description"}`,
		strings.Join(userMessages, " "), strings.Join(otherMessages, " "))
}
