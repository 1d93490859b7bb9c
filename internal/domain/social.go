package domain

// ChatExtraction separa los mensajes de una captura de WhatsApp por autor.
type ChatExtraction struct {
	UserContent  []string `json:"user_content"`
	OtherContent []string `json:"other_content"`
}

// SocialBehavior son las ocho metricas clinicas (1-5) inferidas del chat.
type SocialBehavior struct {
	ResponseEngagement      int     `json:"response_engagement"`
	EmotionalExpressiveness int     `json:"emotional_expressiveness"`
	ConversationInitiation  int     `json:"conversation_initiation"`
	SocialReciprocity       int     `json:"social_reciprocity"`
	AttachmentStyle         int     `json:"attachment_style"`
	CommunicationClarity    int     `json:"communication_clarity"`
	EmpathyDisplay          int     `json:"empathy_display"`
	BoundaryManagement      int     `json:"boundary_management"`
	Confidence              float64 `json:"confidence"`
	BehavioralSummary       string  `json:"behavioral_summary"`
}

// Clamp acota todas las metricas a 1-5 y la confianza a 0-1.
func (s SocialBehavior) Clamp() SocialBehavior {
	for _, m := range []*int{
		&s.ResponseEngagement,
		&s.EmotionalExpressiveness,
		&s.ConversationInitiation,
		&s.SocialReciprocity,
		&s.AttachmentStyle,
		&s.CommunicationClarity,
		&s.EmpathyDisplay,
		&s.BoundaryManagement,
	} {
		*m = ClampInt(*m, 1, 5)
	}
	s.Confidence = ClampConfidence(s.Confidence)
	return s
}
