package domain

// Question es una pregunta del cuestionario de screening.
type Question struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
	Source   string `json:"source"`
}

// CrisisResource es una linea de ayuda que se muestra cuando se detecta crisis.
type CrisisResource struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

var questionnaire = []Question{
	{ID: 1, Text: "How have you been feeling emotionally lately?", Category: "sadness", Source: "BDI"},
	{ID: 2, Text: "Tell me about your outlook on the future. How do you see things unfolding?", Category: "hopelessness", Source: "BDI"},
	{ID: 3, Text: "How satisfied do you feel with the things you usually enjoy?", Category: "satisfaction", Source: "BDI"},
	{ID: 4, Text: "How has your sleep been recently?", Category: "sleep", Source: "BDI"},
	{ID: 5, Text: "What's your energy level like these days?", Category: "energy", Source: "BDI"},
	{ID: 6, Text: "How do you feel about yourself when you look in the mirror or think about who you are?", Category: "self_worth", Source: "BDI"},
	{ID: 7, Text: "How easy or difficult is it for you to make decisions lately?", Category: "decision_making", Source: "BDI"},
	{ID: 8, Text: "Over the past two weeks, how often have you felt down, depressed, or hopeless?", Category: "depression_frequency", Source: "PHQ"},
	{ID: 9, Text: "How much interest or pleasure have you had in doing things you normally enjoy?", Category: "interest", Source: "PHQ"},
	{ID: 10, Text: "Have you had any thoughts that you'd be better off not being here, or thoughts of hurting yourself?", Category: "suicidal_ideation", Source: "PHQ"},
}

var crisisResources = []CrisisResource{
	{Name: "National Suicide Prevention Lifeline (US)", Contact: "988"},
	{Name: "Crisis Text Line", Contact: "Text HOME to 741741"},
	{Name: "International helplines", Contact: "https://findahelpline.com"},
}

// Questionnaire devuelve una copia de las 10 preguntas BDI/PHQ.
func Questionnaire() []Question {
	out := make([]Question, len(questionnaire))
	copy(out, questionnaire)
	return out
}

// CrisisResources devuelve una copia de las lineas de ayuda.
func CrisisResources() []CrisisResource {
	out := make([]CrisisResource, len(crisisResources))
	copy(out, crisisResources)
	return out
}
