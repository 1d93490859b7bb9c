package llm

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message es un turno de la conversacion enviada al modelo.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest describe una llamada de chat completion.
// Los pares user/assistant previos al ultimo mensaje actuan como few-shot.
type ChatRequest struct {
	Model       string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// LLMClient define la interfaz para generar texto con un LLM.
type LLMClient interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// VisionRequest es una instruccion de texto sobre una imagen en base64.
type VisionRequest struct {
	Model       string
	Instruction string
	ImageBase64 string
	MaxTokens   int
}

// VisionClient define la interfaz para modelos de chat con entrada de imagen.
type VisionClient interface {
	DescribeImage(ctx context.Context, req VisionRequest) (string, error)
}

// System, User y Assistant arman mensajes sin repetir el literal del rol.
func System(content string) Message    { return Message{Role: RoleSystem, Content: content} }
func User(content string) Message      { return Message{Role: RoleUser, Content: content} }
func Assistant(content string) Message { return Message{Role: RoleAssistant, Content: content} }
