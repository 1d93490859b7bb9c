package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultMistralBaseURL = "https://api.mistral.ai/v1"
	visionTimeout         = 60 * time.Second
)

// MistralClient implementa VisionClient contra la API de chat completions de Mistral.
type MistralClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewMistralClient construye un cliente HTTP con timeout de 60s.
func NewMistralClient(baseURL, apiKey string, logger *zap.Logger) *MistralClient {
	if baseURL == "" {
		baseURL = defaultMistralBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MistralClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: visionTimeout},
		logger:  logger,
	}
}

func (c *MistralClient) DescribeImage(ctx context.Context, vr VisionRequest) (string, error) {
	if strings.TrimSpace(vr.ImageBase64) == "" {
		return "", errors.New("vision request without image")
	}

	reqBody := visionChatRequest{
		Model: vr.Model,
		Messages: []visionMessage{
			{
				Role: RoleUser,
				Content: []visionContentPart{
					{Type: "text", Text: vr.Instruction},
					{Type: "image_url", ImageURL: DataURI(vr.ImageBase64)},
				},
			},
		},
		MaxTokens: vr.MaxTokens,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Warn("vision error status", zap.Int("status", resp.StatusCode), zap.ByteString("body", respBody))
		return "", fmt.Errorf("vision http error: status=%d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.Unmarshal(respBody, &cr); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if cr.Error != nil {
		return "", fmt.Errorf("vision api error: %s", cr.Error.Message)
	}

	if len(cr.Choices) == 0 || strings.TrimSpace(cr.Choices[0].Message.Content) == "" {
		return "", errors.New("vision empty response")
	}

	return strings.TrimSpace(cr.Choices[0].Message.Content), nil
}

// DataURI embebe la imagen base64 como JPEG. Si ya viene como data URI se respeta.
func DataURI(b64 string) string {
	b64 = strings.TrimSpace(b64)
	if strings.HasPrefix(b64, "data:") {
		return b64
	}
	return "data:image/jpeg;base64," + b64
}

type visionChatRequest struct {
	Model     string          `json:"model"`
	Messages  []visionMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

type visionMessage struct {
	Role    string              `json:"role"`
	Content []visionContentPart `json:"content"`
}

type visionContentPart struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}
