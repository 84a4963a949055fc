// Package ai implements the AIProvider contract against the external
// generative-AI services: Gemini as the primary provider and OpenAI as
// the alternative.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/lightmeal/calorie-helper/internal/domain"
)

const (
	geminiVisionModel = "gemini-1.5-flash"
	geminiChatModel   = "gemini-1.5-pro"
)

const assistantPersona = `You are a nutrition coach for busy professionals.
Tone: warm, minimal, empathetic. Rules:
1. Keep every reply under 100 words.
2. Prefer short sentences and lists.
3. No clinical jargon.
4. Focus on healthy habits and body positivity, not just weight loss.
5. When asked about food, give specific, actionable suggestions.`

// GeminiProvider implements domain.AIProvider on top of the Gemini API.
type GeminiProvider struct {
	client *genai.Client

	// The chat session is the opaque conversation handle, created once
	// per process and reused across Chat calls.
	chatOnce sync.Once
	chat     *genai.ChatSession
}

// NewGeminiProvider creates a Gemini-backed provider.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

// AnalyzeImage identifies the food in the image and estimates its
// calories for a typical portion.
func (p *GeminiProvider) AnalyzeImage(ctx context.Context, imageData []byte) (*domain.FoodRecognition, error) {
	model := p.client.GenerativeModel(geminiVisionModel)

	prompt := `Identify the food in this image and estimate its calories in a typical portion size.
Respond with ONLY a JSON object with fields "name" (string) and "calories" (number).
No markdown, no explanations.`

	resp, err := model.GenerateContent(ctx, genai.ImageData("jpeg", imageData), genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	jsonStr := extractJSON(responseText(resp))
	if jsonStr == "" {
		return nil, fmt.Errorf("no valid JSON found in response")
	}
	var result domain.FoodRecognition
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &result, nil
}

// SearchFood looks up the average calorie content of a free-text query.
func (p *GeminiProvider) SearchFood(ctx context.Context, query string) (*domain.FoodSearchResult, error) {
	model := p.client.GenerativeModel(geminiChatModel)

	prompt := fmt.Sprintf(`Search for the average calorie content of: %s.
Respond with ONLY a JSON object with fields "name" (string), "calories" (number per serving) and "unit" (string).
No markdown, no explanations.`, query)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	jsonStr := extractJSON(responseText(resp))
	if jsonStr == "" {
		return nil, fmt.Errorf("no valid JSON found in response")
	}
	var result domain.FoodSearchResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &result, nil
}

// Chat sends a message on the session-wide conversation.
func (p *GeminiProvider) Chat(ctx context.Context, message string) (string, error) {
	p.chatOnce.Do(func() {
		model := p.client.GenerativeModel(geminiChatModel)
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(assistantPersona)},
		}
		p.chat = model.StartChat()
	})

	resp, err := p.chat.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("failed to send chat message: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("empty chat response")
	}
	return text, nil
}

// EditImage applies the instruction to the image and returns the edited
// image bytes, or an error when the response carries no image part.
func (p *GeminiProvider) EditImage(ctx context.Context, imageData []byte, instruction string) ([]byte, error) {
	model := p.client.GenerativeModel(geminiVisionModel)

	resp, err := model.GenerateContent(ctx, genai.ImageData("jpeg", imageData), genai.Text(instruction))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if blob, ok := part.(genai.Blob); ok {
				return blob.Data, nil
			}
		}
	}
	return nil, fmt.Errorf("no image in response")
}

// Close releases the underlying client.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}

// extractJSON attempts to extract a valid JSON object from the given string.
// It handles cases where the JSON is wrapped in code blocks (```json ... ```) or other text.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}
	end := strings.LastIndex(s, "}")
	if end == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}
