package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"

	openai "github.com/sashabaranov/go-openai"

	"github.com/lightmeal/calorie-helper/internal/domain"
)

// OpenAIProvider implements domain.AIProvider on top of the OpenAI API.
// Image editing is not part of its capability set.
type OpenAIProvider struct {
	client *openai.Client

	mu      sync.Mutex
	history []openai.ChatCompletionMessage
}

// NewOpenAIProvider creates an OpenAI-backed provider.
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{client: openai.NewClient(apiKey)}
}

func (p *OpenAIProvider) AnalyzeImage(ctx context.Context, imageData []byte) (*domain.FoodRecognition, error) {
	prompt := `Identify the food in this image and estimate its calories in a typical portion size.
Respond with ONLY a JSON object with fields "name" (string) and "calories" (number).
No markdown, no explanations.`

	imageURL := fmt.Sprintf("data:image/jpeg;base64,%s", base64.StdEncoding.EncodeToString(imageData))
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: imageURL},
					},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response")
	}

	jsonStr := extractJSON(resp.Choices[0].Message.Content)
	if jsonStr == "" {
		return nil, fmt.Errorf("no valid JSON found in response")
	}
	var result domain.FoodRecognition
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &result, nil
}

func (p *OpenAIProvider) SearchFood(ctx context.Context, query string) (*domain.FoodSearchResult, error) {
	prompt := fmt.Sprintf(`Search for the average calorie content of: %s.
Respond with ONLY a JSON object with fields "name" (string), "calories" (number per serving) and "unit" (string).
No markdown, no explanations.`, query)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response")
	}

	jsonStr := extractJSON(resp.Choices[0].Message.Content)
	if jsonStr == "" {
		return nil, fmt.Errorf("no valid JSON found in response")
	}
	var result domain.FoodSearchResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &result, nil
}

// Chat keeps the conversation history across calls; the history is the
// opaque conversation handle.
func (p *OpenAIProvider) Chat(ctx context.Context, message string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.history) == 0 {
		p.history = append(p.history, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: assistantPersona,
		})
	}
	p.history = append(p.history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    openai.GPT4o,
		Messages: p.history,
	})
	if err != nil {
		// Drop the unanswered message so a later retry starts clean.
		p.history = p.history[:len(p.history)-1]
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		p.history = p.history[:len(p.history)-1]
		return "", fmt.Errorf("empty completion response")
	}

	reply := resp.Choices[0].Message.Content
	p.history = append(p.history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: reply,
	})
	return reply, nil
}

// EditImage is not supported by this provider.
func (p *OpenAIProvider) EditImage(ctx context.Context, imageData []byte, instruction string) ([]byte, error) {
	return nil, fmt.Errorf("image editing not supported by the openai provider")
}
