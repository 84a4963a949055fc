package services

import (
	"context"
	"fmt"

	"github.com/lightmeal/calorie-helper/internal/domain"
	"github.com/lightmeal/calorie-helper/internal/errors"
	"github.com/lightmeal/calorie-helper/internal/logger"
)

// chatFallback is returned whenever the provider fails. The recording
// and chat flows never see a provider failure.
const chatFallback = "Remember to drink plenty of water and be kind to yourself. Every small effort is making your body better!"

// AssistantService wraps the AIProvider and recovers every failure into
// a safe default: a nil "not found" result for recognition, search and
// image editing, a canned friendly message for chat and advice.
type AssistantService struct {
	provider domain.AIProvider
	errs     *errors.Handler
}

// NewAssistantService creates the assistant over the given provider.
func NewAssistantService(provider domain.AIProvider) *AssistantService {
	return &AssistantService{
		provider: provider,
		errs:     errors.NewHandler(logger.GetLogger()),
	}
}

// AnalyzeImage recognizes the food on a photo. A nil result signals
// recognition failure; errors never escape.
func (s *AssistantService) AnalyzeImage(ctx context.Context, imageData []byte) *domain.FoodRecognition {
	result, err := s.provider.AnalyzeImage(ctx, imageData)
	if err != nil {
		s.errs.Handle(ctx, errors.NewExternalAPIError(err, "vision"))
		return nil
	}
	return result
}

// SearchFood looks up calories for a free-text query. A nil result
// signals "not found".
func (s *AssistantService) SearchFood(ctx context.Context, query string) *domain.FoodSearchResult {
	result, err := s.provider.SearchFood(ctx, query)
	if err != nil {
		s.errs.Handle(ctx, errors.NewExternalAPIError(err, "search"))
		return nil
	}
	return result
}

// Chat sends a message on the session conversation, substituting the
// fallback message on any failure.
func (s *AssistantService) Chat(ctx context.Context, message string) string {
	reply, err := s.provider.Chat(ctx, message)
	if err != nil {
		s.errs.Handle(ctx, errors.NewExternalAPIError(err, "chat"))
		return chatFallback
	}
	return reply
}

// EditImage applies an instruction to an image. A nil result signals
// editing failure.
func (s *AssistantService) EditImage(ctx context.Context, imageData []byte, instruction string) []byte {
	edited, err := s.provider.EditImage(ctx, imageData, instruction)
	if err != nil {
		s.errs.Handle(ctx, errors.NewExternalAPIError(err, "image_edit"))
		return nil
	}
	return edited
}

// SmartAdvice produces a one-line coaching message for the dashboard
// from the profile and today's numbers.
func (s *AssistantService) SmartAdvice(ctx context.Context, profile domain.UserProfile, intake, goal int) string {
	prompt := fmt.Sprintf(
		"User: age %d, weight %.0fkg, height %.0fcm, goal: %s. Intake today: %d kcal of a %d kcal daily goal. Give one short, warm, professional tip (under 50 words).",
		profile.Age, profile.Weight, profile.Height, profile.Goal, intake, goal,
	)
	reply, err := s.provider.Chat(ctx, prompt)
	if err != nil {
		s.errs.Handle(ctx, errors.NewExternalAPIError(err, "advice"))
		return chatFallback
	}
	return reply
}
