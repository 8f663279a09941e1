// File: services/intelligence/interface.go
package ai

import (
	"context"

	"snapvroom/models"
	"snapvroom/services/session"
)

// AdvisorService produces a non-authoritative trip-preference recommendation
// from a customer photo plus the session's loaded catalogs. Failures must
// never block the booking flow; callers treat them as "no recommendation".
type AdvisorService interface {
	Recommend(ctx context.Context, sess *session.Session, imageJPEG []byte, userDescription string) (*models.CarPreferencePrediction, error)
	CachedPrediction(ctx context.Context, sessionID string) (*models.CarPreferencePrediction, error)
	ClearPrediction(ctx context.Context, sessionID string) error
}

// DefaultAdvisorService implements AdvisorService against the OpenAI
// Responses API.
type DefaultAdvisorService struct {
	client *openAIClient
	store  *RedisPredictionStore
}

func NewDefaultAdvisorService(apiKey, apiURL, model string, store *RedisPredictionStore) *DefaultAdvisorService {
	return &DefaultAdvisorService{
		client: newOpenAIClient(apiKey, apiURL, model),
		store:  store,
	}
}
