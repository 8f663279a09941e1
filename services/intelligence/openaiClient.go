// File: services/intelligence/openaiClient.go
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"snapvroom/models"
	"snapvroom/services/session"
	"snapvroom/utils"

	"go.uber.org/zap"
)

type openAIClient struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

func newOpenAIClient(apiKey, apiURL, model string) *openAIClient {
	return &openAIClient{
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     utils.GetLogger(),
	}
}

// Request/response wire types for the OpenAI Responses API.

type classifyRequest struct {
	Model string         `json:"model"`
	Input []inputMessage `json:"input"`
	Text  textFormat     `json:"text"`
}

type inputMessage struct {
	Role    string         `json:"role"`
	Content []inputContent `json:"content"`
}

type inputContent struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

type textFormat struct {
	Format responseFormat `json:"format"`
}

type responseFormat struct {
	Type   string         `json:"type"`
	Name   string         `json:"name"`
	Schema map[string]any `json:"schema"`
	Strict bool           `json:"strict"`
}

// responsesEnvelope is the outer response. The prediction itself arrives
// double-encoded: output[0].content[0].text is a JSON string that has to be
// parsed a second time. That is the upstream contract, not an accident.
type responsesEnvelope struct {
	Output []struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Recommend sends the photo plus a catalog snapshot of the session and decodes
// the strictly-schema-constrained prediction. Any partial or malformed
// response fails the whole call.
func (svc *DefaultAdvisorService) Recommend(ctx context.Context, sess *session.Session, imageJPEG []byte, userDescription string) (*models.CarPreferencePrediction, error) {
	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(imageJPEG)
	prompt := buildClassifierPrompt(buildBookingContext(sess, userDescription))

	body := classifyRequest{
		Model: svc.client.model,
		Input: []inputMessage{{
			Role: "user",
			Content: []inputContent{
				{Type: "input_text", Text: prompt},
				{Type: "input_image", ImageURL: dataURL, Detail: "high"},
			},
		}},
		Text: textFormat{Format: responseFormat{
			Type:   "json_schema",
			Name:   "CarPreferencePrediction",
			Schema: predictionSchema(),
			Strict: true,
		}},
	}

	prediction, err := svc.client.classify(ctx, body)
	if err != nil {
		return nil, err
	}

	// Best-effort cache of the advisory result; never fails the call.
	if svc.store != nil {
		if err := svc.store.Set(ctx, sess.ID, prediction); err != nil {
			svc.client.logger.Warn("Failed to cache prediction", zap.Error(err))
		}
	}
	return prediction, nil
}

// CachedPrediction returns the last stored prediction for a session, or nil.
func (svc *DefaultAdvisorService) CachedPrediction(ctx context.Context, sessionID string) (*models.CarPreferencePrediction, error) {
	if svc.store == nil {
		return nil, nil
	}
	return svc.store.Get(ctx, sessionID)
}

// ClearPrediction drops the stored prediction for a session.
func (svc *DefaultAdvisorService) ClearPrediction(ctx context.Context, sessionID string) error {
	if svc.store == nil {
		return nil
	}
	return svc.store.Clear(ctx, sessionID)
}

func (c *openAIClient) classify(ctx context.Context, body classifyRequest) (*models.CarPreferencePrediction, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal classification request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create classification request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classification request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read classification response: %w", err)
	}

	return parsePrediction(data, resp.StatusCode)
}

// parsePrediction decodes the envelope. A structured error.message takes
// precedence over everything else, including the nested-text parse.
func parsePrediction(data []byte, status int) (*models.CarPreferencePrediction, error) {
	var envelope responsesEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, &ParseError{Err: err}
	}
	if envelope.Error != nil && envelope.Error.Message != "" {
		return nil, &ServiceError{Message: envelope.Error.Message}
	}
	if status < 200 || status >= 300 {
		return nil, &ServiceError{Message: fmt.Sprintf("unexpected status %d", status)}
	}
	if len(envelope.Output) == 0 || len(envelope.Output[0].Content) == 0 {
		return nil, &ParseError{Err: errors.New("missing prediction in response output")}
	}

	text := envelope.Output[0].Content[0].Text
	if text == "" {
		return nil, &ParseError{Err: errors.New("empty prediction text")}
	}

	var prediction models.CarPreferencePrediction
	if err := json.Unmarshal([]byte(text), &prediction); err != nil {
		return nil, &ParseError{Err: err}
	}
	if prediction.RecommendedVehicleID == "" {
		return nil, &ParseError{Err: errors.New("prediction has no recommended vehicle id")}
	}
	return &prediction, nil
}

// predictionSchema is the strict JSON schema the service must answer with.
func predictionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"recommended_vehicle_id":            map[string]any{"type": "string"},
			"recommended_vehicle_reason":        map[string]any{"type": "string"},
			"recommended_protection_package_id": map[string]any{"type": []string{"string", "null"}},
			"recommended_protection_reason":     map[string]any{"type": []string{"string", "null"}},
			"recommended_addons": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"addon_id": map[string]any{"type": "string"},
						"reason":   map[string]any{"type": "string"},
					},
					"required":             []string{"addon_id", "reason"},
					"additionalProperties": false,
				},
			},
			"overall_explanation": map[string]any{"type": []string{"string", "null"}},
		},
		"required": []string{
			"recommended_vehicle_id",
			"recommended_vehicle_reason",
			"recommended_protection_package_id",
			"recommended_protection_reason",
			"recommended_addons",
			"overall_explanation",
		},
		"additionalProperties": false,
	}
}
