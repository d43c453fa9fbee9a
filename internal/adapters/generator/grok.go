package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"clawpic/internal/core/domain"

	"github.com/rs/zerolog/log"
)

// Grok provides a wrapper for the fal.run grok-imagine API.
type Grok struct {
	apiKey           string
	generateEndpoint string
	editEndpoint     string
}

func NewGrok(generateEndpoint, editEndpoint, apiKey string) *Grok {
	return &Grok{
		apiKey:           apiKey,
		generateEndpoint: generateEndpoint,
		editEndpoint:     editEndpoint,
	}
}

type grokRequest struct {
	Prompt        string `json:"prompt"`
	NumImages     int    `json:"num_images"`
	AspectRatio   string `json:"aspect_ratio"`
	OutputFormat  string `json:"output_format"`
	InputImageURL string `json:"image_url,omitempty"`
}

type grokResponse struct {
	Images []struct {
		URL         string `json:"url"`
		ContentType string `json:"content_type"`
		Width       int    `json:"width"`
		Height      int    `json:"height"`
	} `json:"images"`
	RevisedPrompt string          `json:"revised_prompt"`
	Error         json.RawMessage `json:"error"`
}

func (g *Grok) Generate(ctx context.Context, request domain.GenerationRequest) (*domain.GenerationResult, error) {
	if g.apiKey == "" {
		return nil, &domain.ConfigError{Missing: "FAL_KEY"}
	}

	if err := request.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation request: %w", err)
	}

	grokReq := grokRequest{
		Prompt:        request.Prompt,
		NumImages:     request.ImageCount,
		AspectRatio:   request.AspectRatio,
		OutputFormat:  request.OutputFormat,
		InputImageURL: request.ReferenceImageURL,
	}

	endpoint := g.generateEndpoint
	if request.ReferenceImageURL != "" {
		endpoint = g.editEndpoint
	}

	payloadBuf := new(bytes.Buffer)
	err := json.NewEncoder(payloadBuf).Encode(grokReq)
	if err != nil {
		return nil, fmt.Errorf("error encoding grok-imagine request: %w", err)
	}

	body, err := g.postRequest(ctx, endpoint, payloadBuf)
	if err != nil {
		return nil, err
	}

	log.Debug().Bytes("body", body).Msg("grok-imagine response")

	var decoded grokResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &domain.UpstreamError{Message: "error decoding grok-imagine response", Body: string(body)}
	}

	if len(decoded.Error) > 0 && string(decoded.Error) != "null" {
		return nil, &domain.UpstreamError{Message: "grok-imagine rejected request", Body: string(body)}
	}

	if len(decoded.Images) == 0 {
		return nil, &domain.UpstreamError{Message: "no image returned"}
	}

	result := &domain.GenerationResult{RevisedPrompt: decoded.RevisedPrompt}
	for _, img := range decoded.Images {
		result.Images = append(result.Images, domain.GeneratedImage{
			URL:         img.URL,
			ContentType: img.ContentType,
			Width:       img.Width,
			Height:      img.Height,
		})
	}

	return result, nil
}

func (g *Grok) postRequest(ctx context.Context, url string, payloadBuf *bytes.Buffer) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, payloadBuf)
	if err != nil {
		log.Error().Err(err).Msg("error creating POST request for grok-imagine")
		return nil, err
	}

	req.Header.Add("Authorization", "Key "+g.apiKey)
	req.Header.Add("Content-Type", "application/json")

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error executing grok-imagine request: %w", err)
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading grok-imagine response: %w", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.UpstreamError{
			Message: fmt.Sprintf("grok-imagine returned status %d", res.StatusCode),
			Body:    string(body),
		}
	}

	return body, nil
}
