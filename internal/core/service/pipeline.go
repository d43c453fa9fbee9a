package service

import (
	"context"
	"fmt"

	"clawpic/internal/core/domain"
	"clawpic/internal/core/port"

	"github.com/rs/zerolog/log"
)

// Pipeline runs the two-stage generate-then-relay flow. The relay stage
// never starts before the generation result is fully available, and a
// generation failure skips the relay entirely.
type Pipeline struct {
	generator port.ImageGenerator
	relay     port.MessageRelay
}

func NewPipeline(generator port.ImageGenerator, relay port.MessageRelay) *Pipeline {
	return &Pipeline{generator: generator, relay: relay}
}

// Request carries one invocation's worth of options. Zero values fall back
// to the defaults in domain.
type Request struct {
	UserContext       string
	Mode              domain.Mode
	Channel           string
	Caption           string
	ReferenceImageURL string
	ImageCount        int
	AspectRatio       string
	OutputFormat      string
}

func (p *Pipeline) GenerateAndSend(ctx context.Context, request Request) (*domain.Summary, error) {
	mode, prompt := domain.BuildPrompt(request.UserContext, request.Mode)

	l := log.With().
		Str("mode", string(mode)).
		Str("channel", request.Channel).
		Logger()

	l.Info().Msg("handling request")
	l.Debug().Str("prompt", prompt).Msg("rendered prompt")

	caption := request.Caption
	if caption == "" {
		caption = domain.DefaultCaption
	}

	imageCount := request.ImageCount
	if imageCount == 0 {
		imageCount = domain.DefaultImageCount
	}

	aspectRatio := request.AspectRatio
	if aspectRatio == "" {
		aspectRatio = domain.DefaultAspectRatio
	}

	outputFormat := request.OutputFormat
	if outputFormat == "" {
		outputFormat = domain.DefaultOutputFormat
	}

	result, err := p.generator.Generate(ctx, domain.GenerationRequest{
		Prompt:            prompt,
		ReferenceImageURL: request.ReferenceImageURL,
		ImageCount:        imageCount,
		AspectRatio:       aspectRatio,
		OutputFormat:      outputFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("error generating image: %w", err)
	}

	imageURL := result.Images[0].URL

	err = p.relay.Send(ctx, domain.RelayMessage{
		Channel:  request.Channel,
		Caption:  caption,
		MediaURL: imageURL,
	})
	if err != nil {
		// Keep the generated URL visible so the relay can be retried by hand.
		l.Error().Err(err).Str("imageUrl", imageURL).Msg("relay failed after successful generation")
		return nil, fmt.Errorf("error relaying image %s: %w", imageURL, err)
	}

	return &domain.Summary{
		Success:       true,
		ImageURL:      imageURL,
		Channel:       request.Channel,
		Prompt:        request.UserContext,
		RevisedPrompt: result.RevisedPrompt,
	}, nil
}
