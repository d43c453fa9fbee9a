package domain

import "fmt"

const (
	DefaultCaption      = "freshly generated image"
	DefaultImageCount   = 1
	DefaultAspectRatio  = "1:1"
	DefaultOutputFormat = "jpeg"

	MaxImageCount = 4
)

// GenerationRequest describes a single grok-imagine call. It is built fresh
// per invocation and never mutated after being handed to a generator.
type GenerationRequest struct {
	Prompt            string
	ReferenceImageURL string
	ImageCount        int
	AspectRatio       string
	OutputFormat      string
}

var aspectRatios = map[string]bool{
	"1:1":  true,
	"16:9": true,
	"9:16": true,
	"4:3":  true,
	"3:4":  true,
	"3:2":  true,
	"2:3":  true,
}

var outputFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
	"webp": true,
}

func (r GenerationRequest) Validate() error {
	if r.ImageCount < 1 || r.ImageCount > MaxImageCount {
		return fmt.Errorf("image count must be between 1 and %d, got %d", MaxImageCount, r.ImageCount)
	}

	if r.AspectRatio != "" && !aspectRatios[r.AspectRatio] {
		return fmt.Errorf("unsupported aspect ratio: %s", r.AspectRatio)
	}

	if !outputFormats[r.OutputFormat] {
		return fmt.Errorf("unsupported output format: %s", r.OutputFormat)
	}

	return nil
}

type GeneratedImage struct {
	URL         string
	ContentType string
	Width       int
	Height      int
}

// GenerationResult is read-only; callers only ever consume Images[0].
type GenerationResult struct {
	Images        []GeneratedImage
	RevisedPrompt string
}

// RelayMessage is delivered to the openclaw gateway exactly once,
// without retries.
type RelayMessage struct {
	Channel  string
	Caption  string
	MediaURL string
}

// Summary is the JSON object printed to stdout on success. Prompt holds the
// original user context, not the rendered template.
type Summary struct {
	Success       bool   `json:"success"`
	ImageURL      string `json:"imageUrl"`
	Channel       string `json:"channel"`
	Prompt        string `json:"prompt"`
	RevisedPrompt string `json:"revisedPrompt,omitempty"`
}
