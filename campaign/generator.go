package campaign

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
	"github.com/cohere-ai/cohere-go/v2/option"

	"viralagent/types"
)

const defaultModel = "command-r-plus"

// ErrInvalidOutput marks model output that could not be parsed or validated
// into a CampaignPackage. There is no automatic repair or retry.
var ErrInvalidOutput = errors.New("model returned an invalid campaign package")

// ErrNotConfigured is returned when the generative API key is absent.
var ErrNotConfigured = errors.New("generative API key not configured")

// chatCaller is the slice of the cohere client the generator uses; tests
// substitute a fake.
type chatCaller interface {
	Chat(ctx context.Context, request *cohere.ChatRequest, opts ...option.RequestOption) (*cohere.NonStreamedChatResponse, error)
}

// Generator turns a product record into a CampaignPackage via a
// schema-constrained chat completion.
type Generator struct {
	chat  chatCaller
	model string
}

// NewGeneratorFromEnv builds a generator from COHERE_API_KEY and optional
// COHERE_MODEL. Without a key the generator is still returned; calls then
// fail with ErrNotConfigured.
func NewGeneratorFromEnv() *Generator {
	model := os.Getenv("COHERE_MODEL")
	if model == "" {
		model = defaultModel
	}

	apiKey := os.Getenv("COHERE_API_KEY")
	if apiKey == "" {
		return &Generator{model: model}
	}

	// Force HTTP/1.1 to avoid HTTP/2 protocol errors seen against the API.
	httpClient := &http.Client{
		Timeout: 90 * time.Second,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &Generator{chat: client, model: model}
}

// GenerateViralPackage sends the product record through the model and
// validates the structured response. Transport errors wrap the cause;
// malformed output yields ErrInvalidOutput.
func (g *Generator) GenerateViralPackage(ctx context.Context, data types.ProductData) (*types.CampaignPackage, error) {
	if g.chat == nil {
		return nil, ErrNotConfigured
	}

	resp, err := g.chat.Chat(ctx, &cohere.ChatRequest{
		Model:    cohere.String(g.model),
		Preamble: cohere.String(systemInstructions),
		Message:  buildPrompt(data),
		ResponseFormat: &cohere.ResponseFormat{
			Type: "json_object",
			JsonObject: &cohere.JsonResponseFormat{
				Schema: responseSchema,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("campaign generation failed: %w", err)
	}

	return ParsePackage(resp.Text)
}

// ParsePackage decodes and validates raw model output.
func ParsePackage(raw string) (*types.CampaignPackage, error) {
	var pkg types.CampaignPackage
	if err := json.Unmarshal([]byte(raw), &pkg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if err := validatePackage(&pkg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return &pkg, nil
}

func validatePackage(pkg *types.CampaignPackage) error {
	if pkg.CampaignAnalysis.TargetAudience == "" {
		return errors.New("missing campaign_analysis.target_audience")
	}
	if pkg.VideoAssets.HookTitle == "" || pkg.VideoAssets.ScriptVoiceover == "" {
		return errors.New("missing video_assets hook or script")
	}
	if len(pkg.VideoAssets.VisualStoryboard) == 0 {
		return errors.New("empty visual_storyboard")
	}
	for i, item := range pkg.VideoAssets.VisualStoryboard {
		if item.Time == "" || item.Visual == "" {
			return fmt.Errorf("storyboard item %d incomplete", i)
		}
	}
	if pkg.Metadata.Caption == "" {
		return errors.New("missing metadata.caption")
	}
	return nil
}
