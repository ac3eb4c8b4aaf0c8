package video

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"viralagent/config"
	"viralagent/types"
)

const defaultRenderURL = "https://api.shotstack.io/v1/render"

// ErrRenderTimeout is returned when a render job does not reach a terminal
// state within the polling budget.
var ErrRenderTimeout = errors.New("video rendering timed out")

// Client submits slideshow render jobs and polls them to completion.
type Client struct {
	httpClient *http.Client
	renderURL  string
	apiKey     string

	// PollInterval and PollBudget bound WaitForRender; zero values take the
	// package defaults.
	PollInterval time.Duration
	PollBudget   int
}

// NewClient builds a render client. An empty renderURL selects the hosted
// endpoint.
func NewClient(apiKey, renderURL string) *Client {
	if renderURL == "" {
		renderURL = defaultRenderURL
	}
	return &Client{
		httpClient:   &http.Client{Timeout: 20 * time.Second},
		renderURL:    renderURL,
		apiKey:       apiKey,
		PollInterval: config.RenderPollInterval,
		PollBudget:   config.RenderPollBudget,
	}
}

// NewClientFromEnv builds a render client from SHOTSTACK_API_KEY. A missing
// key is allowed; submissions then soft-skip.
func NewClientFromEnv() *Client {
	return NewClient(os.Getenv("SHOTSTACK_API_KEY"), os.Getenv("SHOTSTACK_API_URL"))
}

// BuildSlideshow turns a product into a render request: up to 5 image clips
// of 3 seconds each with a zoom effect, plus a price caption overlaying the
// first 15 seconds.
func BuildSlideshow(product types.Product) RenderRequest {
	images := product.ImageURLs
	if len(images) == 0 && product.MainImageURL != "" {
		images = []string{product.MainImageURL}
	}
	if len(images) > config.MaxSlideshowClips {
		images = images[:config.MaxSlideshowClips]
	}

	clips := make([]Clip, 0, len(images)+1)
	for i, src := range images {
		clips = append(clips, Clip{
			Asset:  Asset{Type: "image", Src: src},
			Start:  float64(i * config.ClipSeconds),
			Length: config.ClipSeconds,
			Effect: "zoomIn",
		})
	}

	clips = append(clips, Clip{
		Asset: Asset{
			Type: "html",
			HTML: fmt.Sprintf(`<p style="color: #ffffff; font-size: 40px; font-weight: bold; background: rgba(0,0,0,0.5); padding: 20px;">%s USD</p>`, product.SalePrice),
			CSS:  `p { font-family: "Montserrat", sans-serif; text-align: center; }`,
			Width:  600,
			Height: 200,
		},
		Start:    0,
		Length:   config.PriceCaptionSeconds,
		Position: "center",
	})

	return RenderRequest{
		Timeline: Timeline{Tracks: []Track{{Clips: clips}}},
		Output:   Output{Format: "mp4", Resolution: "hd"},
	}
}

// GenerateProductVideo submits a slideshow render for the product. A missing
// API key or an API failure yields an unsuccessful result with a reason
// rather than an error; the orchestrator decides whether that is fatal.
func (c *Client) GenerateProductVideo(ctx context.Context, product types.Product) GenerateResult {
	if c.apiKey == "" {
		log.Println("render API key missing; skipping video generation")
		return GenerateResult{Reason: "render API key not configured"}
	}

	log.Printf("submitting slideshow render for %q", product.Title)

	body, err := json.Marshal(BuildSlideshow(product))
	if err != nil {
		return GenerateResult{Reason: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.renderURL, bytes.NewReader(body))
	if err != nil {
		return GenerateResult{Reason: err.Error()}
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return GenerateResult{Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return GenerateResult{Reason: fmt.Sprintf("render submit returned status %s", resp.Status)}
	}

	var parsed struct {
		Response struct {
			ID string `json:"id"`
		} `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return GenerateResult{Reason: fmt.Sprintf("render submit decode failed: %v", err)}
	}

	log.Printf("render started: %s", parsed.Response.ID)
	return GenerateResult{Success: true, RenderID: parsed.Response.ID}
}

// RenderStatus probes the job once.
func (c *Client) RenderStatus(ctx context.Context, renderID string) (*RenderJob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.renderURL+"/"+renderID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("render status request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("render status returned %s", resp.Status)
	}

	var parsed struct {
		Response RenderJob `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("render status decode failed: %w", err)
	}
	return &parsed.Response, nil
}

// WaitForRender polls the job on a fixed interval until it reaches a terminal
// state, returning the output URL on success. The wait is bounded by the poll
// budget and is cancellable through ctx. A terminal status on the first probe
// returns without sleeping.
func (c *Client) WaitForRender(ctx context.Context, renderID string) (string, error) {
	interval := c.PollInterval
	if interval <= 0 {
		interval = config.RenderPollInterval
	}
	budget := c.PollBudget
	if budget <= 0 {
		budget = config.RenderPollBudget
	}

	for attempt := 1; attempt <= budget; attempt++ {
		job, err := c.RenderStatus(ctx, renderID)
		if err != nil {
			return "", err
		}

		switch job.Status {
		case StatusDone:
			log.Printf("render %s complete: %s", renderID, job.URL)
			return job.URL, nil
		case StatusFailed:
			return "", fmt.Errorf("video rendering failed: %s", job.Error)
		}

		if attempt == budget {
			break
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	return "", ErrRenderTimeout
}
