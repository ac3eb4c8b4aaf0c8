package social

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"viralagent/config"
)

const defaultGraphAPIURL = "https://graph.facebook.com/v18.0"

// Instagram publishes reels through the Graph API container flow: create a
// media container referencing the video URL, give the platform a fixed head
// start to ingest it, then publish the container.
type Instagram struct {
	httpClient *http.Client
	apiURL     string
	token      string
	businessID string

	// ProcessingWait is the fixed delay between container creation and
	// publish. Zero takes the package default.
	ProcessingWait time.Duration
}

// NewInstagram builds a publisher with explicit credentials.
func NewInstagram(token, businessID, apiURL string) *Instagram {
	if apiURL == "" {
		apiURL = defaultGraphAPIURL
	}
	return &Instagram{
		httpClient:     &http.Client{Timeout: 20 * time.Second},
		apiURL:         apiURL,
		token:          token,
		businessID:     businessID,
		ProcessingWait: config.InstagramProcessingWait,
	}
}

// NewInstagramFromEnv builds a publisher from INSTAGRAM_ACCESS_TOKEN and
// INSTAGRAM_BUSINESS_ACCOUNT_ID. Missing credentials soft-skip posts.
func NewInstagramFromEnv() *Instagram {
	return NewInstagram(
		os.Getenv("INSTAGRAM_ACCESS_TOKEN"),
		os.Getenv("INSTAGRAM_BUSINESS_ACCOUNT_ID"),
		os.Getenv("INSTAGRAM_API_URL"),
	)
}

// Post creates a REELS container for the video, waits the fixed processing
// delay, and publishes the container. Without both credentials the post is
// skipped, not failed.
func (g *Instagram) Post(ctx context.Context, videoURL, caption string) PostResult {
	if g.token == "" || g.businessID == "" {
		log.Println("instagram credentials missing; skipping post")
		return PostResult{Reason: "no credentials"}
	}

	containerID, err := g.createContainer(ctx, videoURL, caption)
	if err != nil {
		return PostResult{Error: err.Error()}
	}
	log.Printf("instagram container created: %s", containerID)

	// The container exposes a status edge, but we only grant a fixed head
	// start before publishing.
	wait := g.ProcessingWait
	if wait <= 0 {
		wait = config.InstagramProcessingWait
	}
	timer := time.NewTimer(wait)
	select {
	case <-ctx.Done():
		timer.Stop()
		return PostResult{Error: ctx.Err().Error()}
	case <-timer.C:
	}

	mediaID, err := g.publishContainer(ctx, containerID)
	if err != nil {
		return PostResult{Error: err.Error()}
	}

	log.Printf("instagram post published: %s", mediaID)
	data, _ := json.Marshal(map[string]string{"id": mediaID})
	return PostResult{Success: true, Data: data}
}

func (g *Instagram) createContainer(ctx context.Context, videoURL, caption string) (string, error) {
	params := url.Values{}
	params.Set("media_type", "REELS")
	params.Set("video_url", videoURL)
	params.Set("caption", caption)
	params.Set("access_token", g.token)

	id, err := g.postForID(ctx, fmt.Sprintf("%s/%s/media", g.apiURL, g.businessID), params)
	if err != nil {
		return "", fmt.Errorf("instagram container create failed: %w", err)
	}
	return id, nil
}

func (g *Instagram) publishContainer(ctx context.Context, containerID string) (string, error) {
	params := url.Values{}
	params.Set("creation_id", containerID)
	params.Set("access_token", g.token)

	id, err := g.postForID(ctx, fmt.Sprintf("%s/%s/media_publish", g.apiURL, g.businessID), params)
	if err != nil {
		return "", fmt.Errorf("instagram publish failed: %w", err)
	}
	return id, nil
}

// postForID issues a parameterized POST and returns the id field of the JSON
// response, the shape both Graph calls share.
func (g *Instagram) postForID(ctx context.Context, endpoint string, params url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("status %s: %s", resp.Status, raw)
	}

	var parsed struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode failed: %w", err)
	}
	if parsed.ID == "" {
		return "", fmt.Errorf("response carried no id: %s", raw)
	}
	return parsed.ID, nil
}
