package social

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"viralagent/config"
)

const defaultTikTokAPIURL = "https://open.tiktokapis.com"

// TikTok publishes videos through the pull-from-URL publish API.
type TikTok struct {
	httpClient *http.Client
	apiURL     string
	token      string
}

// NewTikTok builds a publisher with an explicit token. An empty apiURL
// selects the production endpoint.
func NewTikTok(token, apiURL string) *TikTok {
	if apiURL == "" {
		apiURL = defaultTikTokAPIURL
	}
	return &TikTok{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		apiURL:     apiURL,
		token:      token,
	}
}

// NewTikTokFromEnv builds a publisher from TIKTOK_ACCESS_TOKEN. A missing
// token is allowed; posts then soft-skip.
func NewTikTokFromEnv() *TikTok {
	return NewTikTok(os.Getenv("TIKTOK_ACCESS_TOKEN"), os.Getenv("TIKTOK_API_URL"))
}

type tiktokPostInfo struct {
	Title        string `json:"title"`
	PrivacyLevel string `json:"privacy_level"`
}

type tiktokSourceInfo struct {
	Source   string `json:"source"`
	VideoURL string `json:"video_url"`
}

type tiktokInitRequest struct {
	PostInfo   tiktokPostInfo   `json:"post_info"`
	SourceInfo tiktokSourceInfo `json:"source_info"`
}

// Post initiates a pull-from-URL publish of the video. The title is truncated
// to the platform limit. Without a token the post is skipped, not failed.
func (t *TikTok) Post(ctx context.Context, videoURL, title string) PostResult {
	if t.token == "" {
		log.Println("tiktok token missing; skipping post")
		return PostResult{Reason: "no token"}
	}

	log.Printf("posting video to tiktok: %q", truncateRunes(title, 40))

	body, err := json.Marshal(tiktokInitRequest{
		PostInfo: tiktokPostInfo{
			Title:        truncateRunes(title, config.TikTokTitleLimit),
			PrivacyLevel: "PUBLIC_TO_EVERYONE",
		},
		SourceInfo: tiktokSourceInfo{
			Source:   "PULL_FROM_URL",
			VideoURL: videoURL,
		},
	})
	if err != nil {
		return PostResult{Error: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		t.apiURL+"/v2/post/publish/video/init/", bytes.NewReader(body))
	if err != nil {
		return PostResult{Error: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return PostResult{Error: err.Error()}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return PostResult{Error: fmt.Sprintf("tiktok publish init returned %s: %s", resp.Status, raw)}
	}

	log.Println("tiktok post initiated")
	return PostResult{Success: true, Data: json.RawMessage(raw)}
}
