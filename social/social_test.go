package social

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"viralagent/config"
)

func TestTikTokPostSkipsWithoutToken(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	res := NewTikTok("", srv.URL).Post(context.Background(), "https://cdn.example/v.mp4", "title")
	if res.Success || res.Reason != "no token" {
		t.Fatalf("result = %+v, want no-token soft skip", res)
	}
	if calls != 0 {
		t.Fatalf("API called %d times despite missing token", calls)
	}
}

func TestTikTokPostTruncatesTitle(t *testing.T) {
	var got tiktokInitRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok" {
			t.Errorf("Authorization = %q", auth)
		}
		if !strings.HasSuffix(r.URL.Path, "/v2/post/publish/video/init/") {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"data": {"publish_id": "p1"}}`))
	}))
	defer srv.Close()

	long := strings.Repeat("é", 300)
	res := NewTikTok("tok", srv.URL).Post(context.Background(), "https://cdn.example/v.mp4", long)
	if !res.Success {
		t.Fatalf("result = %+v", res)
	}
	if n := len([]rune(got.PostInfo.Title)); n != config.TikTokTitleLimit {
		t.Fatalf("title length = %d runes, want %d", n, config.TikTokTitleLimit)
	}
	if got.SourceInfo.Source != "PULL_FROM_URL" {
		t.Errorf("source = %q", got.SourceInfo.Source)
	}
}

func TestTikTokPostReportsAPIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": "spam_risk"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	res := NewTikTok("tok", srv.URL).Post(context.Background(), "https://cdn.example/v.mp4", "t")
	if res.Success || res.Error == "" {
		t.Fatalf("result = %+v, want API failure surfaced", res)
	}
}

func TestInstagramPostSkipsWithoutCredentials(t *testing.T) {
	res := NewInstagram("", "", "").Post(context.Background(), "https://cdn.example/v.mp4", "cap")
	if res.Success || res.Reason != "no credentials" {
		t.Fatalf("result = %+v, want no-credentials soft skip", res)
	}

	res = NewInstagram("tok", "", "").Post(context.Background(), "https://cdn.example/v.mp4", "cap")
	if res.Success || res.Reason != "no credentials" {
		t.Fatalf("result = %+v, want skip when business id missing", res)
	}
}

func TestInstagramPostContainerThenPublish(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch {
		case strings.HasSuffix(r.URL.Path, "/media"):
			if r.URL.Query().Get("media_type") != "REELS" {
				t.Errorf("media_type = %q", r.URL.Query().Get("media_type"))
			}
			if r.URL.Query().Get("access_token") != "tok" {
				t.Errorf("access_token = %q", r.URL.Query().Get("access_token"))
			}
			w.Write([]byte(`{"id": "container-1"}`))
		case strings.HasSuffix(r.URL.Path, "/media_publish"):
			if r.URL.Query().Get("creation_id") != "container-1" {
				t.Errorf("creation_id = %q", r.URL.Query().Get("creation_id"))
			}
			w.Write([]byte(`{"id": "media-9"}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	g := NewInstagram("tok", "biz", srv.URL)
	g.ProcessingWait = time.Millisecond

	res := g.Post(context.Background(), "https://cdn.example/v.mp4", "caption")
	if !res.Success {
		t.Fatalf("result = %+v", res)
	}
	if len(paths) != 2 || !strings.Contains(paths[0], "/biz/media") || !strings.Contains(paths[1], "/biz/media_publish") {
		t.Fatalf("call order = %v", paths)
	}
}

func TestInstagramPostReportsContainerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "bad video"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	g := NewInstagram("tok", "biz", srv.URL)
	g.ProcessingWait = time.Millisecond

	res := g.Post(context.Background(), "https://cdn.example/v.mp4", "caption")
	if res.Success || !strings.Contains(res.Error, "container create failed") {
		t.Fatalf("result = %+v", res)
	}
}
