package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"viralagent/auth"
)

const (
	tiktokAuthorizeURL = "https://www.tiktok.com/v2/auth/authorize/"
	tiktokTokenURL     = "https://open.tiktokapis.com/v2/oauth/token/"
	tiktokScopes       = "user.info.basic,video.upload,video.publish"
)

// RegisterAuthRoutes registers the PKCE authorization flow for the TikTok
// publishing token.
func RegisterAuthRoutes(router *gin.Engine, store auth.VerifierStore) {
	router.GET("/api/auth/tiktok", func(c *gin.Context) {
		handleAuthStart(c, store)
	})
	router.GET("/api/auth/tiktok/callback", func(c *gin.Context) {
		handleAuthCallback(c, store)
	})
	router.GET("/api/auth/debug", handleAuthDebug)
}

// handleAuthStart generates a verifier, stores it under a fresh state, and
// redirects the browser to the platform's authorization page.
func handleAuthStart(c *gin.Context, store auth.VerifierStore) {
	clientKey := os.Getenv("TIKTOK_CLIENT_KEY")
	if clientKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "TIKTOK_CLIENT_KEY is not configured",
		})
		return
	}

	verifier, err := auth.NewVerifier()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "could not generate code verifier",
		})
		return
	}

	state := uuid.NewString()
	if err := store.Put(c.Request.Context(), state, verifier); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "could not store code verifier",
		})
		return
	}

	q := url.Values{}
	q.Set("client_key", clientKey)
	q.Set("scope", tiktokScopes)
	q.Set("lang", "en")
	q.Set("redirect_uri", redirectURI(c))
	q.Set("response_type", "code")
	q.Set("state", state)
	q.Set("code_challenge", auth.Challenge(verifier))
	q.Set("code_challenge_method", "S256")

	c.Redirect(http.StatusFound, tiktokAuthorizeURL+"?"+q.Encode())
}

// handleAuthCallback claims the stored verifier by state and exchanges the
// authorization code for tokens.
func handleAuthCallback(c *gin.Context, store auth.VerifierStore) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "missing code or state",
		})
		return
	}

	verifier, ok, err := store.Take(c.Request.Context(), state)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "verifier lookup failed",
		})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "unknown or expired authorization state",
		})
		return
	}

	form := url.Values{}
	form.Set("client_key", os.Getenv("TIKTOK_CLIENT_KEY"))
	form.Set("client_secret", os.Getenv("TIKTOK_CLIENT_SECRET"))
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", redirectURI(c))
	form.Set("code_verifier", verifier)

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost,
		tiktokTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Cache-Control", "no-cache")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "token exchange failed",
			"details": err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("token exchange returned %s: %s", resp.Status, raw)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "token exchange failed",
			"details": string(raw),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    json.RawMessage(raw),
	})
}

// handleAuthDebug echoes the redirect URI this deployment would send, which
// must match the platform's app configuration exactly.
func handleAuthDebug(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"redirect_uri": redirectURI(c),
	})
}

// redirectURI prefers the configured public base URL and otherwise rebuilds it
// from proxy headers.
func redirectURI(c *gin.Context) string {
	base := os.Getenv("TIKTOK_REDIRECT_BASE_URL")
	if base == "" {
		proto := c.GetHeader("X-Forwarded-Proto")
		if proto == "" {
			proto = "https"
		}
		base = fmt.Sprintf("%s://%s", proto, c.Request.Host)
	}
	return strings.TrimRight(base, "/") + "/api/auth/tiktok/callback"
}
