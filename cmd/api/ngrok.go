package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const webhookPath = "/webhook/telegram"

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

type ngrokProbe struct {
	apiBase  string
	attempts int
	interval time.Duration
	client   *http.Client
}

func newNgrokProbe(apiBase string) ngrokProbe {
	return ngrokProbe{
		apiBase:  strings.TrimRight(apiBase, "/"),
		attempts: 10,
		interval: 3 * time.Second,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// webhookURL returns the Telegram webhook URL behind the first HTTPS tunnel.
// ngrok may still be starting, so the API is polled a few times.
func (p ngrokProbe) webhookURL(ctx context.Context) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= p.attempts; attempt++ {
		publicURL, err := p.fetch(ctx)
		if err == nil && publicURL != "" {
			return strings.TrimRight(publicURL, "/") + webhookPath, nil
		}
		lastErr = err
		if lastErr == nil {
			lastErr = fmt.Errorf("no active tunnels")
		}

		if attempt < p.attempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(p.interval):
			}
		}
	}
	return "", fmt.Errorf("ngrok: giving up after %d attempts: %w", p.attempts, lastErr)
}

func (p ngrokProbe) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiBase+"/api/tunnels", nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("decode tunnels: %w", err)
	}

	// Prefer HTTPS tunnels
	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", nil
}
