package workersai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	DefaultBaseURL = "https://api.cloudflare.com/client/v4"
	DefaultModel   = "@cf/meta/llama-3-8b-instruct"
)

type Config struct {
	BaseURL   string
	AccountID string
	Token     string
	Model     string
	Timeout   time.Duration
}

type WorkersAIClient struct {
	baseUrl    string
	accountId  string
	token      string
	model      string
	httpClient *http.Client
}

func NewWorkersAIClient(cfg Config) *WorkersAIClient {
	baseUrl := cfg.BaseURL
	if baseUrl == "" {
		baseUrl = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &WorkersAIClient{
		baseUrl:    strings.TrimSuffix(baseUrl, "/"),
		accountId:  cfg.AccountID,
		token:      cfg.Token,
		model:      model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *WorkersAIClient) runUrl() string {
	if c.accountId == "" {
		return c.baseUrl + "/ai/run/" + c.model
	}
	return c.baseUrl + "/accounts/" + c.accountId + "/ai/run/" + c.model
}

// Summarize runs the model with prompt as the single user message.
func (c *WorkersAIClient) Summarize(ctx context.Context, prompt string) (string, error) {
	reqBody := RunRequest{
		Messages: []Message{{Role: "user", Content: prompt}},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal run request (workers ai): %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.runUrl(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request (workers ai): %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("run model (workers ai): %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body (workers ai): %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if msg := gjson.GetBytes(responseBody, "errors.0.message"); msg.Exists() {
			return "", fmt.Errorf("workers ai error (status %d): %s", resp.StatusCode, msg.String())
		}
		return "", fmt.Errorf("workers ai API error status %d", resp.StatusCode)
	}

	if !gjson.ValidBytes(responseBody) {
		return "", fmt.Errorf("parse run response (workers ai): invalid JSON")
	}

	// The REST API wraps the model output in "result"; bindings return it bare.
	if text := gjson.GetBytes(responseBody, "result.response"); text.Exists() {
		return text.String(), nil
	}
	return gjson.GetBytes(responseBody, "response").String(), nil
}
