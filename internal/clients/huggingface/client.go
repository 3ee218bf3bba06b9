package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yungbote/luminus-backend/internal/pkg/httpx"
	"github.com/yungbote/luminus-backend/internal/pkg/logger"
	"github.com/yungbote/luminus-backend/internal/utils"
)

// Client wraps the hosted inference API used as an optional classification
// oracle. It is never on the ingestion critical path: callers must treat any
// error as a signal to fall back to the deterministic helpers below.
type Client interface {
	ClassifyText(ctx context.Context, text string, labels []string) (*Classification, error)
	AnalyzeSentiment(ctx context.Context, text string) (*Sentiment, error)
}

type Classification struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

const (
	zeroShotModel  = "facebook/bart-large-mnli"
	sentimentModel = "distilbert-base-uncased-finetuned-sst-2-english"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	maxRetries int
	log        *logger.Logger
}

// NewClientFromEnv builds the oracle client, or returns nil when no API token
// is configured. Callers must tolerate a nil client.
func NewClientFromEnv(log *logger.Logger) Client {
	token := utils.GetEnv("HF_API_TOKEN", "", log)
	if token == "" {
		log.Info("HF_API_TOKEN not set, classification oracle disabled")
		return nil
	}
	clientLog := log.With("client", "HuggingFace")
	baseURL := utils.GetEnv("HF_API_URL", "https://api-inference.huggingface.co/models", log)
	timeout := utils.GetEnvAsInt("HF_TIMEOUT_SECONDS", 10, log)
	retries := utils.GetEnvAsInt("HF_MAX_RETRIES", 3, log)

	return &client{
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		baseURL:    baseURL,
		token:      token,
		maxRetries: retries,
		log:        clientLog,
	}
}

func (c *client) ClassifyText(ctx context.Context, text string, labels []string) (*Classification, error) {
	payload := map[string]interface{}{
		"inputs": text,
		"parameters": map[string]interface{}{
			"candidate_labels": labels,
		},
	}
	body, err := c.post(ctx, zeroShotModel, payload)
	if err != nil {
		return nil, err
	}
	var out Classification
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode classification: %w", err)
	}
	if len(out.Labels) == 0 {
		return nil, fmt.Errorf("classification returned no labels")
	}
	return &out, nil
}

func (c *client) AnalyzeSentiment(ctx context.Context, text string) (*Sentiment, error) {
	body, err := c.post(ctx, sentimentModel, map[string]interface{}{"inputs": text})
	if err != nil {
		return nil, err
	}
	var out [][]Sentiment
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode sentiment: %w", err)
	}
	if len(out) == 0 || len(out[0]) == 0 {
		return nil, fmt.Errorf("sentiment returned no predictions")
	}
	best := out[0][0]
	for _, s := range out[0][1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	return &best, nil
}

func (c *client) post(ctx context.Context, model string, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/" + model
	backoff := 500 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(httpx.JitterSleep(backoff))
			backoff *= 2
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if httpx.IsRetryableError(err) {
				continue
			}
			return nil, err
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			if readErr != nil {
				return nil, readErr
			}
			return body, nil
		}

		lastErr = fmt.Errorf("inference API status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
		if !httpx.IsRetryableHTTPStatus(resp.StatusCode) {
			return nil, lastErr
		}
		backoff = httpx.RetryAfterDuration(resp, backoff, 30*time.Second)
		c.log.Warn("Inference call failed, retrying", "model", model, "attempt", attempt+1, "error", lastErr)
	}
	return nil, fmt.Errorf("inference API exhausted retries: %w", lastErr)
}

// NeutralSentiment is the deterministic fallback when the oracle is down or
// disabled.
func NeutralSentiment() *Sentiment {
	return &Sentiment{Label: "NEUTRAL", Score: 0.5}
}

// UniformClassification spreads probability evenly across the candidate
// labels, preserving caller ordering.
func UniformClassification(labels []string) *Classification {
	if len(labels) == 0 {
		return &Classification{}
	}
	scores := make([]float64, len(labels))
	for i := range scores {
		scores[i] = 1.0 / float64(len(labels))
	}
	return &Classification{Labels: append([]string(nil), labels...), Scores: scores}
}
