package client

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/pkg/errors"

	"github.com/SviatSloboda/MightyPC-sub001/internal/misc"
)

type completionRequest struct {
	Model    string              `json:"model"`
	Messages []completionMessage `json:"messages"`
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
}

// CreateCompletion sends prompt to the chat-completion API and returns the
// first choice's message text. Replies are cached in Redis keyed by the
// prompt hash, identical preference pairs do not hit the API twice.
func (c Client) CreateCompletion(ctx context.Context, prompt string) (string, error) {
	promptHash := sha256.Sum256([]byte(prompt))
	cacheKey := "CMPL-" + hex.EncodeToString(promptHash[:])
	if c.Redis != nil {
		cached, err := c.Redis.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Logger.Infof("CreateCompletion: Cache found, key: %s", cacheKey)
			return cached, nil
		}
		if err != redis.Nil {
			c.Logger.Errorf("CreateCompletion: Error getting Redis cache with key: %s, err: %v", cacheKey, err)
		}
	}

	reqBody, err := json.Marshal(completionRequest{
		Model:    c.CompletionModel,
		Messages: []completionMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", errors.Wrap(err, "CreateCompletion: error marshalling completion request")
	}

	req, err := newRequest(http.MethodPost, c.CompletionAPIURL, bytes.NewReader(reqBody))
	if err != nil {
		return "", errors.Wrapf(err, "CreateCompletion: error creating HTTP request to: %s", c.CompletionAPIURL)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.CompletionAPIKey)

	c.Logger.Infof("CreateCompletion: Sending request to %s", c.CompletionAPIURL)
	resp, err := c.Do(req.WithContext(ctx))
	if err != nil {
		return "", errors.Wrapf(err, "CreateCompletion: error doing request to: %s", c.CompletionAPIURL)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.Logger.Errorf("CreateCompletion: error closing response body, err: %v", err)
		}
	}()

	respBody, err := io.ReadAll(http.MaxBytesReader(nil, resp.Body, 300*1024))
	if err != nil {
		return "", errors.Wrapf(err, "CreateCompletion: error reading completion API response body, status: %s", resp.Status)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("CreateCompletion: completion API returned status: %s, body:\n%s",
			resp.Status, misc.BytesLimit(respBody, 2000))
	}
	cmplResp := completionResponse{}
	if err = json.Unmarshal(respBody, &cmplResp); err != nil {
		return "", errors.Wrapf(err, "CreateCompletion: error unmarshalling completion API response body, status: %s, body:\n%s",
			resp.Status, misc.BytesLimit(respBody, 2000))
	}
	if len(cmplResp.Choices) == 0 {
		return "", errors.Errorf("CreateCompletion: completion API returned no choices, body:\n%s",
			misc.BytesLimit(respBody, 2000))
	}

	content := cmplResp.Choices[0].Message.Content
	if c.Redis != nil {
		if err = c.Redis.Set(ctx, cacheKey, content, 24*time.Hour).Err(); err != nil {
			c.Logger.Errorf("CreateCompletion: Error setting Redis cache with key: %s, err: %v", cacheKey, err)
		}
	}
	return content, nil
}
