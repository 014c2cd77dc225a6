package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"printfolio/internal/config"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// ErrModelCapacity marks a tier-specific capacity/rate-limit rejection.
// The relay treats it as "try the next model"; every other error aborts.
var ErrModelCapacity = errors.New("model capacity exceeded")

type MistralServiceInterface interface {
	Complete(ctx context.Context, model string, prompt string) (string, error)
}

type MistralService struct {
	APIKey  string
	BaseURL string
	client  *resty.Client
}

func NewMistralService() *MistralService {
	mistralConfig := config.LoadMistralConfig()
	return &MistralService{
		APIKey:  mistralConfig.APIKey,
		BaseURL: mistralConfig.BaseURL,
		client:  resty.New().SetTimeout(120 * time.Second),
	}
}

// Complete runs one chat completion against a single model tier and returns
// the first choice's message content.
func (s *MistralService) Complete(ctx context.Context, model string, prompt string) (string, error) {
	if s.APIKey == "" {
		return "", fmt.Errorf("MISTRAL_API_KEY not set")
	}
	if s.client == nil {
		s.client = resty.New().SetTimeout(120 * time.Second)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": model,
			"messages": []map[string]string{
				{"role": "user", "content": prompt},
			},
		}).
		Post(s.BaseURL + "/chat/completions")
	if err != nil {
		return "", err
	}

	body := resp.String()
	if resp.StatusCode() == http.StatusTooManyRequests && strings.Contains(body, "service_tier_capacity_exceeded") {
		return "", fmt.Errorf("%s: %w", model, ErrModelCapacity)
	}
	if resp.IsError() {
		msg := gjson.Get(body, "message").String()
		if msg == "" {
			msg = body
		}
		return "", fmt.Errorf("mistral http %d: %s", resp.StatusCode(), msg)
	}

	return gjson.Get(body, "choices.0.message.content").String(), nil
}
