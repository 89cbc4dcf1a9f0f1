// Package translate is a thin pass-through client for the external
// translation provider. The API shape follows the Google Cloud Translation
// v2 REST endpoints; responses are unwrapped into the flat objects the
// frontend consumes.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lessonup/lessonup-api/internal/config"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.TranslateBaseURL, "/"),
		apiKey:  cfg.TranslateAPIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Language is one entry of the provider's supported-language list, with
// Name rendered in the requested target language.
type Language struct {
	Language string `json:"language"`
	Name     string `json:"name"`
}

// Translation is the unwrapped result of a single translate call.
type Translation struct {
	TranslatedText         string `json:"translatedText"`
	DetectedSourceLanguage string `json:"detectedSourceLanguage,omitempty"`
	OriginalText           string `json:"originalText"`
}

type languagesResponse struct {
	Data struct {
		Languages []Language `json:"languages"`
	} `json:"data"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText         string `json:"translatedText"`
			DetectedSourceLanguage string `json:"detectedSourceLanguage"`
		} `json:"translations"`
	} `json:"data"`
}

// Languages fetches the provider's supported languages, named in target.
func (c *Client) Languages(ctx context.Context, target string) ([]Language, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("target", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/languages?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch languages: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translation provider returned status %d", resp.StatusCode)
	}

	var result languagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode languages: %w", err)
	}

	return result.Data.Languages, nil
}

// Translate sends text to the provider and returns the translation into
// target.
func (c *Client) Translate(ctx context.Context, text, target string) (*Translation, error) {
	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("q", text)
	form.Set("target", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to translate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translation provider returned status %d", resp.StatusCode)
	}

	var result translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode translation: %w", err)
	}

	if len(result.Data.Translations) == 0 {
		return nil, fmt.Errorf("translation provider returned no translations")
	}

	first := result.Data.Translations[0]
	return &Translation{
		TranslatedText:         first.TranslatedText,
		DetectedSourceLanguage: first.DetectedSourceLanguage,
		OriginalText:           text,
	}, nil
}
