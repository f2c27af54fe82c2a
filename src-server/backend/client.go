// Package backend talks to the remote timezone service that stores the
// users' timezones.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"tzbot/src-server/model"
)

type Option func(*Client)

// WithLatencyObserver reports the duration of every backend round trip.
func WithLatencyObserver(observe func(time.Duration)) Option {
	return func(c *Client) {
		c.observe = observe
	}
}

// Client has no mutable state after construction and is safe for
// concurrent use.
type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
	observe    func(time.Duration)
}

func New(baseURL, clientID, token string, httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authHeader: "Bearer " + clientID + "_" + token,
		httpClient: httpClient,
		observe:    func(time.Duration) {},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type timezoneRecord struct {
	Timezone string `json:"timezone"`
}

type errorBody struct {
	Error string `json:"error"`
}

type setTimezoneBody struct {
	Timezone      string `json:"timezone"`
	DiscordUserID string `json:"discord_user_id"`
}

// GetTimezone fetches the timezone registered for userID.
func (c *Client) GetTimezone(ctx context.Context, userID string) (model.TimezoneQueryResult, error) {
	// "/timezones/" is the collection, never a single user
	if userID == "" {
		return model.TimezoneQueryResult{}, ErrEmptyUserID
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/timezones/"+url.PathEscape(userID), nil)
	if err != nil {
		return model.TimezoneQueryResult{}, fmt.Errorf("GetTimezone: can't create request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)

	body, statusCode, err := c.do(req)
	if err != nil {
		return model.TimezoneQueryResult{}, fmt.Errorf("GetTimezone: %w", err)
	}

	switch {
	case statusCode == http.StatusForbidden:
		var errBody errorBody
		if err := json.Unmarshal(body, &errBody); err != nil {
			return model.TimezoneQueryResult{}, fmt.Errorf("GetTimezone: can't decode forbidden body: %w", err)
		}
		return model.NewForbiddenResult(errBody.Error), nil
	case statusCode < 200 || statusCode > 299:
		return model.TimezoneQueryResult{}, fmt.Errorf("GetTimezone: bad status code: %d", statusCode)
	}

	var records []timezoneRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return model.TimezoneQueryResult{}, fmt.Errorf("GetTimezone: can't decode body: %w", err)
	}
	if len(records) == 0 {
		return model.NewEmptyResult(), nil
	}
	return model.NewFoundResult(records[0].Timezone), nil
}

// SetTimezone registers timezone for userID. A non-2xx answer is returned
// as *SetError.
func (c *Client) SetTimezone(ctx context.Context, userID, timezone string) error {
	reqBody, err := json.Marshal(setTimezoneBody{
		Timezone:      timezone,
		DiscordUserID: userID,
	})
	if err != nil {
		return fmt.Errorf("SetTimezone: can't marshal body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/timezones/", bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("SetTimezone: can't create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.authHeader)

	body, statusCode, err := c.do(req)
	if err != nil {
		return fmt.Errorf("SetTimezone: %w", err)
	}
	if statusCode >= 200 && statusCode <= 299 {
		return nil
	}

	setErr := &SetError{StatusCode: statusCode}
	var errBody errorBody
	if err := json.Unmarshal(body, &errBody); err == nil {
		setErr.Message = errBody.Error
	}
	return setErr
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	startTimer := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("can't do request: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	c.observe(time.Since(startTimer))
	if err != nil {
		return nil, 0, fmt.Errorf("can't read body: %w", err)
	}
	return body, resp.StatusCode, nil
}
