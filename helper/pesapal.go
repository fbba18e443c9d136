package helper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"foundation_backend/config"
	"foundation_backend/model"
)

var ErrGatewayAuth = errors.New("pesapal authentication failed")

// GatewayError carries the upstream HTTP status and body for operator
// diagnosis when Pesapal rejects a call.
type GatewayError struct {
	Status int
	Body   string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("pesapal gateway error: status=%d body=%s", e.Status, e.Body)
}

// PesapalClient talks to the Pesapal v3 API. Every call derives a fresh
// bearer token; the upstream tokens are short-lived and the request volume
// here does not justify caching them.
type PesapalClient struct {
	cfg  config.PesapalConfig
	http *http.Client
}

func NewPesapalClient(cfg config.PesapalConfig) *PesapalClient {
	return &PesapalClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

func (p *PesapalClient) Config() config.PesapalConfig {
	return p.cfg
}

func (p *PesapalClient) RequestToken(ctx context.Context) (string, error) {
	body, err := json.Marshal(model.PesapalAuthRequest{
		ConsumerKey:    p.cfg.ConsumerKey,
		ConsumerSecret: p.cfg.ConsumerSecret,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.cfg.BaseURL+"/api/Auth/RequestToken", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGatewayAuth, err)
	}
	defer resp.Body.Close()

	var auth model.PesapalAuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return "", fmt.Errorf("%w: decode: %v", ErrGatewayAuth, err)
	}
	if resp.StatusCode != http.StatusOK || auth.Token == "" {
		return "", fmt.Errorf("%w: status=%d", ErrGatewayAuth, resp.StatusCode)
	}
	return auth.Token, nil
}

func (p *PesapalClient) SubmitOrder(ctx context.Context, token string, order model.PesapalOrderRequest) (*model.PesapalOrderResponse, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.cfg.BaseURL+"/api/Transactions/SubmitOrderRequest", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, &GatewayError{Status: resp.StatusCode, Body: string(raw)}
	}

	var out model.PesapalOrderResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &GatewayError{Status: resp.StatusCode, Body: string(raw)}
	}
	if out.Error != nil && out.Error.Message != "" {
		return nil, &GatewayError{Status: resp.StatusCode, Body: out.Error.Message}
	}
	return &out, nil
}

func (p *PesapalClient) TransactionStatus(ctx context.Context, token, trackingID string) (*model.PesapalStatusResponse, error) {
	u := fmt.Sprintf("%s/api/Transactions/GetTransactionStatus?orderTrackingId=%s",
		p.cfg.BaseURL, url.QueryEscape(trackingID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, &GatewayError{Status: resp.StatusCode, Body: string(raw)}
	}

	var out model.PesapalStatusResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &GatewayError{Status: resp.StatusCode, Body: string(raw)}
	}
	return &out, nil
}
