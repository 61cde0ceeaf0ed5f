// Package paygate is the HTTP client for the online payment gateway, the
// second channel payments arrive through. The gateway owns its response
// schema; the client only decodes JSON and hands the raw container to the
// ledger normalizer.
package paygate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"waterbill-backend/internal/logger"
	"waterbill-backend/internal/repository"

	"github.com/google/uuid"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

var _ repository.OnlinePaymentSource = (*Client)(nil)

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchSubmissions retrieves the online payment submissions recorded for an
// account. The decoded payload is returned as-is: depending on gateway
// version it is a bare array or a wrapper object keyed payments, submissions
// or data.
func (c *Client) FetchSubmissions(ctx context.Context, accountNo string) (any, error) {
	requestID := uuid.NewString()
	logger.ExternalServiceCall("paygate", "FetchSubmissions", "accountNo", accountNo, "requestID", requestID)

	endpoint := fmt.Sprintf("%s/api/v1/accounts/%s/payments", c.baseURL, url.PathEscape(accountNo))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.ExternalServiceResult("paygate", "FetchSubmissions", err, "requestID", requestID)
		return nil, fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.ExternalServiceResult("paygate", "FetchSubmissions", err, "requestID", requestID)
		return nil, fmt.Errorf("payment gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
		logger.ExternalServiceResult("paygate", "FetchSubmissions", err, "requestID", requestID)
		return nil, err
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.ExternalServiceResult("paygate", "FetchSubmissions", err, "requestID", requestID)
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	logger.ExternalServiceResult("paygate", "FetchSubmissions", nil, "requestID", requestID)
	return payload, nil
}
