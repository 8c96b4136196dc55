// Package cryptotax is a client for the Awaken link API, which creates tax
// calculation links for a set of wallet addresses.
package cryptotax

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/awakentax/crypto-tax-go/pkg/log"
)

const (
	DefaultBaseURL = "https://api.link.awaken.tax"

	apiKeyHeader = "x-api-key"

	linksPath = "/api/links"
)

type Options struct {
	APIKey string
	// BaseURL overrides DefaultBaseURL.
	BaseURL string
	// HTTPClient defaults to a client without a timeout; bound calls with a context instead.
	HTTPClient *http.Client
}

// Client is safe for concurrent use, it holds nothing but its options.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Service = (*Client)(nil)

func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, &ConfigError{Field: "APIKey", Err: ErrMissingAPIKey}
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !isHTTPURL(baseURL) {
		return nil, &ConfigError{Field: "BaseURL", Err: errors.Wrap(ErrInvalidBaseURL, baseURL)}
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		apiKey:     opts.APIKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// CreateLink performs exactly one POST to {baseURL}/api/links.
func (c *Client) CreateLink(ctx context.Context, request *CreateLinkRequest) (*CreateLinkResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	log.AddFields(ctx, "wallets", len(request.Wallets))

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal a create link request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+linksPath, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create a post request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to perform a post request to the link API")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read a response body from the link API")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.AddFields(ctx, "status", resp.StatusCode)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
			Body:       string(body),
		}
	}

	envelope := new(createLinkEnvelope)
	if err = json.Unmarshal(body, envelope); err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}
	if envelope.Data == nil {
		return nil, &DecodeError{Body: body, Err: ErrMissingData}
	}

	return envelope.Data, nil
}

// statusText prefers the reason phrase the server sent, e.g. "Unauthorized".
func statusText(resp *http.Response) string {
	text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	text = strings.TrimSpace(text)
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
