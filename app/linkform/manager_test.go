package linkform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awakentax/crypto-tax-go/app/config"
	"github.com/awakentax/crypto-tax-go/app/models"
	"github.com/awakentax/crypto-tax-go/pkg/cryptotax"
	"github.com/awakentax/crypto-tax-go/pkg/response"
)

type recordingClient struct {
	opts     cryptotax.Options
	requests []*cryptotax.CreateLinkRequest
	resp     *cryptotax.CreateLinkResponse
	err      error
}

func (c *recordingClient) CreateLink(_ context.Context, req *cryptotax.CreateLinkRequest) (*cryptotax.CreateLinkResponse, error) {
	c.requests = append(c.requests, req)
	return c.resp, c.err
}

func newTestManager(client *recordingClient) *Manager {
	return &Manager{
		Config: config.LinkAPI{BaseURL: "http://localhost:8080"},
		NewClient: func(opts cryptotax.Options) (cryptotax.Service, error) {
			client.opts = opts
			return client, nil
		},
	}
}

func TestSubmitFiltersEmptyWallets(t *testing.T) {
	client := &recordingClient{resp: &cryptotax.CreateLinkResponse{Code: "X", URL: "Y"}}
	m := newTestManager(client)

	out, err := m.Submit(context.Background(), &models.LinkForm{
		APIKey: "  key  ",
		Wallets: []*cryptotax.Wallet{
			{Address: "", Name: "nothing"},
			{Address: "0xabc", Name: "main"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "X", out.Code)

	require.Len(t, client.requests, 1)
	assert.Equal(t, []*cryptotax.Wallet{{Address: "0xabc", Name: "main"}}, client.requests[0].Wallets)
	assert.Equal(t, "key", client.opts.APIKey)
	assert.Equal(t, "http://localhost:8080", client.opts.BaseURL)
}

func TestSubmitRequiresWalletsBeforeKey(t *testing.T) {
	client := &recordingClient{}
	m := newTestManager(client)

	_, err := m.Submit(context.Background(), &models.LinkForm{Wallets: []*cryptotax.Wallet{{Address: " "}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), msgNoWallets)

	_, err = m.Submit(context.Background(), &models.LinkForm{
		APIKey:  "   ",
		Wallets: []*cryptotax.Wallet{{Address: "0xabc"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), msgNoAPIKey)
	assert.Empty(t, client.requests)
}

func TestSubmitSurfacesClientError(t *testing.T) {
	client := &recordingClient{err: &cryptotax.APIError{StatusCode: 401, StatusText: "Unauthorized", Body: "invalid key"}}
	m := newTestManager(client)

	_, err := m.Submit(context.Background(), &models.LinkForm{
		APIKey:  "key",
		Wallets: []*cryptotax.Wallet{{Address: "0xabc"}},
	})

	var respErr *response.Error
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, 401, respErr.Code)
	assert.Equal(t, "API request failed: 401 Unauthorized. invalid key", respErr.Message)
}

func TestSubmitAgainstLinkAPI(t *testing.T) {
	var got cryptotax.CreateLinkRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("x-api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"data":{"code":"abc","url":"https://app.awaken.tax/link/abc"}}`))
	}))
	defer server.Close()

	m := &Manager{Config: config.LinkAPI{BaseURL: server.URL}, HttpClient: server.Client()}
	out, err := m.Submit(context.Background(), &models.LinkForm{
		APIKey:  "key",
		Wallets: []*cryptotax.Wallet{{Address: "0xabc"}, {Address: ""}},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://app.awaken.tax/link/abc", out.URL)
	assert.Equal(t, []*cryptotax.Wallet{{Address: "0xabc"}}, got.Wallets)
}

func TestAddRemoveWallet(t *testing.T) {
	m := &Manager{}
	form := models.NewLinkForm()

	m.RemoveWallet(form, 0)
	require.Len(t, form.Wallets, 1)

	form.Wallets[0].Address = "first"
	m.AddWallet(form)
	form.Wallets[1].Address = "second"
	m.AddWallet(form)
	require.Len(t, form.Wallets, 3)

	m.RemoveWallet(form, 7)
	m.RemoveWallet(form, -1)
	require.Len(t, form.Wallets, 3)

	m.RemoveWallet(form, 0)
	require.Len(t, form.Wallets, 2)
	assert.Equal(t, "second", form.Wallets[0].Address)
}
