package linkform

import (
	"context"
	"net/http"
	"strings"

	"github.com/awakentax/crypto-tax-go/app/config"
	"github.com/awakentax/crypto-tax-go/app/models"
	"github.com/awakentax/crypto-tax-go/pkg/cryptotax"
	"github.com/awakentax/crypto-tax-go/pkg/log"
	"github.com/awakentax/crypto-tax-go/pkg/response"
	"github.com/awakentax/crypto-tax-go/pkg/uuid"
)

const (
	msgNoWallets = "Please add at least one wallet address"
	msgNoAPIKey  = "Please enter your API key"
)

// ClientFactory builds a link client for the key a user typed in.
type ClientFactory func(opts cryptotax.Options) (cryptotax.Service, error)

func newClient(opts cryptotax.Options) (cryptotax.Service, error) {
	return cryptotax.New(opts)
}

type Manager struct {
	Config     config.LinkAPI
	HttpClient *http.Client
	NewClient  ClientFactory // cryptotax.New when nil
}

// Submit creates a link from the filled rows of the form.
func (m *Manager) Submit(ctx context.Context, form *models.LinkForm) (*cryptotax.CreateLinkResponse, error) {
	log.AddFields(ctx, "submission", uuid.NewUUID())

	wallets := form.FilledWallets()
	if len(wallets) == 0 {
		return nil, response.NewError(response.CodeBadRequest, msgNoWallets)
	}

	apiKey := strings.TrimSpace(form.APIKey)
	if apiKey == "" {
		return nil, response.NewError(response.CodeBadRequest, msgNoAPIKey)
	}

	factory := m.NewClient
	if factory == nil {
		factory = newClient
	}
	client, err := factory(cryptotax.Options{
		APIKey:     apiKey,
		BaseURL:    m.Config.BaseURL,
		HTTPClient: m.HttpClient,
	})
	if err != nil {
		return nil, response.FromLinkError(err)
	}

	out, err := client.CreateLink(ctx, &cryptotax.CreateLinkRequest{Wallets: wallets})
	if err != nil {
		return nil, response.FromLinkError(err)
	}

	log.AddFields(ctx, "link", out.Code)
	return out, nil
}

func (m *Manager) AddWallet(form *models.LinkForm) {
	form.Wallets = append(form.Wallets, &cryptotax.Wallet{})
}

// RemoveWallet keeps at least one row, like the page which hides the button.
func (m *Manager) RemoveWallet(form *models.LinkForm, index int) {
	if len(form.Wallets) <= 1 || index < 0 || index >= len(form.Wallets) {
		return
	}
	form.Wallets = append(form.Wallets[:index], form.Wallets[index+1:]...)
}
