package cryptotax

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Wallet is a blockchain address, optionally named, to include in a link.
type Wallet struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

func (w *Wallet) IsBlank() bool {
	return w == nil || strings.TrimSpace(w.Address) == ""
}

type CreateLinkRequest struct {
	Wallets []*Wallet `json:"wallets"`
}

// Validate reports every problem of the request at once.
func (r *CreateLinkRequest) Validate() error {
	if r == nil || len(r.Wallets) == 0 {
		return &ValidationError{Err: ErrNoWallets}
	}

	var err error
	for i, w := range r.Wallets {
		if w.IsBlank() {
			err = multierr.Append(err, errors.Wrapf(ErrEmptyAddress, "wallets[%d]", i))
		}
	}
	if err != nil {
		return &ValidationError{Err: err}
	}

	return nil
}

// CreateLinkResponse identifies the created link. Both values are opaque.
type CreateLinkResponse struct {
	Code string `json:"code"`
	URL  string `json:"url"`
}

type createLinkEnvelope struct {
	Data *CreateLinkResponse `json:"data"`
}
