package models

import (
	"github.com/awakentax/crypto-tax-go/pkg/cryptotax"
)

// LinkForm is what a user enters in the demo: a key and an ordered list of
// wallet rows, some of which may still be empty.
type LinkForm struct {
	APIKey  string              `json:"api_key"`
	Wallets []*cryptotax.Wallet `json:"wallets"`
}

func NewLinkForm() *LinkForm {
	return &LinkForm{Wallets: []*cryptotax.Wallet{{}}}
}

// FilledWallets drops the rows whose address is empty or whitespace.
func (f *LinkForm) FilledWallets() []*cryptotax.Wallet {
	var result []*cryptotax.Wallet
	for _, w := range f.Wallets {
		if !w.IsBlank() {
			result = append(result, w)
		}
	}
	return result
}

// LinkPage is the state the demo page is rendered from.
type LinkPage struct {
	Form   *LinkForm
	Result *cryptotax.CreateLinkResponse
	Error  string
}

func (p *LinkPage) CanRemove() bool {
	return len(p.Form.Wallets) > 1
}
