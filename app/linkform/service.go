package linkform

import (
	"context"

	"github.com/awakentax/crypto-tax-go/app/models"
	"github.com/awakentax/crypto-tax-go/pkg/cryptotax"
)

type Service interface {
	Submit(ctx context.Context, form *models.LinkForm) (*cryptotax.CreateLinkResponse, error)
	AddWallet(form *models.LinkForm)
	RemoveWallet(form *models.LinkForm, index int)
}
