package response

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/awakentax/crypto-tax-go/pkg/cryptotax"
)

func TestFromLinkError(t *testing.T) {
	apiErr := &cryptotax.APIError{StatusCode: 401, StatusText: "Unauthorized", Body: "invalid key"}
	got := FromLinkError(errors.WithStack(apiErr))
	assert.Equal(t, 401, got.Code)
	assert.Equal(t, http.StatusBadGateway, got.HTTPStatus())
	assert.Equal(t, "API request failed: 401 Unauthorized. invalid key", got.Message)

	got = FromLinkError(&cryptotax.ValidationError{Err: cryptotax.ErrNoWallets})
	assert.Equal(t, CodeBadRequest, got.Code)
	assert.Equal(t, http.StatusBadRequest, got.HTTPStatus())

	got = FromLinkError(errors.New("dial tcp: connection refused"))
	assert.Equal(t, CodeBadGateway, got.Code)
	assert.Equal(t, http.StatusBadGateway, got.HTTPStatus())

	own := NewError(CodeBadRequest, "Please enter your API key")
	assert.Same(t, own, FromLinkError(errors.Wrap(own, "submit")))
}
