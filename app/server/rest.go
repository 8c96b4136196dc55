package server

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/awakentax/crypto-tax-go/app/linkform"
	"github.com/awakentax/crypto-tax-go/app/models"
	"github.com/awakentax/crypto-tax-go/pkg/cryptotax"
	"github.com/awakentax/crypto-tax-go/pkg/log"
	"github.com/awakentax/crypto-tax-go/pkg/response"
	"github.com/awakentax/crypto-tax-go/pkg/web"
)

const (
	apiPrefix = "/api/v1"

	actionAdd          = "add"
	actionSubmit       = "submit"
	actionRemovePrefix = "remove-"
)

// Rest serves the demo page and its JSON twin
type Rest struct {
	Router   chi.Router
	LinkForm linkform.Service
}

func (s *Rest) Route() {
	s.Router.Get("/healthz", s.health)
	s.Router.Get("/", s.showForm)
	s.Router.Post("/", s.postForm)

	s.Router.Route(apiPrefix, func(r chi.Router) {
		r.Post("/links", s.createLink)
	})
}

func (s *Rest) health(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, "ok")
}

func (s *Rest) createLink(w http.ResponseWriter, r *http.Request) {
	in := new(models.LinkForm)
	if err := render.DecodeJSON(r.Body, in); err != nil {
		web.RenderError(w, r, response.NewError(response.CodeBadRequest, "malformed json body").SetInternal(err))
		return
	}

	out, err := s.LinkForm.Submit(r.Context(), in)
	if err != nil {
		web.RenderError(w, r, err)
		return
	}

	web.RenderResult(w, r, out)
}

func (s *Rest) showForm(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, &models.LinkPage{Form: models.NewLinkForm()})
}

func (s *Rest) postForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		web.RenderError(w, r, response.NewError(response.CodeBadRequest, "malformed form").SetInternal(err))
		return
	}
	page := &models.LinkPage{Form: formFromRequest(r)}

	action := r.PostFormValue("action")
	log.AddFields(r.Context(), "action", action)
	switch {
	case action == actionAdd:
		s.LinkForm.AddWallet(page.Form)
	case strings.HasPrefix(action, actionRemovePrefix):
		if index, err := strconv.Atoi(strings.TrimPrefix(action, actionRemovePrefix)); err == nil {
			s.LinkForm.RemoveWallet(page.Form, index)
		}
	default:
		out, err := s.LinkForm.Submit(r.Context(), page.Form)
		if err != nil {
			page.Error = errorMessage(err)
		}
		page.Result = out
	}

	s.renderPage(w, r, page)
}

func (s *Rest) renderPage(w http.ResponseWriter, r *http.Request, page *models.LinkPage) {
	buf := new(bytes.Buffer)
	if err := pageTemplate.Execute(buf, page); err != nil {
		log.Errorw("failed to render the link page", "error", err.Error())
		web.RenderError(w, r, response.NewError(http.StatusInternalServerError, "failed to render a page").
			SetInternal(err).WithStatus(http.StatusInternalServerError))
		return
	}
	render.HTML(w, r, buf.String())
}

// formFromRequest zips the repeated address and name fields by row index.
func formFromRequest(r *http.Request) *models.LinkForm {
	addresses := r.PostForm["address"]
	names := r.PostForm["name"]

	form := &models.LinkForm{APIKey: r.PostFormValue("api_key")}
	for i, address := range addresses {
		wallet := &cryptotax.Wallet{Address: address}
		if i < len(names) {
			wallet.Name = names[i]
		}
		form.Wallets = append(form.Wallets, wallet)
	}
	if len(form.Wallets) == 0 {
		form.Wallets = models.NewLinkForm().Wallets
	}
	return form
}

func errorMessage(err error) string {
	if respErr := response.FromLinkError(err); respErr.Message != nil {
		if msg, ok := respErr.Message.(string); ok {
			return msg
		}
	}
	return err.Error()
}
