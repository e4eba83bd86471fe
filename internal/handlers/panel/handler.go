package panel

import (
	_ "embed"
	"net/http"

	"frontdesk/shared/constant"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

//go:embed panel.html
var panelDocument []byte

// Handler serves the operator check-in panel. The document is a single static
// page that talks to the JSON API; no template data flows into it.
type Handler struct{}

func New() Handler {
	return Handler{}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/panel", handler.GetPanel)
}

// GetPanel serves the check-in panel document.
// @Summary Check-in panel
// @Description Serve the operator panel (~900x700 modal document).
// @Tags Panel
// @Produce html
// @Success 200 {string} string "Panel document"
// @Router /panel [get]
func (handler *Handler) GetPanel(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(panelDocument); err != nil {
		log.Error().Err(err).Msg("failed to write panel document")
	}
}
