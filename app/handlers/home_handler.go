package handlers

import (
	"net/http"

	"github.com/unrolled/render"
	"github.com/yilmazatalay/go-catalog/app/helpers"
)

type HomeHandler struct {
	render *render.Render
}

func NewHomeHandler(render *render.Render) *HomeHandler {
	return &HomeHandler{render: render}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Catalog",
	})

	h.render.HTML(w, http.StatusOK, "home", data)
}
