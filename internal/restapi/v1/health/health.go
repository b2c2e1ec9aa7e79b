package v1health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eurofurence/paystakk/internal/restapi/common"
)

type HealthResultDto struct {
	Status string `json:"status"`
}

func Create(server chi.Router) {
	server.Get("/info/health", healthGet)
}

func healthGet(w http.ResponseWriter, r *http.Request) {
	dto := HealthResultDto{Status: "up"}

	common.SendJSON(r.Context(), w, http.StatusOK, dto)
}
