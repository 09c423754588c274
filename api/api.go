package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/blueline-rp/mdt-bot/config"
	"github.com/blueline-rp/mdt-bot/mdt"
	"github.com/blueline-rp/mdt-bot/models"
)

// App stores the router and the penalty reference it serves
type App struct {
	Router *mux.Router
	Ref    *mdt.Reference
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", healthCheckHandler)
	r.HandleFunc("/", healthCheckHandler)
	r.HandleFunc("/api/v1/penalties", a.penaltiesHandler).Methods("GET")

	a.Router = r
	return r
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.HealthCheckResponse{Alive: true})
}

// penaltiesHandler serves the loaded penalty reference grouped by code
// series, so sheet edits can be checked without opening Discord.
func (a *App) penaltiesHandler(w http.ResponseWriter, r *http.Request) {
	idx := a.Ref.Index()
	if idx == nil {
		config.ErrorStatus("penalty reference not loaded yet", http.StatusServiceUnavailable, w, nil)
		return
	}

	grouped := make(map[string][]models.PenaltyRecord, len(idx.Groups()))
	for _, g := range idx.Groups() {
		grouped[g] = idx.Group(g)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(grouped)
}
