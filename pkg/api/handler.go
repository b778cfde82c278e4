package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lkesich/maine-geography/pkg/elections"
	"github.com/lkesich/maine-geography/pkg/gazetteer"
	"github.com/lkesich/maine-geography/pkg/kit"
)

// NewRouter returns an http.Handler with all gazetteer API routes.
func NewRouter(db *gazetteer.Gazetteer, parser *elections.Parser) http.Handler {
	mux := http.NewServeMux()
	h := &handler{
		matchTown: matchTownEndpoint(db),
		parseUnit: parseUnitEndpoint(parser),
		listTowns: listTownsEndpoint(db),
		db:        db,
	}

	mux.HandleFunc("GET /v1/match/{name}", h.handleMatchTown)
	mux.HandleFunc("GET /v1/parse", methodNotAllowed) // parse takes a JSON body
	mux.HandleFunc("POST /v1/parse", h.handleParseUnit)
	mux.HandleFunc("GET /v1/towns", h.handleListTowns)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(mux)
}

type handler struct {
	matchTown kit.Endpoint
	parseUnit kit.Endpoint
	listTowns kit.Endpoint
	db        *gazetteer.Gazetteer
}

// --- match single name ---

func (h *handler) handleMatchTown(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing name")
		return
	}

	resp, err := h.matchTown(r.Context(), &matchReq{
		Name:   name,
		County: r.URL.Query().Get("county"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- parse reporting unit ---

type httpParseRequest struct {
	ResultString string `json:"result_string"`
	County       string `json:"county,omitempty"`
}

func (h *handler) handleParseUnit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024) // 64 KiB max
	var req httpParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.parseUnit(r.Context(), &parseReq{
		Raw:    req.ResultString,
		County: req.County,
	})
	if err != nil {
		var ambiguous *elections.AmbiguousRegistrationError
		if errors.As(err, &ambiguous) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- list towns ---

func (h *handler) handleListTowns(w http.ResponseWriter, r *http.Request) {
	resp, err := h.listTowns(r.Context(), &townsReq{
		County: r.URL.Query().Get("county"),
		Type:   r.URL.Query().Get("type"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- health ---

type healthResponse struct {
	Status string `json:"status"`
	Towns  int    `json:"towns"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Towns:  h.db.Len(),
	})
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
