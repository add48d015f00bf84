package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/subway/route"
	"github.com/katalvlaran/subway/section"
)

// RouteService is the part of *route.Service the handlers use.
type RouteService interface {
	FindRoute(ctx context.Context, source, target int64, age int) (route.Result, error)
	AddSection(ctx context.Context, lineID, up, down int64, distance int) error
	RemoveSection(ctx context.Context, lineID, stationID int64) error
	LineStations(ctx context.Context, lineID int64) (route.LineView, error)
	Network(ctx context.Context) (route.NetworkSummary, error)
	Reachable(ctx context.Context, stationID int64, maxStops int, lineIDs ...int64) ([]route.Reach, error)
}

// errBadParameter marks malformed path or query parameters and bodies.
var errBadParameter = errors.New("bad parameter")

// Handler serves the subway HTTP API.
type Handler struct {
	svc RouteService
	log *slog.Logger
}

// NewHandler returns a Handler; a nil logger discards.
func NewHandler(svc RouteService, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Handler{svc: svc, log: log}
}

// RegisterRoutes mounts the API on router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/paths", h.FindPath).Methods(http.MethodGet)
	router.HandleFunc("/network", h.GetNetwork).Methods(http.MethodGet)
	router.HandleFunc("/stations/{id:[0-9]+}/reachable", h.GetReachable).Methods(http.MethodGet)
	router.HandleFunc("/lines/{id:[0-9]+}", h.GetLine).Methods(http.MethodGet)
	router.HandleFunc("/lines/{id:[0-9]+}/sections", h.AddSection).Methods(http.MethodPost)
	router.HandleFunc("/lines/{id:[0-9]+}/sections", h.RemoveSection).Methods(http.MethodDelete)
}

// Router returns a new router with the API and request logging mounted.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.logRequests)
	h.RegisterRoutes(r)

	return r
}

// FindPath handles GET /paths.
func (h *Handler) FindPath(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	source, err1 := parseID(q.Get("source"), "source")
	target, err2 := parseID(q.Get("target"), "target")
	age, err3 := strconv.Atoi(q.Get("age"))
	if err := errors.Join(err1, err2); err != nil {
		h.fail(w, r, err)
		return
	}
	if err3 != nil {
		h.fail(w, r, fmt.Errorf("%w: age %q", errBadParameter, q.Get("age")))
		return
	}

	res, err := h.svc.FindRoute(r.Context(), source, target, age)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GetNetwork handles GET /network.
func (h *Handler) GetNetwork(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Network(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// GetReachable handles GET /stations/{id}/reachable?maxStops=&line=.
// maxStops defaults to 0 (no limit); line may repeat.
func (h *Handler) GetReachable(w http.ResponseWriter, r *http.Request) {
	stationID, err := parseID(mux.Vars(r)["id"], "station id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	q := r.URL.Query()
	maxStops := 0
	if raw := q.Get("maxStops"); raw != "" {
		if maxStops, err = strconv.Atoi(raw); err != nil {
			h.fail(w, r, fmt.Errorf("%w: maxStops %q", errBadParameter, raw))
			return
		}
	}
	lineIDs := make([]int64, 0, len(q["line"]))
	for _, raw := range q["line"] {
		id, err := parseID(raw, "line")
		if err != nil {
			h.fail(w, r, err)
			return
		}
		lineIDs = append(lineIDs, id)
	}

	reach, err := h.svc.Reachable(r.Context(), stationID, maxStops, lineIDs...)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if reach == nil {
		reach = []route.Reach{}
	}
	writeJSON(w, http.StatusOK, reach)
}

// GetLine handles GET /lines/{id}.
func (h *Handler) GetLine(w http.ResponseWriter, r *http.Request) {
	lineID, err := parseID(mux.Vars(r)["id"], "line id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	view, err := h.svc.LineStations(r.Context(), lineID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// SectionRequest is the POST /lines/{id}/sections body.
type SectionRequest struct {
	UpStationID   int64 `json:"upStationId"`
	DownStationID int64 `json:"downStationId"`
	Distance      int   `json:"distance"`
}

// AddSection handles POST /lines/{id}/sections and answers with the
// updated line.
func (h *Handler) AddSection(w http.ResponseWriter, r *http.Request) {
	lineID, err := parseID(mux.Vars(r)["id"], "line id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req SectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, fmt.Errorf("%w: body: %v", errBadParameter, err))
		return
	}
	if err := h.svc.AddSection(r.Context(), lineID, req.UpStationID, req.DownStationID, req.Distance); err != nil {
		h.fail(w, r, err)
		return
	}
	view, err := h.svc.LineStations(r.Context(), lineID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// RemoveSection handles DELETE /lines/{id}/sections?stationId=.
func (h *Handler) RemoveSection(w http.ResponseWriter, r *http.Request) {
	lineID, err := parseID(mux.Vars(r)["id"], "line id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	stationID, err := parseID(r.URL.Query().Get("stationId"), "stationId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.RemoveSection(r.Context(), lineID, stationID); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type errorResponse struct {
	Message string `json:"message"`
}

// fail maps err onto a status and writes the JSON error body.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed", slog.String("path", r.URL.Path), slog.Any("err", err))
		msg = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Message: msg})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, route.ErrStationNotFound), errors.Is(err, route.ErrLineNotFound):
		return http.StatusNotFound
	case errors.Is(err, errBadParameter),
		errors.Is(err, route.ErrInvalidAge),
		errors.Is(err, route.ErrInvalidRequest),
		errors.Is(err, route.ErrUnreachableRoute),
		errors.Is(err, section.ErrSectionNotAddable),
		errors.Is(err, section.ErrSectionNotDeletable),
		errors.Is(err, section.ErrSectionMergeInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func parseID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s %q", errBadParameter, name, raw)
	}

	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
