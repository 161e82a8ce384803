/*
handlers.go - Dashboard HTTP handlers

PURPOSE:
  The reporting layer on top of the projection engine. Each dashboard
  request resolves a window, runs the relevant projections over the
  current in-memory collections, and returns JSON. Responses are memoized
  on (collections version, window / today inputs) because every
  projection is deterministic; a data change bumps the version and old
  cache entries become unreachable.

DETERMINISM:
  "today" comes from the injected clock, and any handler accepts an
  explicit ?today=2006-01-02 override. That keeps demo datasets and
  integration tests reproducible.

SEE ALSO:
  - server.go:    routing and middleware
  - scenarios.go: demo datasets
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/warp/projection-engine/applog"
	"github.com/warp/projection-engine/billing"
	"github.com/warp/projection-engine/cache"
	"github.com/warp/projection-engine/engine"
	"github.com/warp/projection-engine/payroll"
	"github.com/warp/projection-engine/store"
	"github.com/warp/projection-engine/store/sqlite"
)

const (
	defaultHorizonDays = 30
	defaultLimit       = 5
	maxLimit           = 50
)

// Handler serves the dashboard API.
type Handler struct {
	repo    *store.Memory
	db      *sqlite.Store // nil when running without persistence
	cache   cache.ProjectionCache
	log     *applog.Logger
	payroll *payroll.Service
	billing *billing.Service

	// Now is the injected clock; tests and demos override it.
	Now func() time.Time
}

func NewHandler(repo *store.Memory, db *sqlite.Store, projCache cache.ProjectionCache, logger *applog.Logger) *Handler {
	projector := &engine.Projector{Log: logger.Logger}
	return &Handler{
		repo:    repo,
		db:      db,
		cache:   projCache,
		log:     logger,
		payroll: &payroll.Service{Projector: projector},
		billing: &billing.Service{Projector: projector},
		Now:     time.Now,
	}
}

// today resolves the reference date: explicit ?today= wins, otherwise the
// injected clock.
func (h *Handler) today(r *http.Request) engine.Date {
	if raw := r.URL.Query().Get("today"); raw != "" {
		if d, ok := engine.ParseDate(raw); ok {
			return d
		}
	}
	return engine.DateOf(h.Now())
}

// =============================================================================
// DASHBOARD ENDPOINTS
// =============================================================================

// GetSummary returns the window totals for the summary cards.
// GET /api/dashboard/summary?range=last_30&today=2024-01-15
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	today := h.today(r)
	window := engine.ResolveRange(r.URL.Query().Get("range"), today)

	key := fmt.Sprintf("dash:summary|v%d|%s|%s", h.repo.Version(), window.Start.ISO(), window.End.ISO())
	if payload, ok := h.cache.Get(r.Context(), key); ok {
		writeCached(w, payload)
		return
	}

	salaries := h.payroll.Project(h.repo.Employees(), h.repo.Adjustments(), window)
	recurring := h.billing.Project(h.repo.Payments(), window)
	credit := h.billing.ProjectCredit(h.repo.Payments(), window)

	dto := SummaryDTO{
		Range:          toRangeDTO(window),
		SalaryTotal:    salaries.Total.String(),
		RecurringTotal: recurring.Total.String(),
		CreditTotal:    credit.Total.String(),
		GrandTotal:     salaries.Total.Add(recurring.Total).String(),
	}
	h.writeAndCache(w, r, key, dto)
}

// GetChart returns merged per-day buckets for charting.
// GET /api/dashboard/chart?range=this_month
func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	today := h.today(r)
	window := engine.ResolveRange(r.URL.Query().Get("range"), today)

	key := fmt.Sprintf("dash:chart|v%d|%s|%s", h.repo.Version(), window.Start.ISO(), window.End.ISO())
	if payload, ok := h.cache.Get(r.Context(), key); ok {
		writeCached(w, payload)
		return
	}

	salaries := h.payroll.Project(h.repo.Employees(), h.repo.Adjustments(), window)
	recurring := h.billing.Project(h.repo.Payments(), window)
	merged := salaries.Merge(recurring)

	points := make([]ChartPointDTO, 0, len(merged.PerDate))
	for _, date := range merged.Dates() {
		points = append(points, ChartPointDTO{
			Date:      date,
			Salary:    salaries.PerDate[date].String(),
			Recurring: recurring.PerDate[date].String(),
			Total:     merged.PerDate[date].String(),
		})
	}

	dto := ChartDTO{Range: toRangeDTO(window), Points: points}
	h.writeAndCache(w, r, key, dto)
}

// GetUpcoming returns the merged near-term due list.
// GET /api/dashboard/upcoming?horizon=30&limit=5
func (h *Handler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	today := h.today(r)
	horizon := queryInt(r, "horizon", defaultHorizonDays)
	limit := queryInt(r, "limit", defaultLimit)
	if limit > maxLimit {
		limit = maxLimit
	}

	key := fmt.Sprintf("dash:upcoming|v%d|%s|%d|%d", h.repo.Version(), today.ISO(), horizon, limit)
	if payload, ok := h.cache.Get(r.Context(), key); ok {
		writeCached(w, payload)
		return
	}

	sources := []engine.ObligationSource{
		&billing.PaymentSource{Payments: h.repo.Payments()},
		&payroll.Source{Employees: h.repo.Employees()},
		&billing.DebtSource{Debts: h.repo.Debts()},
	}
	items := engine.SelectUpcoming(sources, horizon, limit, today)

	h.writeAndCache(w, r, key, toUpcomingDTOs(items))
}

// =============================================================================
// COLLECTION LISTS (read-only)
// =============================================================================

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toEmployeeDTOs(h.repo.Employees()))
}

func (h *Handler) ListAdjustments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toAdjustmentDTOs(h.repo.Adjustments()))
}

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toPaymentDTOs(h.repo.Payments()))
}

func (h *Handler) ListDebts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toDebtDTOs(h.repo.Debts()))
}

// =============================================================================
// SCENARIOS
// =============================================================================

func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios := Scenarios()
	dtos := make([]ScenarioDTO, len(scenarios))
	for i, s := range scenarios {
		dtos[i] = ScenarioDTO{ID: s.ID, Name: s.Name, Description: s.Description}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// LoadScenario replaces the collections with a demo dataset.
// POST /api/scenarios/load {"id": "household"}
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	scenario, ok := FindScenario(req.ID)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown scenario: "+req.ID)
		return
	}

	snap := scenario.Build()
	h.repo.Replace(snap)

	if h.db != nil {
		if err := h.db.SaveSnapshot(r.Context(), snap); err != nil {
			h.log.Error("failed to persist scenario", "scenario", scenario.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to persist scenario")
			return
		}
	}

	h.log.Info("scenario loaded", "scenario", scenario.ID)
	writeJSON(w, http.StatusOK, ScenarioDTO{ID: scenario.ID, Name: scenario.Name, Description: scenario.Description})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func (h *Handler) writeAndCache(w http.ResponseWriter, r *http.Request, key string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("failed to encode response", "error", err)
		writeError(w, http.StatusInternalServerError, "encoding failure")
		return
	}
	if err := h.cache.Set(r.Context(), key, string(body)); err != nil {
		// A cold cache is not a failed request.
		h.log.Warn("cache write failed", "key", key, "error", err)
	}
	writeCached(w, string(body))
}

func writeCached(w http.ResponseWriter, payload string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(payload))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func queryInt(r *http.Request, key string, defaultValue int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			return n
		}
	}
	return defaultValue
}
