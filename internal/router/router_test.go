package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubHandler struct{ hits map[string]int }

func (s *stubHandler) hit(name string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		s.hits[name]++
		c.Status(http.StatusNoContent)
	}
}

func (s *stubHandler) Availability(c *ginext.Context)        { s.hit("availability")(c) }
func (s *stubHandler) BookGrooming(c *ginext.Context)        { s.hit("grooming")(c) }
func (s *stubHandler) StartWorkflow(c *ginext.Context)       { s.hit("start")(c) }
func (s *stubHandler) GetWorkflow(c *ginext.Context)         { s.hit("get")(c) }
func (s *stubHandler) SubmitStep(c *ginext.Context)          { s.hit("step")(c) }
func (s *stubHandler) BackWorkflow(c *ginext.Context)        { s.hit("back")(c) }
func (s *stubHandler) SubmitWorkflow(c *ginext.Context)      { s.hit("submit")(c) }
func (s *stubHandler) ListReservations(c *ginext.Context)    { s.hit("list")(c) }
func (s *stubHandler) CancelReservation(c *ginext.Context)   { s.hit("cancel")(c) }
func (s *stubHandler) CompleteReservation(c *ginext.Context) { s.hit("complete")(c) }
func (s *stubHandler) Occupancy(c *ginext.Context)           { s.hit("occupancy")(c) }
func (s *stubHandler) RebuildOccupancy(c *ginext.Context)    { s.hit("rebuild")(c) }
func (s *stubHandler) AuditOccupancy(c *ginext.Context)      { s.hit("audit")(c) }

func TestInitRouter_Routes(t *testing.T) {
	h := &stubHandler{hits: map[string]int{}}
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r := InitRouter("test", h, metrics)

	routes := []struct {
		method, path, name string
	}{
		{http.MethodGet, "/api/availability", "availability"},
		{http.MethodPost, "/api/bookings/grooming", "grooming"},
		{http.MethodPost, "/api/workflows", "start"},
		{http.MethodGet, "/api/workflows/d1", "get"},
		{http.MethodPost, "/api/workflows/d1/steps/pet", "step"},
		{http.MethodPost, "/api/workflows/d1/back", "back"},
		{http.MethodPost, "/api/workflows/d1/submit", "submit"},
		{http.MethodGet, "/api/admin/reservations", "list"},
		{http.MethodPost, "/api/admin/reservations/r1/cancel", "cancel"},
		{http.MethodPost, "/api/admin/reservations/r1/complete", "complete"},
		{http.MethodGet, "/api/admin/occupancy", "occupancy"},
		{http.MethodPost, "/api/admin/occupancy/rebuild", "rebuild"},
		{http.MethodPost, "/api/admin/occupancy/audit", "audit"},
	}

	for _, rt := range routes {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(rt.method, rt.path, nil))
		assert.Equal(t, http.StatusNoContent, w.Code, rt.path)
		assert.Equal(t, 1, h.hits[rt.name], rt.path)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitRouter_NoMetrics(t *testing.T) {
	r := InitRouter("test", &stubHandler{hits: map[string]int{}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
