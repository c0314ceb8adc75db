package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// No database is wired in tests, so any handler that touches the catalog
// panics on the nil gorm handle. That makes registered endpoints a direct
// probe of whether the recovery middleware actually wraps them: with it in
// place the panic becomes a 500, without it the request would crash the
// test binary.
func TestSetupRouter_RecoveryWrapsRegisteredRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter()

	req := httptest.NewRequest(http.MethodGet,
		"/freight/quote?origin=santana%20de%20parnaiba&destination=catanduva", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 from recovered panic, got %d; body=%s", rr.Code, rr.Body.String())
	}
}

func TestSetupRouter_DriverEndpointWithoutTrailingSlash(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter()

	// Unknown truck type is rejected before the handler touches storage,
	// so a 400 proves POST /drivers reached the handler directly instead
	// of bouncing through a 307 trailing-slash redirect.
	body := strings.NewReader(`{"name":"Maria","phone":"11 98888-0000","truck_type":"Bitrem"}`)
	req := httptest.NewRequest(http.MethodPost, "/drivers", body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 from the handler, got %d; body=%s", rr.Code, rr.Body.String())
	}
}
