package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/case-mirror/internal/logger"
	"github.com/MKhiriev/case-mirror/internal/mock"
	"github.com/MKhiriev/case-mirror/internal/service"
	"github.com/MKhiriev/case-mirror/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandlerWithWriteService builds a Handler whose write service
// accepts any call, so route-registration tests never hit a nil service.
func newTestHandlerWithWriteService(t *testing.T, ctrl *gomock.Controller) *Handler {
	t.Helper()

	writeSvc := mock.NewMockCaseWriteService(ctrl)
	writeSvc.EXPECT().CreateCase(gomock.Any(), gomock.Any()).Return(models.Case{}, nil).AnyTimes()
	writeSvc.EXPECT().UpdateCase(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Case{}, nil).AnyTimes()
	writeSvc.EXPECT().DeleteCase(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	writeSvc.EXPECT().GetCase(gomock.Any(), gomock.Any()).Return(models.Case{}, nil).AnyTimes()
	writeSvc.EXPECT().ListCases(gomock.Any()).Return(nil, nil).AnyTimes()

	return NewHandler(&service.Services{CaseWriteService: writeSvc}, logger.Nop())
}

func TestInit_ReturnsRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestHandlerWithWriteService(t, ctrl).Init()

	require.NotNil(t, router)
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
	body   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodPost, "/api/case/", `{"status": "open"}`},
	{http.MethodGet, "/api/case/", ""},
	{http.MethodGet, "/api/case/42", ""},
	{http.MethodPut, "/api/case/42", `{"status": "closed"}`},
	{http.MethodDelete, "/api/case/42", ""},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestHandlerWithWriteService(t, ctrl).Init()

	for _, tc := range expectedRoutes {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// A registered route returns anything except 404 (not found) or
			// 405 (method not allowed).
			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestHandlerWithWriteService(t, ctrl).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns405(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestHandlerWithWriteService(t, ctrl).Init()

	// PATCH is not registered on the case collection.
	req := httptest.NewRequest(http.MethodPatch, "/api/case/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestInit_ResponsesCarryTraceID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestHandlerWithWriteService(t, ctrl).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/case/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}
