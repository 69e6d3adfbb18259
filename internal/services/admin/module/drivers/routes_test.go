package drivers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall   string
	lastDriver string
}

func (f *fakeService) HandleDriversPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "drivers_page"
}

func (f *fakeService) HandleDriversTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "drivers_table"
}

func (f *fakeService) HandleDriverCreate(http.ResponseWriter, *http.Request) {
	f.lastCall = "drivers_create"
}

func (f *fakeService) HandleDriverToggle(_ http.ResponseWriter, _ *http.Request, driverID string) {
	f.lastCall = "drivers_toggle"
	f.lastDriver = driverID
}

func (f *fakeService) HandleDriverDelete(_ http.ResponseWriter, _ *http.Request, driverID string) {
	f.lastCall = "drivers_delete"
	f.lastDriver = driverID
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		path       string
		method     string
		wantCode   int
		wantCall   string
		wantDriver string
	}{
		{path: "/drivers", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "drivers_page"},
		{path: "/drivers/table", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "drivers_table"},
		{path: "/drivers/create", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "drivers_create"},
		{path: "/drivers/drv-3/toggle", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "drivers_toggle", wantDriver: "drv-3"},
		{path: "/drivers/drv-3/delete", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "drivers_delete", wantDriver: "drv-3"},
		{path: "/drivers/drv-3", method: http.MethodGet, wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			svc.lastCall = ""
			svc.lastDriver = ""

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastDriver != tc.wantDriver {
				t.Fatalf("lastDriver = %q, want %q", svc.lastDriver, tc.wantDriver)
			}
		})
	}
}

func TestHandleDriverPathRedirectsTrailingSlash(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/drivers/", nil)
	rec := httptest.NewRecorder()

	HandleDriverPath(rec, req, &fakeService{})

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMovedPermanently)
	}
	if location := rec.Header().Get("Location"); location != "/drivers" {
		t.Fatalf("location = %q, want %q", location, "/drivers")
	}
}
