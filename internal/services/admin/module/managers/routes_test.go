package managers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall    string
	lastManager string
}

func (f *fakeService) HandleManagersPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "managers_page"
}

func (f *fakeService) HandleManagersTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "managers_table"
}

func (f *fakeService) HandleManagerCreate(http.ResponseWriter, *http.Request) {
	f.lastCall = "managers_create"
}

func (f *fakeService) HandleManagerToggle(_ http.ResponseWriter, _ *http.Request, managerID string) {
	f.lastCall = "managers_toggle"
	f.lastManager = managerID
}

func (f *fakeService) HandleManagerDelete(_ http.ResponseWriter, _ *http.Request, managerID string) {
	f.lastCall = "managers_delete"
	f.lastManager = managerID
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		path        string
		method      string
		wantCode    int
		wantCall    string
		wantManager string
	}{
		{path: "/managers", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "managers_page"},
		{path: "/managers/table?q=ana", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "managers_table"},
		{path: "/managers/create", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "managers_create"},
		{path: "/managers/mgr-1/toggle", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "managers_toggle", wantManager: "mgr-1"},
		{path: "/managers/mgr-1/delete", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "managers_delete", wantManager: "mgr-1"},
		{path: "/managers/mgr-1", method: http.MethodGet, wantCode: http.StatusNotFound},
		{path: "/managers/mgr-1/archive", method: http.MethodPost, wantCode: http.StatusNotFound},
		{path: "/managers/mgr-1/toggle/extra", method: http.MethodPost, wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			svc.lastCall = ""
			svc.lastManager = ""

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastManager != tc.wantManager {
				t.Fatalf("lastManager = %q, want %q", svc.lastManager, tc.wantManager)
			}
		})
	}
}

func TestHandleManagerPathRedirectsTrailingSlash(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	req := httptest.NewRequest(http.MethodPost, "/managers/mgr-1/toggle/", nil)
	rec := httptest.NewRecorder()

	HandleManagerPath(rec, req, svc)

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMovedPermanently)
	}
	if location := rec.Header().Get("Location"); location != "/managers/mgr-1/toggle" {
		t.Fatalf("location = %q, want %q", location, "/managers/mgr-1/toggle")
	}
	if svc.lastCall != "" {
		t.Fatalf("lastCall = %q, want none", svc.lastCall)
	}
}

func TestRegisterRoutesIgnoresNilInputs(t *testing.T) {
	t.Parallel()

	RegisterRoutes(nil, &fakeService{})
	mux := http.NewServeMux()
	RegisterRoutes(mux, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/managers", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
