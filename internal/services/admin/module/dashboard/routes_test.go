package dashboard

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
}

func (f *fakeService) HandleDashboard(http.ResponseWriter, *http.Request) {
	f.lastCall = "dashboard"
}

func (f *fakeService) HandleDashboardContent(http.ResponseWriter, *http.Request) {
	f.lastCall = "dashboard_content"
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		path     string
		wantCall string
	}{
		{path: "/", wantCall: "dashboard"},
		{path: "/dashboard/content", wantCall: "dashboard_content"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()
			svc.lastCall = ""

			mux.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
		})
	}
}

func TestRegisterRoutesRejectsUnknownPaths(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if svc.lastCall != "" {
		t.Fatalf("lastCall = %q, want none", svc.lastCall)
	}
}

func TestRegisterRoutesRedirectsTrailingSlash(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		path string
		want string
	}{
		{path: "/dashboard/content/", want: "/dashboard/content"},
		{path: "/orders/", want: "/orders"},
		{path: "/orders/table/", want: "/orders/table"},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

		if rec.Code != http.StatusMovedPermanently {
			t.Fatalf("%s status = %d, want %d", tc.path, rec.Code, http.StatusMovedPermanently)
		}
		if got := rec.Header().Get("Location"); got != tc.want {
			t.Fatalf("%s Location = %q, want %q", tc.path, got, tc.want)
		}
		if svc.lastCall != "" {
			t.Fatalf("%s lastCall = %q, want none", tc.path, svc.lastCall)
		}
	}
}
