package orders

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
}

func (f *fakeService) HandleOrdersPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "orders_page"
}

func (f *fakeService) HandleOrdersTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "orders_table"
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		path     string
		wantCode int
		wantCall string
	}{
		{path: "/orders", wantCode: http.StatusOK, wantCall: "orders_page"},
		{path: "/orders/table?q=ord&status=pending", wantCode: http.StatusOK, wantCall: "orders_table"},
		{path: "/orders/ord-1", wantCode: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			svc.lastCall = ""
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
		})
	}
}
