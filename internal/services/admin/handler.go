package admin

import (
	"context"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/dispatchdesk/internal/platform/timeouts"
	"github.com/louisbranch/dispatchdesk/internal/services/admin/i18n"
	dashboardmodule "github.com/louisbranch/dispatchdesk/internal/services/admin/module/dashboard"
	driversmodule "github.com/louisbranch/dispatchdesk/internal/services/admin/module/drivers"
	managersmodule "github.com/louisbranch/dispatchdesk/internal/services/admin/module/managers"
	ordersmodule "github.com/louisbranch/dispatchdesk/internal/services/admin/module/orders"
	"github.com/louisbranch/dispatchdesk/internal/services/admin/storage"
	"github.com/louisbranch/dispatchdesk/internal/services/admin/templates"
	"github.com/louisbranch/dispatchdesk/internal/services/admin/transport/httpmux"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"
)

const tracerName = "github.com/louisbranch/dispatchdesk/internal/services/admin"

// Handler routes admin dashboard requests.
type Handler struct {
	store   storage.Store
	tracer  trace.Tracer
	htmxSrc string
}

// HandlerOption customizes a Handler.
type HandlerOption func(*Handler)

// WithTracer overrides the tracer used for request spans.
func WithTracer(tracer trace.Tracer) HandlerOption {
	return func(h *Handler) {
		if tracer != nil {
			h.tracer = tracer
		}
	}
}

// WithHTMXSrc overrides where pages load htmx from.
func WithHTMXSrc(src string) HandlerOption {
	return func(h *Handler) {
		h.htmxSrc = strings.TrimSpace(src)
	}
}

// NewHandler builds the HTTP handler for the admin server.
func NewHandler(store storage.Store, options ...HandlerOption) http.Handler {
	handler := &Handler{
		store:  store,
		tracer: otel.Tracer(tracerName),
	}
	for _, option := range options {
		option(handler)
	}
	staticFS, err := adminStaticFS()
	if err != nil {
		log.Printf("mount admin static assets: %v", err)
	}
	handler.htmxSrc = resolveHTMXSrc(staticFS, handler.htmxSrc)
	return handler.routes(staticFS)
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	return i18n.Localize(w, r)
}

func (h *Handler) pageContext(lang string, loc *message.Printer, r *http.Request) templates.PageContext {
	page := templates.PageContext{
		Lang:    lang,
		Loc:     loc,
		HTMXSrc: h.htmxSrc,
	}
	if r != nil && r.URL != nil {
		page.CurrentPath = r.URL.Path
		page.CurrentQuery = r.URL.RawQuery
	}
	return page
}

// routes wires the HTTP routes for the admin handler.
func (h *Handler) routes(staticFS fs.FS) http.Handler {
	adminMux := http.NewServeMux()
	dashboardmodule.RegisterRoutes(adminMux, newDashboardModuleService(h))
	managersmodule.RegisterRoutes(adminMux, newManagersModuleService(h))
	driversmodule.RegisterRoutes(adminMux, newDriversModuleService(h))
	ordersmodule.RegisterRoutes(adminMux, newOrdersModuleService(h))

	rootMux := http.NewServeMux()
	if staticFS != nil {
		httpmux.MountStatic(rootMux, staticFS, withStaticMime)
	}
	httpmux.MountAdminRoutes(rootMux, adminMux)
	return h.withTracing(withRequestTimeout(rootMux))
}

// withRequestTimeout bounds the store work a single request may do.
func withRequestTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Request)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
