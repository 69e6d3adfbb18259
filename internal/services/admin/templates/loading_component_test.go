package templates

import (
	"strings"
	"testing"

	"github.com/louisbranch/dispatchdesk/internal/services/admin/routepath"
)

func TestLazyLoadFetchesDashboardContent(t *testing.T) {
	t.Parallel()

	got := renderString(t, LazyLoad(routepath.DashboardContent, "Loading dashboard..."))
	for _, want := range []string{
		`hx-get="` + routepath.DashboardContent + `"`,
		`hx-trigger="load"`,
		`class="loading loading-ring loading-md"`,
		`<span class="sr-only">Loading dashboard...</span>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("LazyLoad output missing %q: %q", want, got)
		}
	}
}

func TestLoadingSpinnerOmitsMessage(t *testing.T) {
	t.Parallel()

	got := renderString(t, LoadingSpinner())
	if !strings.Contains(got, `class="loading loading-ring loading-md"`) {
		t.Fatalf("LoadingSpinner output missing loading ring: %q", got)
	}
	if strings.Contains(got, "sr-only") {
		t.Fatalf("LoadingSpinner output should not include a message: %q", got)
	}
}
