package i18nhttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "http://example.com/?lang=pt-BR", nil)
	tag, persist := ResolveTag(req)
	if tag != language.BrazilianPortuguese {
		t.Fatalf("tag = %v, want %v", tag, language.BrazilianPortuguese)
	}
	if !persist {
		t.Fatal("persist = false, want true")
	}
}

func TestBuildLanguageOptions(t *testing.T) {
	t.Parallel()

	options := BuildLanguageOptions(
		[]language.Tag{language.AmericanEnglish, language.BrazilianPortuguese},
		"pt-BR",
		func(tag language.Tag) string { return tag.String() + "-label" },
	)
	if len(options) != 2 {
		t.Fatalf("len(options) = %d, want 2", len(options))
	}
	if !options[1].Active {
		t.Fatalf("options[1].Active = false, want true")
	}
}

func TestLanguageURL(t *testing.T) {
	t.Parallel()

	got := LanguageURL("/app/campaigns", "page=2", "en-US")
	if got == "" {
		t.Fatal("LanguageURL returned empty string")
	}
	if got != "/app/campaigns?lang=en-US&page=2" && got != "/app/campaigns?page=2&lang=en-US" {
		t.Fatalf("LanguageURL = %q", got)
	}
}

func TestResolveTagFallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		wantTag     language.Tag
		wantPersist bool
	}{
		{name: "default", target: "/", wantTag: language.AmericanEnglish},
		{name: "unsupported query ignored", target: "/?lang=fr", wantTag: language.AmericanEnglish},
		{name: "cookie", target: "/", cookie: "pt-BR", wantTag: language.BrazilianPortuguese},
		{name: "query beats cookie", target: "/?lang=en-US", cookie: "pt-BR", wantTag: language.AmericanEnglish, wantPersist: true},
		{name: "accept language", target: "/", accept: "pt-BR,pt;q=0.9", wantTag: language.BrazilianPortuguese},
		{name: "accept language unsupported", target: "/", accept: "ja", wantTag: language.AmericanEnglish},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest("GET", tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			tag, persist := ResolveTag(req)
			if tag != tc.wantTag {
				t.Fatalf("tag = %v, want %v", tag, tc.wantTag)
			}
			if persist != tc.wantPersist {
				t.Fatalf("persist = %v, want %v", persist, tc.wantPersist)
			}
		})
	}
}

func TestSetLanguageCookie(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, language.BrazilianPortuguese)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "pt-BR" {
		t.Fatalf("cookies = %+v", cookies)
	}
}

func TestLanguageKeyLabel(t *testing.T) {
	t.Parallel()

	if got := LanguageKeyLabel(language.BrazilianPortuguese); got != "core.lang_pt_br" {
		t.Fatalf("pt-BR label = %q", got)
	}
	if got := LanguageKeyLabel(language.AmericanEnglish); got != "core.lang_en" {
		t.Fatalf("en-US label = %q", got)
	}
}
