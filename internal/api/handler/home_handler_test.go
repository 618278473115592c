package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHomeHandler_Index_RendersBothSources(t *testing.T) {
	e := newEcho(t)
	h := NewHomeHandler(&stubCatalog{products: sampleProducts()})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Index(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"Products Catalog",
		"Dual Data Source Comparison",
		"Laptop Computer",
		"$1299.99",
		"$12.50",
		"Raw SQL (2 products)",
		"ORM (2 products)",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestHomeHandler_Index_CatalogError(t *testing.T) {
	e := newEcho(t)
	h := NewHomeHandler(&stubCatalog{err: errors.New("db down")})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if err := h.Index(c); err == nil {
		t.Fatalf("expected error")
	}
}

func TestHomeHandler_Error_NoStore(t *testing.T) {
	e := newEcho(t)
	h := NewHomeHandler(&stubCatalog{})

	req := httptest.NewRequest(http.MethodGet, "/Home/Error", nil)
	rec := httptest.NewRecorder()
	rec.Header().Set(echo.HeaderXRequestID, "req-42")
	c := e.NewContext(req, rec)

	if err := h.Error(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Header().Get(echo.HeaderCacheControl); !strings.Contains(got, "no-store") {
		t.Fatalf("expected no-store, got %q", got)
	}
	if !strings.Contains(rec.Body.String(), "req-42") {
		t.Fatalf("expected request id in body")
	}
}

func TestHomeHandler_Privacy(t *testing.T) {
	e := newEcho(t)
	h := NewHomeHandler(&stubCatalog{})

	req := httptest.NewRequest(http.MethodGet, "/Home/Privacy", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Privacy(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Privacy Policy") {
		t.Fatalf("expected privacy page")
	}
}
