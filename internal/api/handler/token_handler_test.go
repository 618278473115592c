package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
)

func TestTokenHandler_Issue(t *testing.T) {
	e := newEcho(t)
	h := NewTokenHandler(&stubLoginService{
		loginFn: func(_ context.Context, username, remoteIP string) (*domain.IssuedToken, error) {
			if remoteIP == "" {
				t.Fatalf("expected remote ip")
			}
			return &domain.IssuedToken{Token: "tok", Username: username, TokenID: "jti", ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	})

	c, rec := jsonRequest(e, http.MethodPost, "/api/token", `{"username":"alice_brown"}`)
	if err := h.Issue(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok" || resp["username"] != "alice_brown" {
		t.Fatalf("unexpected payload %+v", resp)
	}
	if _, leaked := resp["TokenID"]; leaked {
		t.Fatalf("token id must not be serialised")
	}
}

func TestTokenHandler_Issue_Blank(t *testing.T) {
	e := newEcho(t)
	h := NewTokenHandler(&stubLoginService{
		loginFn: func(context.Context, string, string) (*domain.IssuedToken, error) {
			return nil, domain.ErrInvalidUser
		},
	})

	for _, body := range []string{`{}`, `{"username":"   "}`} {
		c, rec := jsonRequest(e, http.MethodPost, "/api/token", body)
		_ = h.Issue(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
}
