package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"problem_tracker/internal/models"
	"problem_tracker/internal/service"
)

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandlers_RegisterAndLogin(t *testing.T) {
	user := &models.User{ID: "u-1", Username: "alice", CreatedAt: time.Now().UTC()}
	auth := &mockAuth{
		registerToken: "tok-reg",
		registerUser:  user,
		loginToken:    "tok-login",
		loginUser:     user,
	}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	// register success
	w := postJSON(r, "/api/auth/register", `{"username":"alice","password":"p"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("register status=%d, body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		AccessToken string      `json:"access_token"`
		TokenType   string      `json:"token_type"`
		User        models.User `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.AccessToken != "tok-reg" || resp.TokenType != "bearer" || resp.User.ID != "u-1" {
		t.Fatalf("unexpected register response: %+v", resp)
	}
	if auth.lastRegisterUsername != "alice" || auth.lastRegisterPassword != "p" {
		t.Fatalf("register did not pass credentials through")
	}

	// login success
	w = postJSON(r, "/api/auth/login", `{"username":"alice","password":"p"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.AccessToken != "tok-login" || resp.TokenType != "bearer" {
		t.Fatalf("unexpected login response: %+v", resp)
	}

	// malformed body → 422
	w = postJSON(r, "/api/auth/register", `{"username":1}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for bad body, got %d", w.Code)
	}
}

func TestAuthHandlers_RegisterConflict(t *testing.T) {
	auth := &mockAuth{registerErr: service.ErrUsernameTaken}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := postJSON(r, "/api/auth/register", `{"username":"alice","password":"p"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate username, got %d (body=%s)", w.Code, w.Body.String())
	}

	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Error != "Username already registered" {
		t.Fatalf("unexpected error message: %q", out.Error)
	}
}

func TestAuthHandlers_LoginInvalidCredentials(t *testing.T) {
	auth := &mockAuth{loginErr: service.ErrInvalidCredentials}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := postJSON(r, "/api/auth/login", `{"username":"alice","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad credentials, got %d (body=%s)", w.Code, w.Body.String())
	}
}
