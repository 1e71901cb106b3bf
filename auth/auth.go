// Package auth consumes the journal API's authentication endpoints. Token
// issuance lives on the server; this package only obtains the cookie
// credential and keeps it across CLI invocations.
package auth

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
	Msg   string `json:"msg"`
	Err   string `json:"error"`
}

func (r tokenResponse) message() string {
	if r.Msg != "" {
		return r.Msg
	}
	return r.Err
}

func httpClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}

// Login exchanges email and password for a cookie token.
func Login(ctx context.Context, baseURL, email, password string) (string, error) {
	return post(ctx, baseURL, "/auth/login", email, password)
}

// Register creates an account and returns its first token.
func Register(ctx context.Context, baseURL, email, password string) (string, error) {
	return post(ctx, baseURL, "/auth/register", email, password)
}

// Logout asks the server to invalidate the token. The local credential
// file should be removed regardless of the outcome.
func Logout(ctx context.Context, baseURL, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(baseURL, "/")+"/api/auth/logout", bytes.NewReader([]byte("{}")))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "token", Value: token})

	resp, err := httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("logout: status %d", resp.StatusCode)
	}
	return nil
}

func post(ctx context.Context, baseURL, path, email, password string) (string, error) {
	body, err := json.Marshal(credentialsRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(baseURL, "/")+"/api"+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	var tr tokenResponse
	_ = json.Unmarshal(data, &tr)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if msg := tr.message(); msg != "" {
			return "", fmt.Errorf("auth failed (status %d): %s", resp.StatusCode, msg)
		}
		return "", fmt.Errorf("auth failed (status %d)", resp.StatusCode)
	}
	if tr.Token == "" {
		return "", fmt.Errorf("auth: server returned no token")
	}
	return tr.Token, nil
}

// SaveToken writes the credential file, owner-readable only.
func SaveToken(path, token string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// LoadToken reads the credential file. A missing file means signed out.
func LoadToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("not signed in, run: tradebook login")
		}
		return "", fmt.Errorf("read credentials: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("not signed in, run: tradebook login")
	}
	return token, nil
}

// ClearToken removes the credential file.
func ClearToken(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}
