// Package citsmart implements the session handshake and report client for
// the CITSMART/4biz backend. Reports are reached through the dynamic report
// REST endpoints using a shared service-account credential; there is no
// session renewal, callers log in again when a request fails.
package citsmart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	sharedConfig "suspensos/internal/shared/config"
	"suspensos/internal/shared/errors"
	"suspensos/internal/shared/logger"
)

const (
	// The backend rejects unknown agents on some installations.
	userAgent = "insomnia/11.4.0"

	preflightPath = "/4biz/"
	loginPath     = "/4biz/services/login"

	jsessionCookie  = "JSESSIONID"
	authTokenCookie = "AUTH-TOKEN"

	// Best-effort limit when reading diagnostic bodies.
	maxErrorBodySize = 64 << 10
)

// Some installations answer the login call with an XML body instead of an
// AUTH-TOKEN cookie.
var sessionIDPattern = regexp.MustCompile(`(?i)<SessionID>([^<]+)</SessionID>`)

// Session is the opaque handle returned by the login handshake. It carries
// no expiry information.
type Session struct {
	AuthToken    string
	CookieHeader string
	BaseURL      string

	client *Client
}

// Client performs the two-step login handshake and authenticated report
// calls. It is safe for concurrent use.
type Client struct {
	cfg        sharedConfig.CitsmartConfig
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(cfg sharedConfig.CitsmartConfig, log logger.Interface) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
		logger: log,
	}
}

// Login performs the two-step handshake: an unauthenticated preflight GET to
// obtain a baseline JSESSIONID, then the credential POST. Cookies from the
// login response overwrite same-named preflight cookies. The session token
// comes from the AUTH-TOKEN cookie when present, else from a <SessionID>
// fragment in the login body.
func (c *Client) Login(ctx context.Context) (*Session, error) {
	if c.cfg.Username == "" || c.cfg.Password == "" {
		return nil, errors.NewConfigurationError(
			"CITSMART credentials are not configured",
			"set citsmart.username and citsmart.password (or SUSPENSOS_CITSMART_USERNAME / SUSPENSOS_CITSMART_PASSWORD)",
		)
	}

	baseURL := strings.TrimRight(c.cfg.BaseURL, "/")
	if baseURL == "" {
		return nil, errors.NewConfigurationError("CITSMART base URL is not configured", "set citsmart.base_url")
	}

	cookies, err := c.preflight(ctx, baseURL)
	if err != nil {
		return nil, err
	}

	token, cookieHeader, err := c.login(ctx, baseURL, cookies)
	if err != nil {
		return nil, err
	}

	c.logger.Debugw("CITSMART session established", "has_token", token != "")

	return &Session{
		AuthToken:    token,
		CookieHeader: cookieHeader,
		BaseURL:      baseURL,
		client:       c,
	}, nil
}

// preflight issues the unauthenticated GET that seeds the JSESSIONID cookie.
// The response status is irrelevant; only Set-Cookie headers matter.
func (c *Client) preflight(ctx context.Context, baseURL string) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+preflightPath, nil)
	if err != nil {
		return nil, errors.NewUpstreamError("failed to build CITSMART preflight request", err.Error())
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewUpstreamError("CITSMART preflight request failed", err.Error())
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))

	cookies := map[string]string{}
	mergeCookies(cookies, resp.Cookies(), jsessionCookie)
	return cookies, nil
}

// login posts the credentials, carrying the preflight cookie, and assembles
// the final cookie set.
func (c *Client) login(ctx context.Context, baseURL string, cookies map[string]string) (token, cookieHeader string, err error) {
	payload, err := json.Marshal(map[string]string{
		"clientId": c.cfg.ClientID,
		"language": c.cfg.Language,
		"userName": c.cfg.Username,
		"password": c.cfg.Password,
	})
	if err != nil {
		return "", "", errors.NewInternalError("failed to encode CITSMART login payload", err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+loginPath, bytes.NewReader(payload))
	if err != nil {
		return "", "", errors.NewUpstreamError("failed to build CITSMART login request", err.Error())
	}
	req.Header.Set("Accept", "application/xml, text/xml, */*")
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.8")
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	req.Header.Set("Origin", baseURL)
	req.Header.Set("Referer", baseURL+preflightPath)
	req.Header.Set("User-Agent", userAgent)
	if header := buildCookieHeader(cookies); header != "" {
		req.Header.Set("Cookie", header)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", errors.NewAuthenticationError("CITSMART login request failed", err.Error())
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		details := strings.TrimSpace(string(body))
		if details == "" {
			details = resp.Status
		}
		return "", "", errors.NewAuthenticationError("CITSMART login failed", details)
	}

	// Login cookies overwrite same-named preflight cookies.
	mergeCookies(cookies, resp.Cookies(), jsessionCookie, authTokenCookie)

	if cookies[authTokenCookie] == "" {
		if m := sessionIDPattern.FindSubmatch(body); m != nil {
			if sessionID := strings.TrimSpace(string(m[1])); sessionID != "" {
				cookies[authTokenCookie] = sessionID
			}
		}
	}

	cookieHeader = buildCookieHeader(cookies)
	if cookieHeader == "" {
		return "", "", errors.NewSessionError(
			"no CITSMART session cookies after login",
			fmt.Sprintf("login returned %s without %s or %s", resp.Status, jsessionCookie, authTokenCookie),
		)
	}

	return cookies[authTokenCookie], cookieHeader, nil
}

func mergeCookies(dst map[string]string, cookies []*http.Cookie, names ...string) {
	for _, cookie := range cookies {
		for _, name := range names {
			if cookie.Name == name && cookie.Value != "" {
				dst[name] = cookie.Value
			}
		}
	}
}

// buildCookieHeader assembles the Cookie header in a fixed name order so the
// handshake output is deterministic.
func buildCookieHeader(cookies map[string]string) string {
	var parts []string
	for _, name := range []string{jsessionCookie, authTokenCookie} {
		if value := cookies[name]; value != "" {
			parts = append(parts, name+"="+value)
		}
	}
	return strings.Join(parts, "; ")
}
