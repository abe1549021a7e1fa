//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"yatra/backend/internal/network"
	"yatra/backend/internal/repository"
	"yatra/backend/pkg/hashutil"
	"yatra/backend/pkg/logger"
)

const (
	siteverifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"
	verifyTimeout = 8 * time.Second
	retryBackoff  = 200 * time.Millisecond

	// challengeMaxAge bounds how old an issued challenge may be. Anything
	// older, or timestamped in the future, is rejected.
	challengeMaxAge = 120 * time.Second
	// consumedTokenTTL is how long a consumed hash blocks reuse. Tokens
	// older than challengeMaxAge fail the freshness check anyway.
	consumedTokenTTL = 2 * time.Minute

	// Turnstile secret keys carry this prefix; anything else is a
	// misconfigured deployment, not a client problem.
	secretKeyPrefix = "0x"
)

// ChallengeVerifier proves that a request carries a fresh, unused challenge
// token bound to the expected action. Every failure mode is terminal and
// fail-closed: an inconclusive upstream answer is never treated as success.
type ChallengeVerifier interface {
	Verify(ctx context.Context, token, remoteIP, expectedAction string) error
}

type turnstileVerifier struct {
	secret        string
	hostnames     map[string]struct{}
	tokens        repository.ConsumedTokenRepository
	clientFactory *network.ClientFactory
	now           func() time.Time
}

// NewTurnstileVerifier creates a verifier against Cloudflare Turnstile.
// allowedHostnames is the set of hostnames challenges may be issued for;
// leaving it empty is a fatal misconfiguration surfaced on every Verify.
func NewTurnstileVerifier(secret string, allowedHostnames []string, tokens repository.ConsumedTokenRepository, clientFactory *network.ClientFactory) ChallengeVerifier {
	hostnames := make(map[string]struct{}, len(allowedHostnames))
	for _, h := range allowedHostnames {
		if trimmed := strings.ToLower(strings.TrimSpace(h)); trimmed != "" {
			hostnames[trimmed] = struct{}{}
		}
	}
	return &turnstileVerifier{
		secret:        strings.TrimSpace(secret),
		hostnames:     hostnames,
		tokens:        tokens,
		clientFactory: clientFactory,
		now:           time.Now,
	}
}

type siteverifyResponse struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	Action      string   `json:"action"`
	ErrorCodes  []string `json:"error-codes"`
}

func (s *turnstileVerifier) Verify(ctx context.Context, token, remoteIP, expectedAction string) error {
	if s.secret == "" || !strings.HasPrefix(s.secret, secretKeyPrefix) || len(s.hostnames) == 0 {
		logger.Error("turnstile misconfigured",
			"module", "service", "resource", "turnstile",
			"secret_set", s.secret != "", "hostnames", len(s.hostnames))
		return errMisconfigured
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return errMissingToken
	}

	resp, status, err := s.siteverify(ctx, token, remoteIP)
	if err != nil {
		logger.Warn("turnstile unreachable", "module", "service", "resource", "turnstile", "error", err)
		return errUnavailable
	}

	// 401/403 means the secret is wrong for this account; retrying will
	// never help until an operator fixes it.
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		logger.Error("turnstile rejected credentials", "module", "service", "resource", "turnstile", "status_code", status)
		return errMisconfigured
	}
	if status != http.StatusOK {
		logger.Warn("turnstile http error", "module", "service", "resource", "turnstile", "status_code", status)
		return errUnavailable
	}

	for _, code := range resp.ErrorCodes {
		if code == "invalid-input-secret" {
			logger.Error("turnstile invalid secret", "module", "service", "resource", "turnstile")
			return errMisconfigured
		}
	}

	// Includes "timeout-or-duplicate": an ambiguous answer is a rejection.
	if !resp.Success {
		logger.Debug("turnstile verification failed", "module", "service", "resource", "turnstile", "error_codes", strings.Join(resp.ErrorCodes, ","))
		return errVerifyFailed
	}

	hostname := strings.ToLower(strings.TrimSpace(resp.Hostname))
	if hostname == "" {
		return errHostname
	}
	if _, ok := s.hostnames[hostname]; !ok {
		logger.Warn("turnstile hostname mismatch", "module", "service", "resource", "turnstile", "hostname", hostname)
		return errHostname
	}

	issuedAt, parseErr := time.Parse(time.RFC3339, resp.ChallengeTS)
	if parseErr != nil {
		return errStaleToken
	}
	age := s.now().Sub(issuedAt)
	if age < 0 || age > challengeMaxAge {
		return errStaleToken
	}

	if expectedAction != "" && resp.Action != expectedAction {
		logger.Warn("turnstile action mismatch", "module", "service", "resource", "turnstile", "action", resp.Action, "expected", expectedAction)
		return errActionMatch
	}

	// Consume the token only after the upstream has definitively approved
	// it: there is no pending half-state to clean up if the client goes
	// away mid-request.
	hash := hashutil.HMACSHA256Hex(s.secret, token)
	if consumeErr := s.tokens.Consume(ctx, hash, s.now().Add(consumedTokenTTL)); consumeErr != nil {
		if errors.Is(consumeErr, repository.ErrDuplicate) {
			logger.Warn("turnstile token replay", "module", "service", "resource", "turnstile")
			return errReplay
		}
		logger.Error("turnstile ledger write failed", "module", "service", "resource", "turnstile", "error", consumeErr)
		return errTokenStorage
	}

	return nil
}

// siteverify calls the upstream with at most one retry on timeout-class
// failures.
func (s *turnstileVerifier) siteverify(ctx context.Context, token, remoteIP string) (*siteverifyResponse, int, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			case <-time.After(retryBackoff):
			}
		}

		resp, status, err := s.doSiteverify(ctx, token, remoteIP)
		if err == nil {
			return resp, status, nil
		}
		lastErr = err
		if !isTimeoutErr(err) {
			break
		}
	}
	return nil, 0, lastErr
}

func (s *turnstileVerifier) doSiteverify(ctx context.Context, token, remoteIP string) (*siteverifyResponse, int, error) {
	form := url.Values{}
	form.Set("secret", s.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, siteverifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, 0, fmt.Errorf("build siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := s.clientFactory.NewHTTPClient(verifyTimeout)
	httpResp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(httpResp.Body, 4096))
		return &siteverifyResponse{}, httpResp.StatusCode, nil
	}

	var parsed siteverifyResponse
	if err := json.NewDecoder(io.LimitReader(httpResp.Body, 1<<20)).Decode(&parsed); err != nil {
		return nil, 0, fmt.Errorf("decode siteverify response: %w", err)
	}
	return &parsed, httpResp.StatusCode, nil
}

func isTimeoutErr(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
