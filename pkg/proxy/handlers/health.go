package handlers

import (
	"context"
	"errors"
	"time"

	"mercator-hq/botchat/pkg/proxy"
	"mercator-hq/botchat/pkg/security/secrets"
	"mercator-hq/botchat/pkg/telemetry/health"
)

// errUpstreamUnhealthy is reported after repeated upstream failures.
var errUpstreamUnhealthy = errors.New("upstream failed 3 consecutive calls")

// NewHealthChecker registers the readiness checks of the proxy:
//   - credential (critical): an API key is configured
//   - upstream (advisory): the passive upstream health is good
//
// The upstream is never called by these checks.
func NewHealthChecker(credentials secrets.CredentialProvider, upstream Upstream) *health.Checker {
	checker := health.New(2 * time.Second)

	checker.RegisterCheck("credential", func(ctx context.Context) error {
		if _, ok := credentials.APIKey(); !ok {
			return errors.New(proxy.ErrMsgMissingCredential)
		}
		return nil
	})

	checker.RegisterAdvisory("upstream", func(ctx context.Context) error {
		if !upstream.IsHealthy() {
			return errUpstreamUnhealthy
		}
		return nil
	})

	return checker
}
