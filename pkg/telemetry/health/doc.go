// Package health provides the liveness, readiness and version endpoints of
// the BotChat proxy.
//
// # Endpoints
//
//   - /health: liveness, always 200 while the process runs
//   - /ready: readiness, 503 when a critical check fails
//   - /version: build information
//
// # Usage
//
//	checker := health.New(2 * time.Second)
//	checker.RegisterCheck("credential", func(ctx context.Context) error {
//	    if !credentials.Configured() {
//	        return errors.New("API key is not configured")
//	    }
//	    return nil
//	})
//	checker.RegisterAdvisory("upstream", upstreamCheck)
//	health.Register(mux, checker, health.NewVersionInfo(version, commit, date))
//
// Checks run concurrently, each bounded by the checker timeout. The upstream
// is never probed: its advisory check reads the passive health the upstream
// client derives from real traffic.
package health
