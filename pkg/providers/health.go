package providers

import (
	"log/slog"
	"time"
)

// unhealthyThreshold is the number of consecutive failures after which the
// upstream is reported unhealthy.
const unhealthyThreshold = 3

// Health returns a copy of the upstream health derived from recent calls.
func (c *Client) Health() Health {
	c.healthMu.RLock()
	defer c.healthMu.RUnlock()
	return c.health
}

// IsHealthy reports whether fewer than three calls in a row have failed.
func (c *Client) IsHealthy() bool {
	c.healthMu.RLock()
	defer c.healthMu.RUnlock()
	return c.health.Healthy
}

// updateHealth records the outcome of one call.
func (c *Client) updateHealth(err error) {
	c.healthMu.Lock()
	defer c.healthMu.Unlock()

	c.health.TotalRequests++

	if err == nil {
		if !c.health.Healthy {
			slog.Info("upstream marked healthy",
				"endpoint", c.endpoint,
				"previous_failures", c.health.ConsecutiveFailures,
			)
		}
		c.health.Healthy = true
		c.health.ConsecutiveFailures = 0
		c.health.LastError = ""
		c.health.LastSuccess = time.Now()
		return
	}

	c.health.FailedRequests++
	c.health.ConsecutiveFailures++
	c.health.LastError = err.Error()

	if c.health.Healthy && c.health.ConsecutiveFailures >= unhealthyThreshold {
		c.health.Healthy = false
		slog.Warn("upstream marked unhealthy",
			"endpoint", c.endpoint,
			"consecutive_failures", c.health.ConsecutiveFailures,
			"error", err,
		)
	}
}
