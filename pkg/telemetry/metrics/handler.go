package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler serves the collector's registry in the Prometheus text format,
// or OpenMetrics when the scraper asks for it. A disabled collector answers
// 404 so a stale scrape config fails loudly.
func (c *Collector) Handler() http.Handler {
	if !c.active() {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
