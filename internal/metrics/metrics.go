// Package metrics exposes the Prometheus counters of the ucn-accounts server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics holds all Prometheus metrics for the application. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	UsersRegistered prometheus.Counter
	Logins          *prometheus.CounterVec
	PasswordResets  prometheus.Counter
	GitHubRequests  *prometheus.CounterVec
}

// New creates all metrics on a private registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		UsersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "ucn_accounts_users_registered_total",
			Help: "Total number of users registered",
		}),
		Logins: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ucn_accounts_logins_total",
			Help: "Total number of sign-in attempts by result",
		}, []string{"result"}),
		PasswordResets: factory.NewCounter(prometheus.CounterOpts{
			Name: "ucn_accounts_password_resets_total",
			Help: "Total number of successful password resets",
		}),
		GitHubRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ucn_accounts_github_requests_total",
			Help: "Total number of GitHub proxy requests by result",
		}, []string{"result"}),
	}
}

// IncrementUsersRegistered records a successful sign-up.
func (m *Metrics) IncrementUsersRegistered() {
	if m == nil {
		return
	}
	m.UsersRegistered.Inc()
}

// ObserveLogin records a sign-in attempt.
func (m *Metrics) ObserveLogin(ok bool) {
	if m == nil {
		return
	}
	m.Logins.WithLabelValues(result(ok)).Inc()
}

// IncrementPasswordResets records a successful password reset.
func (m *Metrics) IncrementPasswordResets() {
	if m == nil {
		return
	}
	m.PasswordResets.Inc()
}

// ObserveGitHubRequest records an upstream GitHub call.
func (m *Metrics) ObserveGitHubRequest(ok bool) {
	if m == nil {
		return
	}
	m.GitHubRequests.WithLabelValues(result(ok)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func result(ok bool) string {
	if ok {
		return ResultSuccess
	}
	return ResultFailure
}
