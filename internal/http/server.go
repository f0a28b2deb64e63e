package http

import (
	"net/http"

	"github.com/mauv0809/swiss-tribble/internal/config"
	"github.com/mauv0809/swiss-tribble/internal/http/handlers"
	"github.com/mauv0809/swiss-tribble/internal/metrics"
	"github.com/mauv0809/swiss-tribble/internal/notifier"
	"github.com/mauv0809/swiss-tribble/internal/processor"
	"github.com/mauv0809/swiss-tribble/internal/pubsub"
	"github.com/mauv0809/swiss-tribble/internal/tournament"
)

func NewServer(service tournament.Service, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, processor *processor.Processor, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Service:        service,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	slackAuth := slackVerifyMiddleware(s.Cfg.Slack.SigningSecret)

	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(s.Service), paramsMiddleware))
	s.Router.Handle("GET /players", Chain(handlers.ListPlayersHandler(s.Service), paramsMiddleware))
	s.Router.Handle("POST /players", Chain(handlers.RegisterPlayerHandler(s.Processor), paramsMiddleware))
	s.Router.Handle("GET /matches", Chain(handlers.ListMatchesHandler(s.Service), paramsMiddleware))
	s.Router.Handle("POST /matches", Chain(handlers.ReportMatchHandler(s.Processor), paramsMiddleware))
	s.Router.Handle("GET /standings", Chain(handlers.StandingsHandler(s.Service), paramsMiddleware))
	s.Router.Handle("GET /pairings", Chain(handlers.PairingsHandler(s.Processor), paramsMiddleware))
	s.Router.Handle("POST /reset", Chain(handlers.ResetHandler(s.Service), paramsMiddleware))
	s.Router.Handle("POST /events/match-reported", Chain(handlers.MatchReportedHandler(s.Processor, s.pubsub), paramsMiddleware))
	s.Router.Handle("POST /slack/command/standings", Chain(handlers.StandingsCommandHandler(s.Service, s.Notifier), paramsMiddleware, slackAuth))
	s.Router.Handle("POST /slack/command/pairings", Chain(handlers.PairingsCommandHandler(s.Processor, s.Notifier), paramsMiddleware, slackAuth))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
