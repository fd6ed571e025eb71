package httpserver

import (
	"context"

	"github.com/buaazp/fasthttprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/sentinelgraph/sentinel-scraper/internal/envcheck"
	"github.com/sentinelgraph/sentinel-scraper/internal/log"
)

type checker interface {
	Check(ctx context.Context) envcheck.Report
}

// Server exposes /healthz and /metrics.
type Server struct {
	addr    string
	checker checker

	log log.Logger
}

func (s *Server) Run(ctx context.Context) error {
	router := fasthttprouter.New()
	router.GET("/healthz", s.health)
	router.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()))

	srv := &fasthttp.Server{Handler: router.Handler}

	go func() {
		<-ctx.Done()

		if err := srv.Shutdown(); err != nil {
			s.log.WithError(err).Error("http server shutdown")
		}
	}()

	s.log.WithField("address", s.addr).Info("http server listening")

	return srv.ListenAndServe(s.addr)
}

func (s *Server) health(ctx *fasthttp.RequestCtx) {
	report := s.checker.Check(ctx)

	data, err := jsoniter.Marshal(&report)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")

	if !report.Ready() {
		ctx.SetStatusCode(fasthttp.StatusServiceUnavailable)
	}

	ctx.SetBody(data)
}

func NewServer(addr string, checker checker, logger log.Logger) *Server {
	return &Server{addr: addr, checker: checker, log: logger}
}
