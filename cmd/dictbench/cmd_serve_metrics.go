package main

import (
	"net/http"

	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dictbench/dictbench/pkg/util/log"
)

type serveMetricsCmd struct {
	Addr string `help:"address to listen on" default:":9090"`
}

// Run starts an HTTP server exposing the promauto counters/histograms
// registered by pkg/util/metrics, for whatever builds happen to run in
// this process. It blocks until the server exits.
func (cmd *serveMetricsCmd) Run() error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	level.Info(log.Logger).Log("msg", "serving metrics", "addr", cmd.Addr)
	return http.ListenAndServe(cmd.Addr, mux)
}
