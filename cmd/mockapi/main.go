package main

import (
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"MockAPI/internal/dataset"
	"MockAPI/pkg/kit"
)

func main() {
	service := "mockapi"
	log := kit.NewLogger(service).With(zap.String("instance", uuid.NewString()))
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")

	doc, err := dataset.Load()
	if err != nil {
		log.Fatal("load dataset failed", zap.Error(err))
	}

	store := dataset.NewStore(doc)
	log.Info("dataset loaded",
		zap.Int("customers", len(store.Customers())),
		zap.Int("products", len(store.Products())),
	)

	reg := prometheus.NewRegistry()
	dataset.RegisterRecordGauge(reg, store)

	s := &dataset.Server{Store: store, Log: log}
	h := dataset.NewHandler(s, dataset.HTTPDeps{
		Log:             log,
		Service:         service,
		Registry:        reg,
		MetricsEnabled:  getenv("METRICS_ENABLED", "true") == "true",
		MetricsToken:    os.Getenv("METRICS_TOKEN"),
		ReadLimitPerMin: getenvInt("READ_LIMIT_PER_MIN", 0),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
