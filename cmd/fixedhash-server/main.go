package main

import (
	"errors"
	"flag"
	"net/http"
	"os"

	"fixedhash/config"
	"fixedhash/database"
	"fixedhash/lib/logger"
	"fixedhash/lib/metrics"
	"fixedhash/redis/server"
	"fixedhash/tcp"
)

func main() {
	configFile := flag.String("config", os.Getenv("FIXEDHASH_CONFIG"), "path of the config file")
	flag.Parse()

	if err := config.SetupConfigProperties(*configFile); err != nil {
		logger.Fatal("load config: ", err)
	}
	props := config.Properties
	logger.Setup(props.LogLevel)

	tables, err := database.NewTables(props.LoadFactor)
	if err != nil {
		logger.Fatal("create tables: ", err)
	}

	if props.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			logger.Infof("serving metrics on %s", props.MetricsAddr)
			if err := http.ListenAndServe(props.MetricsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server: ", err)
			}
		}()
	}

	handler := server.MakeHandler(tables, props.MaxClients, props.RateLimit)
	err = tcp.ListenAndServeWithSignal(&tcp.Config{Address: props.Address()}, handler)
	if err != nil {
		logger.Fatal(err)
	}
}
