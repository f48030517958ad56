package handler

import (
	"net/http"
	"pms/config"
	"pms/di"
	"pms/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger(cfg)

	di.InitializeService().Handler().ServeHTTP(w, r)
}
