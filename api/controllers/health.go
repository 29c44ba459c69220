package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/hyrpunkten/hyrpunkten-backend/api/responses"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/config"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/db"
	pkgerrors "github.com/hyrpunkten/hyrpunkten-backend/pkg/errors"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Hyrpunkten-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Hyrpunkten-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database not ready"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
