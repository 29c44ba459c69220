package controllers

import (
	"context"
	"net/http"

	"github.com/hyrpunkten/hyrpunkten-backend/api/responses"
	"github.com/hyrpunkten/hyrpunkten-backend/api/validators"
	"github.com/hyrpunkten/hyrpunkten-backend/internal/catalog"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/db/models"
	pkgerrors "github.com/hyrpunkten/hyrpunkten-backend/pkg/errors"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/logger"
)

const maxListOffset = 100_000

type catalogLister interface {
	ListActiveProducts(ctx context.Context, limit, offset int) ([]models.Product, error)
	ListActiveAddons(ctx context.Context, limit, offset int) ([]models.Addon, error)
}

func CatalogProducts(repo catalogLister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		limit, offset, err := listParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := repo.ListActiveProducts(r.Context(), limit, offset)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products"))
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

func CatalogAddons(repo catalogLister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		limit, offset, err := listParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := repo.ListActiveAddons(r.Context(), limit, offset)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list addons"))
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

func listParams(r *http.Request) (limit, offset int, err error) {
	limit, err = validators.ParseQueryInt(r, "limit", catalog.DefaultListLimit, 1, catalog.MaxListLimit)
	if err != nil {
		return 0, 0, err
	}
	offset, err = validators.ParseQueryInt(r, "offset", 0, 0, maxListOffset)
	if err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}
