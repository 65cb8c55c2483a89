package api

import (
	"errors"
	"net/http"

	"github.com/Dhruvg12/financial-app/internal/domain/models"
	xhttp "github.com/Dhruvg12/financial-app/pkg/http"
)

// mapDomainError translates the domain error taxonomy onto AppErrors with a
// stable code per class. Nothing is swallowed: retrieval and consistency
// failures keep their description in the response body.
func mapDomainError(err error) *xhttp.AppError {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return xhttp.NewAppError("ERR_BAD_REQUEST", verr.Field, verr.Reason, http.StatusBadRequest).WithError(err)
	}

	if errors.Is(err, models.ErrNoData) {
		return xhttp.NotFoundError(models.ErrNoData.Error())
	}

	var rerr *models.RetrievalError
	if errors.As(err, &rerr) {
		return xhttp.NewAppError("ERR_RETRIEVAL", "", rerr.Error(), http.StatusInternalServerError).WithError(err)
	}

	if errors.Is(err, models.ErrInconsistent) {
		return xhttp.NewAppError("ERR_INCONSISTENT", "", err.Error(), http.StatusInternalServerError).WithError(err)
	}

	return xhttp.InternalError(err.Error()).WithError(err)
}
