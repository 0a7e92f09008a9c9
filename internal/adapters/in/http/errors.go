package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/archive"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse translates core errors into the wire error envelope.
func errorResponse(ctx echo.Context, err error) error {
	return ctx.JSON(statusForError(err), servers.Error{
		Code:    int32(statusForError(err)),
		Message: err.Error(),
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConcurrentModification),
		errors.Is(err, archive.ErrAlreadyArchived):
		return http.StatusConflict
	case errors.Is(err, errs.ErrExternalService):
		return http.StatusBadGateway
	case errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, commands.ErrBatchIsEmpty),
		errors.Is(err, order.ErrAlreadyExpediated),
		errors.Is(err, order.ErrMissingCarrierMapping):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
