package v1

import (
	"errors"
	"net/http"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/chat"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/livestream"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/shop"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body returned on any failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse is the body returned when an operation has no entity to
// return.
type InfoResponse struct {
	Message string `json:"message"`
}

var notFoundErrors = []error{
	accounts.ErrNotFound,
	social.ErrNotFound,
	chat.ErrNotFound,
	shop.ErrNotFound,
	livestream.ErrNotFound,
}

var forbiddenErrors = []error{
	accounts.ErrForbidden,
	social.ErrForbidden,
	social.ErrBlocked,
	chat.ErrForbidden,
	chat.ErrNotParticipant,
	shop.ErrForbidden,
	livestream.ErrForbidden,
}

var conflictErrors = []error{
	accounts.ErrEmailTaken,
	accounts.ErrProfileNameTaken,
	accounts.ErrPhoneNumberTaken,
	social.ErrAlreadyExists,
	social.ErrAlreadyMember,
	shop.ErrAlreadyExists,
}

// writeError maps service errors onto HTTP status codes.
func writeError(ctx *gin.Context, err error) {
	status := http.StatusBadRequest

	switch {
	case matchesAny(err, notFoundErrors):
		status = http.StatusNotFound
	case matchesAny(err, forbiddenErrors):
		status = http.StatusForbidden
	case matchesAny(err, conflictErrors):
		status = http.StatusConflict
	case errors.Is(err, accounts.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}

	ctx.JSON(status, ErrorResponse{Message: err.Error()})
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// writeBindError reports a malformed or invalid request body.
func writeBindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request: " + err.Error()})
}
