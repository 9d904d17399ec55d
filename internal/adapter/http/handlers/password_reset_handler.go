package handlers

import (
	"errors"
	"net/http"

	request "sobujigangas/internal/adapter/http/dto/request"
	response "sobujigangas/internal/adapter/http/dto/response"
	"sobujigangas/internal/usecase"
	"sobujigangas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidResetPayload = pkg.NewDomainErrorSimple("INVALID_RESET_INPUT", "Invalid password reset payload", http.StatusBadRequest)
)

// PasswordResetHandler handles the three-step recovery flow.

type PasswordResetHandler struct {
	usecase usecase.IPasswordResetUseCase
}

func NewPasswordResetHandler(uc usecase.IPasswordResetUseCase) *PasswordResetHandler {
	return &PasswordResetHandler{usecase: uc}
}

// SendResetCode always answers 200 with the same message, so the
// endpoint cannot be used to probe which addresses exist.
func (h *PasswordResetHandler) SendResetCode(c *gin.Context) {
	var payload request.PasswordResetSendRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidResetPayload.HTTPStatus, errInvalidResetPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SendResetCode(c.Request.Context(), payload.Email); err != nil {
		appErr := mapPasswordResetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PasswordResetSentResponse{
		Message: "Se o e-mail estiver cadastrado, um código foi enviado",
	})
}

func (h *PasswordResetHandler) VerifyResetCode(c *gin.Context) {
	var payload request.PasswordResetVerifyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidResetPayload.HTTPStatus, errInvalidResetPayload.ToHTTPError())
		return
	}

	valid, err := h.usecase.VerifyResetCode(c.Request.Context(), payload.Email, payload.Code)
	if err != nil {
		appErr := mapPasswordResetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PasswordResetVerifyResponse{Valid: valid})
}

func (h *PasswordResetHandler) ResetPassword(c *gin.Context) {
	var payload request.PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidResetPayload.HTTPStatus, errInvalidResetPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ResetPassword(c.Request.Context(), payload.Email, payload.Code, payload.NewPassword); err != nil {
		appErr := mapPasswordResetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPasswordResetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("WEAK_PASSWORD", "Password does not meet the policy", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidResetCode):
		return pkg.NewDomainErrorSimple("INVALID_RESET_CODE", "Invalid or expired reset code", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("INVALID_RESET_CODE", "Invalid or expired reset code", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
