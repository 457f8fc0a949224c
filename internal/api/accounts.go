package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stonksbro/nsepulse/internal/domain/dto"
	"github.com/stonksbro/nsepulse/internal/service"
	"github.com/stonksbro/nsepulse/internal/storage"
)

// Register handles POST /api/v1/auth/register requests.
//
// Responses:
//   - 201 Created: Returns a bearer token for the new account.
//   - 400 Bad Request: Malformed body or weak password.
//   - 409 Conflict: Username or email already registered.
//
// Register godoc
// @Summary      Register an account
// @Description  Creates a user and returns a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.RegisterRequest  true  "Account details"
// @Success      201      {object}  dto.TokenResponse    "Created"
// @Failure      400      {object}  dto.ErrorResponse    "Bad Request"
// @Failure      409      {object}  dto.ErrorResponse    "Conflict"
// @Router       /api/v1/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid register request", err))
		return
	}

	token, err := h.accounts.Register(c.Request.Context(), req)
	if errors.Is(err, storage.ErrDuplicate) {
		c.JSON(http.StatusConflict, dto.NewErrorResponse("username or email already registered", nil))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to register", err))
		return
	}

	c.JSON(http.StatusCreated, token)
}

// Login handles POST /api/v1/auth/login requests.
//
// Responses:
//   - 200 OK: Returns a bearer token.
//   - 400 Bad Request: Malformed body.
//   - 401 Unauthorized: Unknown username or wrong password.
//
// Login godoc
// @Summary      Log in
// @Description  Exchanges credentials for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.LoginRequest   true  "Credentials"
// @Success      200      {object}  dto.TokenResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Failure      401      {object}  dto.ErrorResponse  "Unauthorized"
// @Router       /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid login request", err))
		return
	}

	token, err := h.accounts.Login(c.Request.Context(), req)
	if errors.Is(err, service.ErrBadCredentials) {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("invalid username or password", nil))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to log in", err))
		return
	}

	c.JSON(http.StatusOK, token)
}
