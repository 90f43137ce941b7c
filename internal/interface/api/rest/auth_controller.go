package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-account-api/internal/application/ports"
	"user-account-api/internal/application/services"
	"user-account-api/internal/interface/api/rest/dto/auth"
	"user-account-api/internal/interface/api/rest/response"
	"user-account-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	userService ports.UserService
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		userService: userService,
		authService: authService,
	}

	r.POST(RouteLogin, ac.LoginHandler)

	return ac
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if errs := validator.ValidateLogin(&req); errs != nil {
		badRequest(c, errs)
		return
	}

	u, err := ac.userService.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		ac.logger.Error("FindByEmail() error", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			response.Err(response.MsgInternalError, response.CodeInternal),
		)
		return
	}
	if u == nil {
		c.JSON(
			http.StatusNotFound,
			response.Err(response.MsgUserNotFound, response.CodeNotFound),
		)
		return
	}

	token, err := ac.authService.GenerateToken(u, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				response.Err("invalid credentials", response.CodeInvalidCredentials),
			)
			return
		}

		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.Stringer("user_id", u.ID))
		c.JSON(
			http.StatusInternalServerError,
			response.Err(response.MsgInternalError, response.CodeInternal),
		)
		return
	}

	c.JSON(http.StatusOK, response.OK("Login successful", auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
}
