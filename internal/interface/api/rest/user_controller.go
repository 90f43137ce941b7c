package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-account-api/internal/application/ports"
	"user-account-api/internal/infrastructure/jwt"
	"user-account-api/internal/interface/api/rest/dto/user"
	"user-account-api/internal/interface/api/rest/middleware"
	"user-account-api/internal/interface/api/rest/response"
	"user-account-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
	// exposeDetails attaches the underlying error text to 500 responses;
	// off in production.
	exposeDetails bool
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	exposeDetails bool,
) *UserController {
	uc := &UserController{
		userService:   userService,
		logger:        logger,
		exposeDetails: exposeDetails,
	}

	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.POST(RouteUsers, middleware.AuthMiddleware(jwtService), uc.CreateUserHandler)
	r.PATCH(RouteUser, middleware.AuthMiddleware(jwtService), uc.UpdateUserHandler)
	r.DELETE(RouteUser, middleware.AuthMiddleware(jwtService), uc.DeleteUserHandler)
	r.POST(RouteUserRestore, middleware.AuthMiddleware(jwtService), uc.RestoreUserHandler)
	// the old password is the credential here, no token required
	r.POST(RouteUserPassword, uc.ChangePasswordHandler)

	return uc
}

func (uc *UserController) respondError(c *gin.Context, op string, err error) {
	if status, body, ok := mapDomainError(err); ok {
		c.JSON(status, body)
		return
	}

	uc.logger.Error(op+" error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, internalError(uc.exposeDetails, err))
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	q, errs := validator.ValidateListQuery(
		c.Query("search"),
		c.Query("role"),
		c.Query("isActive"),
		c.Query("page"),
		c.Query("limit"),
	)
	if errs != nil {
		badRequest(c, errs)
		return
	}

	users, meta, err := uc.userService.FindUsers(c.Request.Context(), q)
	if err != nil {
		uc.respondError(c, "FindUsers()", err)
		return
	}

	c.JSON(http.StatusOK, response.OKWithMeta(
		response.MsgUsersFetched,
		user.ToResponseUsers(users),
		response.Meta{
			Total:      meta.Total,
			Page:       meta.Page,
			Limit:      meta.Limit,
			TotalPages: meta.TotalPages,
		},
	))
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("user_id"))
	if !ok {
		badRequest(c, "user_id must be a valid UUID")
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), id)
	if err != nil {
		uc.respondError(c, "FindUserByID()", err)
		return
	}

	c.JSON(http.StatusOK, response.OK(response.MsgUserFound, user.ToResponseUser(*u)))
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if errs := validator.ValidateCreateUser(&req); errs != nil {
		badRequest(c, errs)
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), user.ToDomainUser(req), req.Password)
	if err != nil {
		uc.respondError(c, "CreateUser()", err)
		return
	}

	c.JSON(http.StatusOK, response.OK(response.MsgUserCreated, user.ToResponseUser(*u)))
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("user_id"))
	if !ok {
		badRequest(c, "user_id must be a valid UUID")
		return
	}

	var req user.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if errs := validator.ValidateUpdateUser(&req); errs != nil {
		badRequest(c, errs)
		return
	}

	u, err := uc.userService.UpdateUser(c.Request.Context(), id, user.ToDomainPatch(req))
	if err != nil {
		uc.respondError(c, "UpdateUser()", err)
		return
	}

	c.JSON(http.StatusOK, response.OK(response.MsgUserUpdated, user.ToResponseUser(*u)))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("user_id"))
	if !ok {
		badRequest(c, "user_id must be a valid UUID")
		return
	}

	if err := uc.userService.DeleteUser(c.Request.Context(), id); err != nil {
		uc.respondError(c, "DeleteUser()", err)
		return
	}

	c.JSON(http.StatusOK, response.OK(response.MsgUserDeleted, nil))
}

func (uc *UserController) RestoreUserHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("user_id"))
	if !ok {
		badRequest(c, "user_id must be a valid UUID")
		return
	}

	u, err := uc.userService.RestoreUser(c.Request.Context(), id)
	if err != nil {
		uc.respondError(c, "RestoreUser()", err)
		return
	}

	c.JSON(http.StatusOK, response.OK(response.MsgUserRestored, user.ToResponseUser(*u)))
}

func (uc *UserController) ChangePasswordHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("user_id"))
	if !ok {
		badRequest(c, "user_id must be a valid UUID")
		return
	}

	var req user.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if errs := validator.ValidateChangePassword(req); errs != nil {
		badRequest(c, errs)
		return
	}

	err := uc.userService.ChangePassword(c.Request.Context(), id, req.OldPassword, req.NewPassword)
	if err != nil {
		uc.respondError(c, "ChangePassword()", err)
		return
	}

	c.JSON(http.StatusOK, response.OK(response.MsgPasswordChanged, nil))
}
