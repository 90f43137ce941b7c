package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"user-account-api/internal/application/ports"
	domain "user-account-api/internal/domain/user"
	jwtSvc "user-account-api/internal/infrastructure/jwt"
	"user-account-api/internal/interface/api/rest/dto/user"
)

const testSecret = "test-secret"

type FakeUserService struct {
	CreateUserFunc     func(ctx context.Context, u domain.User, password string) (*domain.User, error)
	FindUsersFunc      func(ctx context.Context, q domain.Query) (domain.Users, domain.PageMeta, error)
	FindUserByIDFunc   func(ctx context.Context, id domain.UUID) (*domain.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	UpdateUserFunc     func(ctx context.Context, id domain.UUID, patch domain.Patch) (*domain.User, error)
	DeleteUserFunc     func(ctx context.Context, id domain.UUID) error
	RestoreUserFunc    func(ctx context.Context, id domain.UUID) (*domain.User, error)
	ChangePasswordFunc func(ctx context.Context, id domain.UUID, oldPassword, newPassword string) error
}

func (f *FakeUserService) CreateUser(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, u, password)
}
func (f *FakeUserService) FindUsers(ctx context.Context, q domain.Query) (domain.Users, domain.PageMeta, error) {
	if f.FindUsersFunc == nil {
		return nil, domain.PageMeta{}, errors.New("not used")
	}
	return f.FindUsersFunc(ctx, q)
}
func (f *FakeUserService) FindUserByID(ctx context.Context, id domain.UUID) (*domain.User, error) {
	if f.FindUserByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUserByIDFunc(ctx, id)
}
func (f *FakeUserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.FindByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindByEmailFunc(ctx, email)
}
func (f *FakeUserService) UpdateUser(ctx context.Context, id domain.UUID, patch domain.Patch) (*domain.User, error) {
	if f.UpdateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateUserFunc(ctx, id, patch)
}
func (f *FakeUserService) DeleteUser(ctx context.Context, id domain.UUID) error {
	if f.DeleteUserFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteUserFunc(ctx, id)
}
func (f *FakeUserService) RestoreUser(ctx context.Context, id domain.UUID) (*domain.User, error) {
	if f.RestoreUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RestoreUserFunc(ctx, id)
}
func (f *FakeUserService) ChangePassword(ctx context.Context, id domain.UUID, oldPassword, newPassword string) error {
	if f.ChangePasswordFunc == nil {
		return errors.New("not used")
	}
	return f.ChangePasswordFunc(ctx, id, oldPassword, newPassword)
}

func setupRouter(t *testing.T, us ports.UserService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	NewUserController(r, us, zap.NewNop(), jwtSvc.New(testSecret), true)

	return r
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func authHeader(t *testing.T, secret string) map[string]string {
	t.Helper()
	tok, err := jwtSvc.New(secret).GenerateJWT(uuid.NewString(), "admin", time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func errCode(resp map[string]any) string {
	eb, _ := resp["error"].(map[string]any)
	code, _ := eb["code"].(string)
	return code
}

func validCreateRequest() user.CreateRequest {
	return user.CreateRequest{
		Email:     "john.doe@example.com",
		FirstName: "John",
		LastName:  "Doe",
		Password:  "s3cret-pass",
		Phone:     "+33612345678",
	}
}

func someDomainUser() *domain.User {
	now := time.Now()
	return &domain.User{
		ID:           uuid.New(),
		Email:        "john.doe@example.com",
		FirstName:    "John",
		LastName:     "Doe",
		PasswordHash: "$2a$10$hash",
		Phone:        "+33612345678",
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserController_GetUsersHandler(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		mockUS      func() ports.UserService
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:       "400 bad pagination params",
			path:       RouteUsers + "?page=0&limit=1000",
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name: "500 when service fails",
			path: RouteUsers,
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindUsersFunc: func(ctx context.Context, q domain.Query) (domain.Users, domain.PageMeta, error) {
						return nil, domain.PageMeta{}, errors.New("db error")
					},
				}
			},
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error",
		},
		{
			name: "200 success with meta",
			path: RouteUsers + "?search=doe&page=2&limit=10",
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindUsersFunc: func(ctx context.Context, q domain.Query) (domain.Users, domain.PageMeta, error) {
						assert.Equal(t, "doe", q.Search)
						assert.Equal(t, 2, q.Page)
						assert.Equal(t, 10, q.Limit)
						return domain.Users{someDomainUser()},
							domain.PageMeta{Total: 25, Page: 2, Limit: 10, TotalPages: 3}, nil
					},
				}
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Users retrieved successfully",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockUS())
			rr := doReq(t, r, http.MethodGet, tt.path, nil, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			resp := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				assert.Equal(t, false, resp["success"])
				assert.Equal(t, tt.wantCode, errCode(resp))
			}
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, resp["message"])
			}
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, true, resp["success"])
				meta, ok := resp["meta"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, float64(25), meta["total"])
				assert.Equal(t, float64(3), meta["totalPages"])
			}
		})
	}
}

func TestUserController_GetUserHandler(t *testing.T) {
	okID := uuid.New()

	tests := []struct {
		name        string
		userID      string
		mockUS      func() ports.UserService
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:       "400 invalid uuid",
			userID:     "not-a-uuid",
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:   "404 not found",
			userID: okID.String(),
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindUserByIDFunc: func(ctx context.Context, id domain.UUID) (*domain.User, error) {
						return nil, domain.ErrNotFound
					},
				}
			},
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "User not found",
		},
		{
			name:   "200 success",
			userID: okID.String(),
			mockUS: func() ports.UserService {
				u := someDomainUser()
				u.ID = okID
				return &FakeUserService{
					FindUserByIDFunc: func(ctx context.Context, id domain.UUID) (*domain.User, error) {
						assert.Equal(t, okID, id)
						return u, nil
					},
				}
			},
			wantStatus:  http.StatusOK,
			wantMessage: "User retrieved successfully",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockUS())
			rr := doReq(t, r, http.MethodGet, RouteUsers+"/"+tt.userID, nil, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			resp := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errCode(resp))
			}
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, resp["message"])
			}
			if tt.wantStatus == http.StatusOK {
				data, ok := resp["data"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, okID.String(), data["id"])
				assert.NotContains(t, data, "password")
				assert.NotContains(t, data, "passwordHash")
			}
		})
	}
}

func TestUserController_CreateUserHandler(t *testing.T) {
	validReq := validCreateRequest()

	tests := []struct {
		name        string
		headers     map[string]string
		body        any
		mockUS      func() ports.UserService
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "401 missing auth header",
			headers:     nil,
			body:        validReq,
			mockUS:      func() ports.UserService { return &FakeUserService{} },
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "UNAUTHORIZED",
			wantMessage: "missing Authorization header",
		},
		{
			name:        "401 invalid format",
			headers:     map[string]string{"Authorization": "Token something"},
			body:        validReq,
			mockUS:      func() ports.UserService { return &FakeUserService{} },
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid token format",
		},
		{
			name: "401 wrong signature",
			headers: func() map[string]string {
				tok, _ := jwtSvc.New("other-secret").GenerateJWT(uuid.NewString(), "admin", time.Hour)
				return map[string]string{"Authorization": "Bearer " + tok}
			}(),
			body:        validReq,
			mockUS:      func() ports.UserService { return &FakeUserService{} },
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid token",
		},
		{
			name:       "400 invalid JSON",
			body:       "{bad json",
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name: "400 validation error",
			body: user.CreateRequest{
				Email:     "bad",
				FirstName: "",
				LastName:  "",
				Password:  "123",
				Phone:     "123",
			},
			mockUS:      func() ports.UserService { return &FakeUserService{} },
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_ERROR",
			wantMessage: "Validation failed",
		},
		{
			name: "409 email already exists",
			body: validReq,
			mockUS: func() ports.UserService {
				return &FakeUserService{
					CreateUserFunc: func(ctx context.Context, du domain.User, password string) (*domain.User, error) {
						return nil, domain.ErrEmailExists
					},
				}
			},
			wantStatus:  http.StatusConflict,
			wantCode:    "CONFLICT",
			wantMessage: "User with this email already exists",
		},
		{
			name: "500 service error",
			body: validReq,
			mockUS: func() ports.UserService {
				return &FakeUserService{
					CreateUserFunc: func(ctx context.Context, du domain.User, password string) (*domain.User, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
		{
			name: "200 success",
			body: validReq,
			mockUS: func() ports.UserService {
				u := someDomainUser()
				return &FakeUserService{
					CreateUserFunc: func(ctx context.Context, du domain.User, password string) (*domain.User, error) {
						assert.Equal(t, validReq.Email, du.Email)
						assert.Equal(t, validReq.Password, password)
						assert.Equal(t, domain.RoleUser, du.Role)
						assert.True(t, du.IsActive)
						return u, nil
					},
				}
			},
			wantStatus:  http.StatusOK,
			wantMessage: "User created successfully",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			headers := tt.headers
			if headers == nil && tt.wantStatus != http.StatusUnauthorized {
				headers = authHeader(t, testSecret)
			}

			r := setupRouter(t, tt.mockUS())
			rr := doReq(t, r, http.MethodPost, RouteUsers, tt.body, headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			resp := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				assert.Equal(t, false, resp["success"])
				assert.Equal(t, tt.wantCode, errCode(resp))
			}
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, resp["message"])
			}
			if tt.wantStatus == http.StatusOK {
				data, ok := resp["data"].(map[string]any)
				require.True(t, ok)
				assert.NotContains(t, data, "password")
			}
		})
	}
}

func TestUserController_UpdateUserHandler(t *testing.T) {
	okID := uuid.New()
	newName := "Johnny"

	tests := []struct {
		name        string
		body        any
		mockUS      func() ports.UserService
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name: "409 email taken",
			body: map[string]any{"email": "other@example.com"},
			mockUS: func() ports.UserService {
				return &FakeUserService{
					UpdateUserFunc: func(ctx context.Context, id domain.UUID, patch domain.Patch) (*domain.User, error) {
						return nil, domain.ErrEmailTaken
					},
				}
			},
			wantStatus:  http.StatusConflict,
			wantCode:    "CONFLICT",
			wantMessage: "Email already taken",
		},
		{
			name: "404 not found",
			body: map[string]any{"firstName": newName},
			mockUS: func() ports.UserService {
				return &FakeUserService{
					UpdateUserFunc: func(ctx context.Context, id domain.UUID, patch domain.Patch) (*domain.User, error) {
						return nil, domain.ErrNotFound
					},
				}
			},
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "User not found",
		},
		{
			name: "200 partial patch",
			body: map[string]any{"firstName": newName},
			mockUS: func() ports.UserService {
				u := someDomainUser()
				u.ID = okID
				u.FirstName = newName
				return &FakeUserService{
					UpdateUserFunc: func(ctx context.Context, id domain.UUID, patch domain.Patch) (*domain.User, error) {
						assert.Equal(t, okID, id)
						require.NotNil(t, patch.FirstName)
						assert.Equal(t, newName, *patch.FirstName)
						assert.Nil(t, patch.Email)
						assert.Nil(t, patch.LastName)
						return u, nil
					},
				}
			},
			wantStatus:  http.StatusOK,
			wantMessage: "User updated successfully",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockUS())
			rr := doReq(t, r, http.MethodPatch, RouteUsers+"/"+okID.String(), tt.body, authHeader(t, testSecret))
			require.Equal(t, tt.wantStatus, rr.Code)

			resp := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errCode(resp))
			}
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, resp["message"])
			}
			if tt.wantStatus == http.StatusOK {
				data, ok := resp["data"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, newName, data["firstName"])
			}
		})
	}
}

func TestUserController_DeleteUserHandler(t *testing.T) {
	okID := uuid.New()

	t.Run("404 not found", func(t *testing.T) {
		r := setupRouter(t, &FakeUserService{
			DeleteUserFunc: func(ctx context.Context, id domain.UUID) error {
				return domain.ErrNotFound
			},
		})
		rr := doReq(t, r, http.MethodDelete, RouteUsers+"/"+okID.String(), nil, authHeader(t, testSecret))
		require.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("200 success with null data", func(t *testing.T) {
		r := setupRouter(t, &FakeUserService{
			DeleteUserFunc: func(ctx context.Context, id domain.UUID) error {
				assert.Equal(t, okID, id)
				return nil
			},
		})
		rr := doReq(t, r, http.MethodDelete, RouteUsers+"/"+okID.String(), nil, authHeader(t, testSecret))
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeEnvelope(t, rr)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "User deleted successfully", resp["message"])
		v, ok := resp["data"]
		require.True(t, ok, "data key must be present even when null")
		assert.Nil(t, v)
	})
}

func TestUserController_RestoreUserHandler(t *testing.T) {
	okID := uuid.New()

	t.Run("404 nothing to restore", func(t *testing.T) {
		r := setupRouter(t, &FakeUserService{
			RestoreUserFunc: func(ctx context.Context, id domain.UUID) (*domain.User, error) {
				return nil, domain.ErrNotFound
			},
		})
		rr := doReq(t, r, http.MethodPost, RouteUsers+"/"+okID.String()+"/restore", nil, authHeader(t, testSecret))
		require.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("200 success", func(t *testing.T) {
		u := someDomainUser()
		u.ID = okID
		r := setupRouter(t, &FakeUserService{
			RestoreUserFunc: func(ctx context.Context, id domain.UUID) (*domain.User, error) {
				return u, nil
			},
		})
		rr := doReq(t, r, http.MethodPost, RouteUsers+"/"+okID.String()+"/restore", nil, authHeader(t, testSecret))
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeEnvelope(t, rr)
		assert.Equal(t, "User restored successfully", resp["message"])
		data, ok := resp["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, okID.String(), data["id"])
	})
}

func TestUserController_ChangePasswordHandler(t *testing.T) {
	okID := uuid.New()

	tests := []struct {
		name        string
		body        any
		mockUS      func() ports.UserService
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "400 new password too short",
			body:        user.ChangePasswordRequest{OldPassword: "old-secret", NewPassword: "123"},
			mockUS:      func() ports.UserService { return &FakeUserService{} },
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_ERROR",
			wantMessage: "Validation failed",
		},
		{
			name: "400 wrong old password",
			body: user.ChangePasswordRequest{OldPassword: "wrong-pass", NewPassword: "new-secret"},
			mockUS: func() ports.UserService {
				return &FakeUserService{
					ChangePasswordFunc: func(ctx context.Context, id domain.UUID, oldPassword, newPassword string) error {
						return domain.ErrInvalidOldPassword
					},
				}
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_CREDENTIALS",
			wantMessage: "Old password is incorrect",
		},
		{
			name: "404 unknown user",
			body: user.ChangePasswordRequest{OldPassword: "old-secret", NewPassword: "new-secret"},
			mockUS: func() ports.UserService {
				return &FakeUserService{
					ChangePasswordFunc: func(ctx context.Context, id domain.UUID, oldPassword, newPassword string) error {
						return domain.ErrNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name: "200 success without a token",
			body: user.ChangePasswordRequest{OldPassword: "old-secret", NewPassword: "new-secret"},
			mockUS: func() ports.UserService {
				return &FakeUserService{
					ChangePasswordFunc: func(ctx context.Context, id domain.UUID, oldPassword, newPassword string) error {
						assert.Equal(t, okID, id)
						assert.Equal(t, "old-secret", oldPassword)
						assert.Equal(t, "new-secret", newPassword)
						return nil
					},
				}
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Password changed successfully",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockUS())
			// deliberately no Authorization header on any case
			rr := doReq(t, r, http.MethodPost, RouteUsers+"/"+okID.String()+"/change-password", tt.body, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			resp := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errCode(resp))
			}
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, resp["message"])
			}
			if tt.wantStatus == http.StatusOK {
				v, ok := resp["data"]
				require.True(t, ok)
				assert.Nil(t, v)
			}
		})
	}
}
