package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"user-service/internal/identity"
	apperrors "user-service/pkg/errors"
	"user-service/pkg/validator"
)

const (
	msgUserCreated    = "User created successfully"
	msgUsersRetrieved = "Users retrieved successfully"
	msgNoUsersFound   = "No users found"
	msgUserInfo       = "User info retrieved successfully"
)

type UserHandler struct {
	gateway   identity.Gateway
	listLimit int64
}

func NewUserHandler(gateway identity.Gateway, listLimit int64) *UserHandler {
	return &UserHandler{
		gateway:   gateway,
		listLimit: listLimit,
	}
}

type CreateUserRequest struct {
	Email             string `json:"email"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Role              string `json:"role"`
	TemporaryPassword string `json:"temporaryPassword"`
}

// validate runs the checks in declaration order and stops at the first
// failure, keeping error messages deterministic.
func (r *CreateUserRequest) validate() error {
	if err := validator.Required(
		validator.Field{Name: "email", Value: r.Email},
		validator.Field{Name: "firstName", Value: r.FirstName},
		validator.Field{Name: "lastName", Value: r.LastName},
		validator.Field{Name: "role", Value: r.Role},
		validator.Field{Name: "temporaryPassword", Value: r.TemporaryPassword},
	); err != nil {
		return err
	}

	if err := validator.Email(r.Email); err != nil {
		return err
	}

	if err := validator.RoleName(r.Role); err != nil {
		return err
	}

	return validator.Password(r.TemporaryPassword)
}

type CreatedUserData struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Status    string `json:"status"`
}

type ListedUser struct {
	Email            string    `json:"email"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	CreatedDate      time.Time `json:"createdDate"`
	LastModifiedDate time.Time `json:"lastModifiedDate"`
}

type ListUsersData struct {
	Users      []ListedUser `json:"users"`
	TotalUsers int          `json:"totalUsers"`
}

type UserInfoData struct {
	User UserPayload `json:"user"`
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		return respondMappedError(c, CORSMethodsUsers, err)
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := req.validate(); err != nil {
		return respondFailure(c, http.StatusBadRequest, CORSMethodsUsers, msgValidationFailed, err.Error())
	}

	created, err := h.gateway.CreateUser(c.Request().Context(), identity.CreateUserInput{
		Email:             req.Email,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Role:              req.Role,
		TemporaryPassword: req.TemporaryPassword,
	})
	if err != nil {
		// A credential failure from the provider on an admin call means
		// the service itself is misconfigured, not the caller.
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return respondInternalError(c, CORSMethodsUsers, err)
		}
		return respondMappedError(c, CORSMethodsUsers, err)
	}

	return respondSuccess(c, http.StatusCreated, CORSMethodsUsers, msgUserCreated, CreatedUserData{
		UserID:    created.UserID,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Status:    created.Status,
	})
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.gateway.ListUsers(c.Request().Context(), h.listLimit)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return respondInternalError(c, CORSMethodsUsers, err)
		}
		return respondMappedError(c, CORSMethodsUsers, err)
	}

	listed := make([]ListedUser, 0, len(users))
	for _, user := range users {
		listed = append(listed, ListedUser{
			Email:            user.Email,
			FirstName:        user.FirstName,
			LastName:         user.LastName,
			Role:             user.Role,
			Status:           user.Status,
			CreatedDate:      user.CreatedDate,
			LastModifiedDate: user.LastModifiedDate,
		})
	}

	message := msgUsersRetrieved
	if len(listed) == 0 {
		message = msgNoUsersFound
	}

	return respondSuccess(c, http.StatusOK, CORSMethodsUsers, message, ListUsersData{
		Users:      listed,
		TotalUsers: len(listed),
	})
}

// Me answers from the already-decoded claims; no remote call is made.
func (h *UserHandler) Me(c echo.Context) error {
	claims := GetClaims(c)
	if claims == nil {
		return respondMappedError(c, CORSMethodsMe, apperrors.MissingCredential("no valid authorization token"))
	}

	return respondSuccess(c, http.StatusOK, CORSMethodsMe, msgUserInfo, UserInfoData{
		User: UserPayload{
			Email:     claims.Email,
			FirstName: claims.GivenName,
			LastName:  claims.FamilyName,
			Role:      claims.Role,
		},
	})
}
