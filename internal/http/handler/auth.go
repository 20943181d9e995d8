package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"user-service/internal/identity"
	"user-service/internal/token"
	"user-service/pkg/validator"
)

const msgLoginSuccess = "Login successful"

type AuthHandler struct {
	gateway identity.Gateway
}

func NewAuthHandler(gateway identity.Gateway) *AuthHandler {
	return &AuthHandler{gateway: gateway}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) validate() error {
	if err := validator.Required(
		validator.Field{Name: "email", Value: r.Email},
		validator.Field{Name: "password", Value: r.Password},
	); err != nil {
		return err
	}

	return validator.Email(r.Email)
}

type UserPayload struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type LoginData struct {
	AccessToken  string      `json:"accessToken"`
	IDToken      string      `json:"idToken"`
	RefreshToken string      `json:"refreshToken"`
	User         UserPayload `json:"user"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return respondMappedError(c, CORSMethodsLogin, err)
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := req.validate(); err != nil {
		return respondFailure(c, http.StatusBadRequest, CORSMethodsLogin, msgValidationFailed, err.Error())
	}

	tokens, err := h.gateway.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondMappedError(c, CORSMethodsLogin, err)
	}

	// The ID token carries the profile attributes; a token that cannot be
	// decoded still yields a usable response with defaults.
	claims, err := token.Decode(tokens.IDToken)
	if err != nil {
		claims = &token.Claims{Email: req.Email, Role: token.DefaultRole}
	}

	return respondSuccess(c, http.StatusOK, CORSMethodsLogin, msgLoginSuccess, LoginData{
		AccessToken:  tokens.AccessToken,
		IDToken:      tokens.IDToken,
		RefreshToken: tokens.RefreshToken,
		User: UserPayload{
			Email:     claims.Email,
			FirstName: claims.GivenName,
			LastName:  claims.FamilyName,
			Role:      claims.Role,
		},
	})
}
