package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/finance-tracker/internal/domain"
	"github.com/msomdec/finance-tracker/internal/service"
)

const tokenCookieName = "token"

// CookieOptions controls the attributes of the session cookie. Secure and
// SameSite=Strict are expected in production.
type CookieOptions struct {
	Secure   bool
	SameSite http.SameSite
	MaxAge   int
}

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth    *service.AuthService
	cookies CookieOptions
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, cookies CookieOptions) *AuthHandler {
	return &AuthHandler{auth: auth, cookies: cookies}
}

// HandleSignup processes a JSON registration request.
// POST /api/auth/signup
// Request:  {"email":"...","password":"...","firstName":"...","lastName":"..."}
// Response: 201 {"msg":"Signup successful","email":"..."} and the token cookie.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var in SignupInput
	if err := readJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	token, user, err := h.auth.Register(r.Context(), in.Email, in.Password, in.FirstName, in.LastName)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "Email already in use")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("signup user", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	h.setTokenCookie(w, token)
	slog.Info("user signed up", "email", user.Email)
	writeJSON(w, http.StatusCreated, map[string]string{
		"msg":   "Signup successful",
		"email": user.Email,
	})
}

// HandleSignin processes a JSON login request.
// POST /api/auth/signin
// Request:  {"email":"...","password":"..."}
// Response: 200 {"msg":"Signin successful","email":"..."} and the token cookie.
func (h *AuthHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	var in SigninInput
	if err := readJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	token, user, err := h.auth.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		slog.Error("signin user", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	h.setTokenCookie(w, token)
	slog.Info("user signed in", "email", user.Email)
	writeJSON(w, http.StatusOK, map[string]string{
		"msg":   "Signin successful",
		"email": user.Email,
	})
}

// HandleLogout clears the token cookie. Tokens are stateless, so this is the
// only logout there is.
// POST /api/auth/logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: h.cookies.SameSite,
		MaxAge:   -1,
	})

	writeJSON(w, http.StatusOK, map[string]string{"msg": "Logged out successfully"})
}

func (h *AuthHandler) setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: h.cookies.SameSite,
		MaxAge:   h.cookies.MaxAge,
	})
}
