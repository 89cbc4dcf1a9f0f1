package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/lessonup/lessonup-api/internal/api/middleware"
	"github.com/lessonup/lessonup-api/internal/config"
	"github.com/lessonup/lessonup-api/internal/domain"
	"github.com/lessonup/lessonup-api/internal/service"
	"github.com/lessonup/lessonup-api/internal/validation"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *validation.Validator
	cfg         *config.Config
}

func NewAuthHandler(authService *service.AuthService, validator *validation.Validator, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
		cfg:         cfg,
	}
}

// Login checks the submitted credentials and mints a session. The frontend
// asks the user to pick parent or tutor before login; when that choice
// disagrees with the stored account type the success payload carries the
// stored type so the client can correct itself.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in validation.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeCodes(w, domain.CodeGeneralError)
		return
	}

	h.validator.SanitizeLogin(&in)
	if codes := h.validator.CheckLogin(&in); len(codes) > 0 {
		writeCodes(w, codes...)
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Username: in.Username,
		Password: in.Password,
		UserType: in.UserType,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeCodes(w, domain.CodeUserNotFound)
		case errors.Is(err, service.ErrPasswordRejected):
			writeCodes(w, domain.CodePasswordRejected)
		default:
			log.Printf("ERROR [auth.Login] login failed: %v", err)
			writeCodes(w, domain.CodeGeneralError)
		}
		return
	}

	h.setSessionCookie(w, result.Token)

	if result.User.UserType != in.UserType {
		writeJSON(w, []any{domain.CodeSuccess, result.User.UserType, result.User.ID})
		return
	}
	writeJSON(w, []any{domain.CodeSuccess, result.User.ID})
}

// Register validates the form, creates the account and logs the new user
// straight in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in validation.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeCodes(w, domain.CodeGeneralError)
		return
	}

	h.validator.SanitizeRegister(&in)
	if codes := h.validator.CheckRegister(&in); len(codes) > 0 {
		writeCodes(w, codes...)
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		First:    in.First,
		Last:     in.Last,
		Age:      in.Age,
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
		UserType: in.UserType,
		UserLang: in.UserLang,
	})
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			writeCodes(w, domain.CodeUsernameDuplicate)
			return
		}
		log.Printf("ERROR [auth.Register] registration failed: %v", err)
		writeCodes(w, domain.CodeGeneralError)
		return
	}

	h.setSessionCookie(w, result.Token)
	writeJSON(w, []any{domain.CodeSuccess, result.User.ID})
}

// Logout destroys the current session. Always succeeds, even without one.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.TokenFrom(r); token != "" {
		if err := h.authService.Logout(r.Context(), token); err != nil {
			log.Printf("ERROR [auth.Logout] failed to destroy session: %v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusOK)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionLifetime.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	})
}
