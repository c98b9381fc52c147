package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"litflix/internal/auth"
	"litflix/internal/entity"
	"litflix/internal/usecase"
)

const accessTokenTTL = 30 * time.Minute

type UserHandler struct {
	repo   usecase.UserRepository
	secret string
}

func NewUserHandler(repo usecase.UserRepository, secret string) *UserHandler {
	return &UserHandler{
		repo:   repo,
		secret: secret,
	}
}

type registerReq struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,password_strength"`
}

// @Summary Register new user
// @Description Create a new user account
// @Tags users
// @Accept json
// @Produce json
// @Param user body registerReq true "User registration data"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/auth/register [post]
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	_, err := h.repo.GetByEmail(r.Context(), req.Email)
	if err == nil {
		JSONError(w, http.StatusConflict, "ALREADY_EXISTS", "Email already exists", nil)
		return
	}
	if !errors.Is(err, usecase.ErrNotFound) {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	newUser := &entity.User{
		Email:    req.Email,
		Username: req.Username,
		Password: hashedPassword,
	}
	if err := h.repo.Create(r.Context(), newUser); err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccessCreated(w, map[string]any{
		"id":       newUser.ID,
		"email":    newUser.Email,
		"username": newUser.Username,
	})
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// @Summary Login user
// @Description Authenticate user and issue an access token
// @Tags users
// @Accept json
// @Produce json
// @Param login body loginReq true "Login credentials"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/login [post]
func (h *UserHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	user, err := h.repo.GetByEmail(r.Context(), req.Email)
	if err != nil || !auth.VerifyPassword(user.Password, req.Password) {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password", nil)
		return
	}

	token, err := auth.GenerateToken(h.secret, user.ID, accessTokenTTL)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccess(w, map[string]any{
		"access_token": token,
		"token_type":   "bearer",
		"expires_in":   int(accessTokenTTL.Seconds()),
	}, nil)
}

// @Summary Get current user
// @Description Get currently authenticated user details
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/me [get]
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFrom(r)
	if userID == "" {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	user, err := h.repo.GetByID(r.Context(), userID)
	if err != nil {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	JSONSuccess(w, map[string]any{
		"id":       user.ID,
		"email":    user.Email,
		"username": user.Username,
	}, nil)
}
