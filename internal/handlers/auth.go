package handlers

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/felpschneider/TripSync/internal/config"
	"github.com/felpschneider/TripSync/internal/dto"
	"github.com/felpschneider/TripSync/internal/middleware"
	"github.com/felpschneider/TripSync/internal/models"
	"github.com/felpschneider/TripSync/internal/storage"
	"github.com/felpschneider/TripSync/internal/utils"
)

const minPasswordLength = 6

// AuthHandler handles signup and login
type AuthHandler struct {
	store  storage.Store
	jwtCfg *config.JWTConfig
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(store storage.Store, jwtCfg *config.JWTConfig) *AuthHandler {
	return &AuthHandler{store: store, jwtCfg: jwtCfg}
}

// Signup handles account creation
// @Summary Create a new account
// @Description Register with name, email, and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup data"
// @Success 201 {object} dto.AuthResponse "Account created"
// @Failure 400 {object} utils.ErrorBody "Invalid request data"
// @Failure 409 {object} utils.ErrorBody "Email already registered"
// @Router /api/v1/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Name, email, and password are required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid email", "The email address is not valid")
		return
	}
	if len(req.Password) < minPasswordLength {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Password too short", "Password must be at least 6 characters")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to hash password", err.Error())
		return
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			utils.WriteErrorResponse(w, http.StatusConflict, "Email already registered", "An account with this email already exists")
			return
		}
		writeStoreError(w, err)
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, h.jwtCfg)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  userToResponse(user),
	})
}

// Login handles email/password authentication
// @Summary Log in
// @Description Authenticate with email and password, returning a JWT
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Authenticated"
// @Failure 401 {object} utils.ErrorBody "Invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Email and password are required")
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Same response as a wrong password
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Email or password is incorrect")
			return
		}
		writeStoreError(w, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Email or password is incorrect")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, h.jwtCfg)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  userToResponse(user),
	})
}

func userToResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:              u.ID.String(),
		Name:            u.Name,
		Email:           u.Email,
		ProfileImageURL: u.ProfileImageURL,
		PixKey:          u.PixKey,
		CreatedAt:       utils.FormatTimestamp(u.CreatedAt),
	}
}
