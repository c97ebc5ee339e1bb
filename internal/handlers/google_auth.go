package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleOAuth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/felpschneider/TripSync/internal/config"
	"github.com/felpschneider/TripSync/internal/dto"
	"github.com/felpschneider/TripSync/internal/middleware"
	"github.com/felpschneider/TripSync/internal/models"
	"github.com/felpschneider/TripSync/internal/storage"
	"github.com/felpschneider/TripSync/internal/utils"
)

// GoogleAuthHandler handles Google OAuth authentication
type GoogleAuthHandler struct {
	store        storage.Store
	oauth2Config *oauth2.Config
	config       *config.Config
}

// NewGoogleAuthHandler creates a new GoogleAuthHandler instance
func NewGoogleAuthHandler(store storage.Store, cfg *config.Config) *GoogleAuthHandler {
	oauth2Config := &oauth2.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		RedirectURL:  cfg.GoogleOAuth.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &GoogleAuthHandler{
		store:        store,
		oauth2Config: oauth2Config,
		config:       cfg,
	}
}

// GoogleLogin initiates the Google OAuth login flow
// @Summary Google OAuth login
// @Description Return the Google authorization URL to redirect the user to
// @Tags authentication
// @Produce json
// @Success 200 {object} map[string]string "Google OAuth URL"
// @Router /api/v1/auth/google/login [get]
func (h *GoogleAuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	// State parameter for CSRF protection
	state := uuid.New().String()
	authURL := h.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOffline)

	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{
		"auth_url": authURL,
		"state":    state,
	})
}

// GoogleCallback handles the OAuth redirect from Google
// @Summary Google OAuth callback
// @Description Exchange the authorization code, provisioning an account on first login
// @Tags authentication
// @Produce json
// @Param code query string true "Authorization code from Google"
// @Param state query string false "State parameter"
// @Success 302 "Redirect to the frontend with a token"
// @Failure 400 {object} utils.ErrorBody "Missing authorization code"
// @Failure 401 {object} utils.ErrorBody "Invalid authorization code"
// @Router /api/v1/auth/google/callback [get]
func (h *GoogleAuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing authorization code", "Authorization code is required")
		return
	}

	token, err := h.oauth2Config.Exchange(r.Context(), code)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid authorization code", err.Error())
		return
	}

	userInfo, err := h.getGoogleUserInfo(r.Context(), token.AccessToken)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get user info", err.Error())
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), userInfo.Email)
	if errors.Is(err, storage.ErrNotFound) {
		user, err = h.createGoogleUser(r.Context(), userInfo)
	}
	if err != nil {
		writeStoreError(w, err)
		return
	}

	jwtToken, err := middleware.GenerateToken(user.ID, user.Email, &h.config.JWT)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}

	redirect := fmt.Sprintf("%s/auth/callback?token=%s&user_id=%s",
		h.config.App.BaseURL, url.QueryEscape(jwtToken), user.ID.String())
	http.Redirect(w, r, redirect, http.StatusFound)
}

// getGoogleUserInfo fetches the profile of the token's owner from Google
func (h *GoogleAuthHandler) getGoogleUserInfo(ctx context.Context, accessToken string) (*dto.GoogleUserInfo, error) {
	service, err := googleOAuth2.NewService(ctx, option.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
	})))
	if err != nil {
		return nil, err
	}

	userInfo, err := service.Userinfo.Get().Do()
	if err != nil {
		return nil, err
	}

	verified := false
	if userInfo.VerifiedEmail != nil {
		verified = *userInfo.VerifiedEmail
	}

	return &dto.GoogleUserInfo{
		ID:       userInfo.Id,
		Email:    userInfo.Email,
		Name:     userInfo.Name,
		Picture:  userInfo.Picture,
		Verified: verified,
	}, nil
}

// createGoogleUser provisions an account for a first-time Google login. The
// password hash is random; these accounts can only log in via OAuth until
// they set a password through the profile endpoint.
func (h *GoogleAuthHandler) createGoogleUser(ctx context.Context, info *dto.GoogleUserInfo) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New(),
		Name:         info.Name,
		Email:        info.Email,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if info.Picture != "" {
		pic := info.Picture
		user.ProfileImageURL = &pic
	}

	if err := h.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
