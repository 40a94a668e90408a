package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"gorm.io/gorm"

	"github.com/sportsmockery/smgo/config"
	"github.com/sportsmockery/smgo/middleware"
	"github.com/sportsmockery/smgo/models"
	"github.com/sportsmockery/smgo/utils"
)

const tokenTTL = 7 * 24 * time.Hour

// AuthController handles account registration, JWT login/logout, and the
// OAuth login flow mobile clients use for social sign-in.
type AuthController struct {
	db *gorm.DB
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

type registerRequest struct {
	DisplayName string `json:"display_name" binding:"required,min=2,max=32"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
}

// Register creates a local account and returns a signed token.
func (a *AuthController) Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var count int64
	if err := a.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to create account")
		return
	}
	if count > 0 {
		utils.Fail(ctx, http.StatusConflict, "email already registered")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to create account")
		return
	}

	user := models.User{
		DisplayName:  utils.Sanitize(req.DisplayName),
		Email:        email,
		PasswordHash: hash,
		Provider:     "local",
	}
	if err := a.db.Create(&user).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to create account")
		return
	}

	a.issueToken(ctx, user, http.StatusCreated)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and returns a signed token.
func (a *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	var user models.User
	err := a.db.Where("email = ? AND provider = ?", strings.ToLower(strings.TrimSpace(req.Email)), "local").
		First(&user).Error
	if err != nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		utils.Fail(ctx, http.StatusUnauthorized, "invalid email or password")
		return
	}

	a.issueToken(ctx, user, http.StatusOK)
}

// Me returns the authenticated user's profile.
func (a *AuthController) Me(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	var user models.User
	if err := a.db.First(&user, userID).Error; err != nil {
		utils.Fail(ctx, http.StatusNotFound, "user not found")
		return
	}
	utils.JSON(ctx, http.StatusOK, user)
}

// Logout revokes the presented token until its natural expiry.
func (a *AuthController) Logout(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		utils.Fail(ctx, http.StatusBadRequest, "missing bearer token")
		return
	}
	token := strings.TrimSpace(parts[1])

	claims, err := utils.ParseToken(token)
	if err == nil && claims.ExpiresAt != nil {
		utils.BlacklistToken(token, claims.ExpiresAt.Time)
	}
	ctx.Status(http.StatusNoContent)
}

func (a *AuthController) oauthConfig() *oauth2.Config {
	cfg := config.Get()
	redirectBase := cfg.OAuthRedirectBase
	if redirectBase == "" {
		redirectBase = cfg.BaseURL
	}
	return &oauth2.Config{
		ClientID:     cfg.OAuthClientID,
		ClientSecret: cfg.OAuthClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  cfg.OAuthAuthURL,
			TokenURL: cfg.OAuthTokenURL,
		},
		RedirectURL: strings.TrimRight(redirectBase, "/") + "/api/auth/oauth/callback",
		Scopes:      []string{"profile", "email"},
	}
}

// OAuthRedirect starts the social sign-in flow.
func (a *AuthController) OAuthRedirect(ctx *gin.Context) {
	cfg := config.Get()
	if cfg.OAuthClientID == "" || cfg.OAuthAuthURL == "" {
		utils.Fail(ctx, http.StatusServiceUnavailable, "social sign-in is not configured")
		return
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to start sign-in")
		return
	}
	state := hex.EncodeToString(buf)
	utils.SaveState(state, 10*time.Minute)

	ctx.Redirect(http.StatusFound, a.oauthConfig().AuthCodeURL(state))
}

// oauthProfile is the subset of the identity provider's userinfo document we
// map onto a local account.
type oauthProfile struct {
	Sub     string `json:"sub"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// OAuthCallback exchanges the authorization code, upserts the user, and
// returns the same token payload as Login.
func (a *AuthController) OAuthCallback(ctx *gin.Context) {
	state := ctx.Query("state")
	if state == "" || !utils.ConsumeState(state) {
		utils.Fail(ctx, http.StatusBadRequest, "invalid state")
		return
	}
	code := ctx.Query("code")
	if code == "" {
		utils.Fail(ctx, http.StatusBadRequest, "missing code")
		return
	}

	conf := a.oauthConfig()
	token, err := conf.Exchange(ctx.Request.Context(), code)
	if err != nil {
		utils.Sugar.Warnf("oauth exchange failed: %v", err)
		utils.Fail(ctx, http.StatusBadGateway, "sign-in failed")
		return
	}

	profile, err := fetchOAuthProfile(ctx, conf, token)
	if err != nil {
		utils.Sugar.Warnf("oauth userinfo failed: %v", err)
		utils.Fail(ctx, http.StatusBadGateway, "sign-in failed")
		return
	}
	providerID := profile.Sub
	if providerID == "" {
		providerID = profile.ID
	}
	if providerID == "" {
		utils.Fail(ctx, http.StatusBadGateway, "sign-in failed")
		return
	}

	var user models.User
	err = a.db.Where("provider = ? AND provider_id = ?", "oauth", providerID).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			DisplayName: utils.Sanitize(nonEmpty(profile.Name, "Fan")),
			Email:       strings.ToLower(profile.Email),
			Provider:    "oauth",
			ProviderID:  providerID,
			AvatarURL:   profile.Picture,
		}
		err = a.db.Create(&user).Error
	}
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "sign-in failed")
		return
	}

	a.issueToken(ctx, user, http.StatusOK)
}

func fetchOAuthProfile(ctx *gin.Context, conf *oauth2.Config, token *oauth2.Token) (*oauthProfile, error) {
	// Userinfo lives next to the token endpoint on our identity provider.
	userinfoURL := strings.TrimSuffix(conf.Endpoint.TokenURL, "/token") + "/userinfo"
	resp, err := conf.Client(ctx.Request.Context(), token).Get(userinfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var profile oauthProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (a *AuthController) issueToken(ctx *gin.Context, user models.User, status int) {
	token, err := utils.GenerateToken(user.ID, user.DisplayName, tokenTTL)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to issue token")
		return
	}
	utils.JSON(ctx, status, gin.H{
		"token":      token,
		"expires_in": int(tokenTTL.Seconds()),
		"user":       user,
	})
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
