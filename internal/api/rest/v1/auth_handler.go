package v1

import (
	"net/http"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for handling authentication operations
type AuthHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Refresh(ctx *gin.Context)
	Logout(ctx *gin.Context)
	ResetPassword(ctx *gin.Context)
}

type authHandler struct {
	accountService accounts.AccountService
	tokenManager   *auth.TokenManager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accountService accounts.AccountService, tokenManager *auth.TokenManager) AuthHandler {
	return &authHandler{
		accountService: accountService,
		tokenManager:   tokenManager,
	}
}

// Register creates an account and signs the new user in.
func (handler *authHandler) Register(ctx *gin.Context) {
	var request RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	user, err := handler.accountService.Register(ctx, accounts.RegisterInput{
		Email:       request.Email,
		ProfileName: request.ProfileName,
		Password:    request.Password,
		PhoneNumber: request.PhoneNumber,
		Gender:      request.Gender,
		DateOfBirth: request.DateOfBirth,
		ShareData:   request.ShareData,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	pair, err := handler.tokenManager.IssuePair(user.ID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	handler.setTokenCookies(ctx, pair)
	ctx.JSON(http.StatusCreated, TokenResponse{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
		User:         toUserResponse(user),
	})
}

// Login verifies credentials and issues a token pair.
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	user, err := handler.accountService.Authenticate(ctx, request.Email, request.Password)
	if err != nil {
		writeError(ctx, err)
		return
	}

	pair, err := handler.tokenManager.IssuePair(user.ID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	handler.setTokenCookies(ctx, pair)
	ctx.JSON(http.StatusOK, TokenResponse{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
		User:         toUserResponse(user),
	})
}

// Refresh exchanges a refresh token for a fresh pair. The token may be
// sent in the body or as a cookie.
func (handler *authHandler) Refresh(ctx *gin.Context) {
	var request RefreshRequest
	_ = ctx.ShouldBindJSON(&request)

	token := request.RefreshToken
	if token == "" {
		token, _ = ctx.Cookie(RefreshTokenCookie)
	}
	if token == "" {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "refresh token required"})
		return
	}

	userID, err := handler.tokenManager.VerifyRefresh(token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid or expired refresh token"})
		return
	}

	pair, err := handler.tokenManager.IssuePair(userID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	handler.setTokenCookies(ctx, pair)
	ctx.JSON(http.StatusOK, TokenResponse{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
	})
}

// Logout clears the token cookies.
func (handler *authHandler) Logout(ctx *gin.Context) {
	ctx.SetCookie(AccessTokenCookie, "", -1, "/", "", false, true)
	ctx.SetCookie(RefreshTokenCookie, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, InfoResponse{Message: "logged out"})
}

// ResetPassword sets a new password from an emailed one-time code.
func (handler *authHandler) ResetPassword(ctx *gin.Context) {
	var request ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	if err := handler.accountService.ResetPassword(ctx, request.Email, request.Code, request.NewPassword); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: "password reset"})
}

func (handler *authHandler) setTokenCookies(ctx *gin.Context, pair *auth.TokenPair) {
	ctx.SetCookie(AccessTokenCookie, pair.Access, int(handler.tokenManager.AccessTTL().Seconds()), "/", "", false, true)
	ctx.SetCookie(RefreshTokenCookie, pair.Refresh, int(handler.tokenManager.RefreshTTL().Seconds()), "/", "", false, true)
}
