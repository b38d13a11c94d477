package v1

import (
	"net/http"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

// AccountHandler defines the interface for handling account and profile
// operations
type AccountHandler interface {
	GetMyProfile(ctx *gin.Context)
	GetUserProfile(ctx *gin.Context)
	UpdateProfile(ctx *gin.Context)
	ToggleProfileLock(ctx *gin.Context)
	SearchUsers(ctx *gin.Context)

	SendOTP(ctx *gin.Context)
	ChangePassword(ctx *gin.Context)
	ChangeEmail(ctx *gin.Context)
	ChangePhoneNumber(ctx *gin.Context)

	AddEmail(ctx *gin.Context)
	DeleteExtraEmail(ctx *gin.Context)
	AddPhoneNumber(ctx *gin.Context)
	DeleteExtraPhoneNumber(ctx *gin.Context)

	ListLocations(ctx *gin.Context)
	CreateLocation(ctx *gin.Context)
	UpdateLocation(ctx *gin.Context)
	DeleteLocation(ctx *gin.Context)

	ListWorks(ctx *gin.Context)
	CreateWork(ctx *gin.Context)
	UpdateWork(ctx *gin.Context)
	DeleteWork(ctx *gin.Context)

	ListEducations(ctx *gin.Context)
	CreateEducation(ctx *gin.Context)
	UpdateEducation(ctx *gin.Context)
	DeleteEducation(ctx *gin.Context)
}

type accountHandler struct {
	accountService     accounts.AccountService
	profileItemService accounts.ProfileItemService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService accounts.AccountService, profileItemService accounts.ProfileItemService) AccountHandler {
	return &accountHandler{
		accountService:     accountService,
		profileItemService: profileItemService,
	}
}

// GetMyProfile returns the caller's own profile with counters.
func (handler *accountHandler) GetMyProfile(ctx *gin.Context) {
	profile, err := handler.accountService.GetProfile(ctx, CurrentUserID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toProfileResponse(profile))
}

// GetUserProfile returns another user's profile, honoring blocks and
// profile locks.
func (handler *accountHandler) GetUserProfile(ctx *gin.Context) {
	profile, err := handler.accountService.GetOtherProfile(ctx, CurrentUserID(ctx), ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toProfileResponse(profile))
}

// UpdateProfile modifies the caller's profile fields.
func (handler *accountHandler) UpdateProfile(ctx *gin.Context) {
	var request UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	user, err := handler.accountService.UpdateProfile(ctx, CurrentUserID(ctx), accounts.UpdateProfileInput{
		ProfileName:  request.ProfileName,
		Description:  request.Description,
		ProfileImage: request.ProfileImage,
		CoverPhoto:   request.CoverPhoto,
		Website:      request.Website,
		Gender:       request.Gender,
		DateOfBirth:  request.DateOfBirth,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toUserResponse(user))
}

// ToggleProfileLock flips the profile lock and returns the new state.
func (handler *accountHandler) ToggleProfileLock(ctx *gin.Context) {
	locked, err := handler.accountService.ToggleProfileLock(ctx, CurrentUserID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"profile_lock": locked})
}

// SearchUsers matches profile names and emails.
func (handler *accountHandler) SearchUsers(ctx *gin.Context) {
	users, err := handler.accountService.SearchUsers(ctx, CurrentUserID(ctx), ctx.Query("q"), queryInt(ctx, "limit", 20))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toUserResponses(users))
}

// SendOTP emails a one-time code to the caller.
func (handler *accountHandler) SendOTP(ctx *gin.Context) {
	if err := handler.accountService.SendOTP(ctx, CurrentUserID(ctx)); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: "code sent"})
}

// ChangePassword sets a new password after verifying the old one and a
// one-time code.
func (handler *accountHandler) ChangePassword(ctx *gin.Context) {
	var request ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	if err := handler.accountService.ChangePassword(ctx, CurrentUserID(ctx), request.OldPassword, request.NewPassword, request.Code); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: "password changed"})
}

// ChangeEmail replaces the primary email after password and code checks.
func (handler *accountHandler) ChangeEmail(ctx *gin.Context) {
	var request ChangeEmailRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	if err := handler.accountService.ChangeEmail(ctx, CurrentUserID(ctx), request.NewEmail, request.Password, request.Code); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: "email changed"})
}

// ChangePhoneNumber replaces the primary phone number after password and
// code checks.
func (handler *accountHandler) ChangePhoneNumber(ctx *gin.Context) {
	var request ChangePhoneNumberRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	if err := handler.accountService.ChangePhoneNumber(ctx, CurrentUserID(ctx), request.NewPhoneNumber, request.Password, request.Code); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: "phone number changed"})
}

// AddEmail attaches an extra email to the account.
func (handler *accountHandler) AddEmail(ctx *gin.Context) {
	var request AddEmailRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	email, err := handler.accountService.AddEmail(ctx, CurrentUserID(ctx), request.Email, request.Password, request.Code)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, email)
}

// DeleteExtraEmail removes an extra email.
func (handler *accountHandler) DeleteExtraEmail(ctx *gin.Context) {
	id, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.accountService.DeleteExtraEmail(ctx, CurrentUserID(ctx), id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AddPhoneNumber attaches an extra phone number to the account.
func (handler *accountHandler) AddPhoneNumber(ctx *gin.Context) {
	var request AddPhoneNumberRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	phone, err := handler.accountService.AddPhoneNumber(ctx, CurrentUserID(ctx), request.PhoneNumber, request.Password, request.Code)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, phone)
}

// DeleteExtraPhoneNumber removes an extra phone number.
func (handler *accountHandler) DeleteExtraPhoneNumber(ctx *gin.Context) {
	id, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.accountService.DeleteExtraPhoneNumber(ctx, CurrentUserID(ctx), id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (handler *accountHandler) ListLocations(ctx *gin.Context) {
	locations, err := handler.profileItemService.ListLocations(ctx, CurrentUserID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, locations)
}

func (handler *accountHandler) CreateLocation(ctx *gin.Context) {
	var request LocationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	location, err := handler.profileItemService.CreateLocation(ctx, CurrentUserID(ctx), request.Name)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, location)
}

func (handler *accountHandler) UpdateLocation(ctx *gin.Context) {
	id, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request LocationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	location, err := handler.profileItemService.UpdateLocation(ctx, CurrentUserID(ctx), id, request.Name)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, location)
}

func (handler *accountHandler) DeleteLocation(ctx *gin.Context) {
	id, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.profileItemService.DeleteLocation(ctx, CurrentUserID(ctx), id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (handler *accountHandler) ListWorks(ctx *gin.Context) {
	works, err := handler.profileItemService.ListWorks(ctx, CurrentUserID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, works)
}

func (handler *accountHandler) CreateWork(ctx *gin.Context) {
	var request WorkRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	work, err := handler.profileItemService.CreateWork(ctx, CurrentUserID(ctx), accounts.ProfileItemInput{
		Company:     request.Company,
		Position:    request.Position,
		Description: request.Description,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, work)
}

func (handler *accountHandler) UpdateWork(ctx *gin.Context) {
	id, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request WorkRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	work, err := handler.profileItemService.UpdateWork(ctx, CurrentUserID(ctx), id, accounts.ProfileItemInput{
		Company:     request.Company,
		Position:    request.Position,
		Description: request.Description,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, work)
}

func (handler *accountHandler) DeleteWork(ctx *gin.Context) {
	id, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.profileItemService.DeleteWork(ctx, CurrentUserID(ctx), id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (handler *accountHandler) ListEducations(ctx *gin.Context) {
	educations, err := handler.profileItemService.ListEducations(ctx, CurrentUserID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, educations)
}

func (handler *accountHandler) CreateEducation(ctx *gin.Context) {
	var request EducationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	education, err := handler.profileItemService.CreateEducation(ctx, CurrentUserID(ctx), accounts.ProfileItemInput{
		College:     request.College,
		Subject:     request.Subject,
		Description: request.Description,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, education)
}

func (handler *accountHandler) UpdateEducation(ctx *gin.Context) {
	id, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request EducationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	education, err := handler.profileItemService.UpdateEducation(ctx, CurrentUserID(ctx), id, accounts.ProfileItemInput{
		College:     request.College,
		Subject:     request.Subject,
		Description: request.Description,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, education)
}

func (handler *accountHandler) DeleteEducation(ctx *gin.Context) {
	id, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.profileItemService.DeleteEducation(ctx, CurrentUserID(ctx), id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
