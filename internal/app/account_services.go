package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/auth"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"github.com/google/uuid"
)

// accountService implements the AccountService interface
type accountService struct {
	userRepo       accounts.UserRepository
	friendshipRepo accounts.FriendshipRepository
	otpRepo        accounts.OTPRepository
	profileRepo    accounts.ProfileRepository
	contactRepo    accounts.ContactRepository
	postRepo       social.PostRepository
	blockRepo      social.BlockRepository
	mailSender     accounts.MailSender
	otpValidity    time.Duration
	logger         logger.Logger
}

// NewAccountService creates a new instance of AccountService
func NewAccountService(
	userRepo accounts.UserRepository,
	friendshipRepo accounts.FriendshipRepository,
	otpRepo accounts.OTPRepository,
	profileRepo accounts.ProfileRepository,
	contactRepo accounts.ContactRepository,
	postRepo social.PostRepository,
	blockRepo social.BlockRepository,
	mailSender accounts.MailSender,
	otpValidity time.Duration,
	logger logger.Logger,
) (accounts.AccountService, error) {
	return &accountService{
		userRepo:       userRepo,
		friendshipRepo: friendshipRepo,
		otpRepo:        otpRepo,
		profileRepo:    profileRepo,
		contactRepo:    contactRepo,
		postRepo:       postRepo,
		blockRepo:      blockRepo,
		mailSender:     mailSender,
		otpValidity:    otpValidity,
		logger:         logger,
	}, nil
}

func (s *accountService) Register(ctx context.Context, input accounts.RegisterInput) (*accounts.User, error) {
	taken, err := s.userRepo.EmailTaken(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, accounts.ErrEmailTaken
	}

	taken, err = s.userRepo.ProfileNameTaken(ctx, input.ProfileName)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, accounts.ErrProfileNameTaken
	}

	if input.PhoneNumber != "" {
		taken, err = s.userRepo.PhoneNumberTaken(ctx, input.PhoneNumber)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, accounts.ErrPhoneNumberTaken
		}
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &accounts.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		ProfileName:  input.ProfileName,
		PasswordHash: hash,
		PhoneNumber:  input.PhoneNumber,
		Gender:       input.Gender,
		DateOfBirth:  input.DateOfBirth,
		ShareData:    input.ShareData,
		IsActive:     true,
		DateJoined:   time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Registered user ", user.ProfileName)
	return user, nil
}

func (s *accountService) Authenticate(ctx context.Context, email, password string) (*accounts.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil, accounts.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, accounts.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, accounts.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *accountService) GetProfile(ctx context.Context, userID string) (*accounts.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildProfile(ctx, user, true)
}

func (s *accountService) GetOtherProfile(ctx context.Context, viewerID, userID string) (*accounts.Profile, error) {
	if viewerID == userID {
		return s.GetProfile(ctx, userID)
	}

	blocked, err := s.blockRepo.ExistsEither(ctx, viewerID, userID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, fmt.Errorf("profile %s: %w", userID, accounts.ErrNotFound)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("profile %s: %w", userID, accounts.ErrNotFound)
	}

	if user.ProfileLock {
		friendship, err := s.friendshipRepo.GetByPair(ctx, viewerID, userID)
		isFriend := err == nil && friendship.Status == accounts.FriendshipStatusAccepted
		if err != nil && !errors.Is(err, accounts.ErrNotFound) {
			return nil, err
		}
		if !isFriend {
			// Locked profiles expose the basic card only.
			return &accounts.Profile{User: user}, nil
		}
	}
	return s.buildProfile(ctx, user, false)
}

func (s *accountService) buildProfile(ctx context.Context, user *accounts.User, includeContacts bool) (*accounts.Profile, error) {
	profile := &accounts.Profile{User: user}

	var err error
	if profile.Locations, err = s.profileRepo.ListLocations(ctx, user.ID); err != nil {
		return nil, err
	}
	if profile.Works, err = s.profileRepo.ListWorks(ctx, user.ID); err != nil {
		return nil, err
	}
	if profile.Educations, err = s.profileRepo.ListEducations(ctx, user.ID); err != nil {
		return nil, err
	}
	if includeContacts {
		if profile.ExtraEmails, err = s.contactRepo.ListExtraEmails(ctx, user.ID); err != nil {
			return nil, err
		}
		if profile.ExtraPhoneNumbers, err = s.contactRepo.ListExtraPhoneNumbers(ctx, user.ID); err != nil {
			return nil, err
		}
	}
	if profile.PostCount, err = s.postRepo.CountByAuthor(ctx, user.ID); err != nil {
		return nil, err
	}
	if profile.FriendCount, err = s.friendshipRepo.CountAcceptedForUser(ctx, user.ID); err != nil {
		return nil, err
	}
	if profile.LikeCount, err = s.postRepo.CountLikesReceived(ctx, user.ID); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, userID string, input accounts.UpdateProfileInput) (*accounts.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.ProfileName != nil && *input.ProfileName != user.ProfileName {
		taken, err := s.userRepo.ProfileNameTaken(ctx, *input.ProfileName)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, accounts.ErrProfileNameTaken
		}
		user.ProfileName = *input.ProfileName
	}
	if input.Description != nil {
		user.Description = *input.Description
	}
	if input.ProfileImage != nil {
		user.ProfileImage = *input.ProfileImage
	}
	if input.CoverPhoto != nil {
		user.CoverPhoto = *input.CoverPhoto
	}
	if input.Website != nil {
		user.Website = *input.Website
	}
	if input.Gender != nil {
		user.Gender = *input.Gender
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = input.DateOfBirth
	}

	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *accountService) ToggleProfileLock(ctx context.Context, userID string) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}

	user.ProfileLock = !user.ProfileLock
	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return false, err
	}
	return user.ProfileLock, nil
}

func (s *accountService) SearchUsers(ctx context.Context, viewerID, query string, limit int) ([]*accounts.User, error) {
	if limit <= 0 {
		limit = 20
	}

	// Users involved in a block with the viewer never show up.
	excluded, err := s.blockRepo.ListInvolvedIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return s.userRepo.Search(ctx, query, excluded, limit)
}

func (s *accountService) SendOTP(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	code, err := auth.GenerateOTPCode()
	if err != nil {
		return err
	}

	otp := &accounts.OTP{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(s.otpValidity),
	}
	if err := s.otpRepo.Create(ctx, otp); err != nil {
		return err
	}
	return s.mailSender.SendOTP(ctx, user.Email, code, "verification")
}

// consumeOTP validates a code for the user and burns it.
func (s *accountService) consumeOTP(ctx context.Context, userID, code string) error {
	otp, err := s.otpRepo.GetByUserAndCode(ctx, userID, code)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return accounts.ErrInvalidOTP
		}
		return err
	}
	if otp.IsExpired() {
		return accounts.ErrExpiredOTP
	}
	return s.otpRepo.DeleteByID(ctx, otp.ID)
}

func (s *accountService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword, code string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, oldPassword) {
		return accounts.ErrWrongPassword
	}
	if err := s.consumeOTP(ctx, userID, code); err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	return s.userRepo.UpdateByID(ctx, user)
}

func (s *accountService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return accounts.ErrInvalidOTP
		}
		return err
	}
	if err := s.consumeOTP(ctx, user.ID, code); err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	return s.userRepo.UpdateByID(ctx, user)
}

func (s *accountService) ChangeEmail(ctx context.Context, userID, newEmail, password, code string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return accounts.ErrWrongPassword
	}

	taken, err := s.userRepo.EmailTaken(ctx, newEmail)
	if err != nil {
		return err
	}
	if taken {
		return accounts.ErrEmailTaken
	}
	if err := s.consumeOTP(ctx, userID, code); err != nil {
		return err
	}

	user.Email = newEmail
	return s.userRepo.UpdateByID(ctx, user)
}

func (s *accountService) ChangePhoneNumber(ctx context.Context, userID, newPhoneNumber, password, code string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return accounts.ErrWrongPassword
	}

	taken, err := s.userRepo.PhoneNumberTaken(ctx, newPhoneNumber)
	if err != nil {
		return err
	}
	if taken {
		return accounts.ErrPhoneNumberTaken
	}
	if err := s.consumeOTP(ctx, userID, code); err != nil {
		return err
	}

	user.PhoneNumber = newPhoneNumber
	return s.userRepo.UpdateByID(ctx, user)
}

func (s *accountService) AddEmail(ctx context.Context, userID, email, password, code string) (*accounts.ExtraEmail, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, accounts.ErrWrongPassword
	}

	taken, err := s.userRepo.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if !taken {
		taken, err = s.contactRepo.ExtraEmailTaken(ctx, email)
		if err != nil {
			return nil, err
		}
	}
	if taken {
		return nil, accounts.ErrEmailTaken
	}
	if err := s.consumeOTP(ctx, userID, code); err != nil {
		return nil, err
	}

	extra := &accounts.ExtraEmail{
		UserID:     userID,
		Email:      email,
		IsVerified: true,
	}
	if err := s.contactRepo.CreateExtraEmail(ctx, extra); err != nil {
		return nil, err
	}
	return extra, nil
}

func (s *accountService) AddPhoneNumber(ctx context.Context, userID, phoneNumber, password, code string) (*accounts.ExtraPhoneNumber, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, accounts.ErrWrongPassword
	}

	taken, err := s.userRepo.PhoneNumberTaken(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}
	if !taken {
		taken, err = s.contactRepo.ExtraPhoneNumberTaken(ctx, phoneNumber)
		if err != nil {
			return nil, err
		}
	}
	if taken {
		return nil, accounts.ErrPhoneNumberTaken
	}
	if err := s.consumeOTP(ctx, userID, code); err != nil {
		return nil, err
	}

	extra := &accounts.ExtraPhoneNumber{
		UserID:      userID,
		PhoneNumber: phoneNumber,
		IsVerified:  true,
	}
	if err := s.contactRepo.CreateExtraPhoneNumber(ctx, extra); err != nil {
		return nil, err
	}
	return extra, nil
}

func (s *accountService) DeleteExtraEmail(ctx context.Context, userID string, emailID uint) error {
	extra, err := s.contactRepo.GetExtraEmail(ctx, emailID)
	if err != nil {
		return err
	}
	if extra.UserID != userID {
		return accounts.ErrForbidden
	}
	return s.contactRepo.DeleteExtraEmail(ctx, emailID)
}

func (s *accountService) DeleteExtraPhoneNumber(ctx context.Context, userID string, phoneID uint) error {
	extra, err := s.contactRepo.GetExtraPhoneNumber(ctx, phoneID)
	if err != nil {
		return err
	}
	if extra.UserID != userID {
		return accounts.ErrForbidden
	}
	return s.contactRepo.DeleteExtraPhoneNumber(ctx, phoneID)
}
