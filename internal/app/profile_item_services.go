package app

import (
	"context"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"
)

// profileItemService implements the ProfileItemService interface
type profileItemService struct {
	profileRepo accounts.ProfileRepository
	logger      logger.Logger
}

// NewProfileItemService creates a new instance of ProfileItemService
func NewProfileItemService(profileRepo accounts.ProfileRepository, logger logger.Logger) (accounts.ProfileItemService, error) {
	return &profileItemService{
		profileRepo: profileRepo,
		logger:      logger,
	}, nil
}

func (s *profileItemService) ListLocations(ctx context.Context, userID string) ([]*accounts.Location, error) {
	return s.profileRepo.ListLocations(ctx, userID)
}

func (s *profileItemService) CreateLocation(ctx context.Context, userID, name string) (*accounts.Location, error) {
	location := &accounts.Location{UserID: userID, Name: name}
	if err := s.profileRepo.CreateLocation(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *profileItemService) UpdateLocation(ctx context.Context, userID string, id uint, name string) (*accounts.Location, error) {
	location, err := s.profileRepo.GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	if location.UserID != userID {
		return nil, accounts.ErrForbidden
	}

	location.Name = name
	if err := s.profileRepo.UpdateLocation(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *profileItemService) DeleteLocation(ctx context.Context, userID string, id uint) error {
	location, err := s.profileRepo.GetLocation(ctx, id)
	if err != nil {
		return err
	}
	if location.UserID != userID {
		return accounts.ErrForbidden
	}
	return s.profileRepo.DeleteLocation(ctx, id)
}

func (s *profileItemService) ListWorks(ctx context.Context, userID string) ([]*accounts.Work, error) {
	return s.profileRepo.ListWorks(ctx, userID)
}

func (s *profileItemService) CreateWork(ctx context.Context, userID string, input accounts.ProfileItemInput) (*accounts.Work, error) {
	work := &accounts.Work{
		UserID:      userID,
		Company:     input.Company,
		Position:    input.Position,
		Description: input.Description,
	}
	if err := s.profileRepo.CreateWork(ctx, work); err != nil {
		return nil, err
	}
	return work, nil
}

func (s *profileItemService) UpdateWork(ctx context.Context, userID string, id uint, input accounts.ProfileItemInput) (*accounts.Work, error) {
	work, err := s.profileRepo.GetWork(ctx, id)
	if err != nil {
		return nil, err
	}
	if work.UserID != userID {
		return nil, accounts.ErrForbidden
	}

	work.Company = input.Company
	work.Position = input.Position
	work.Description = input.Description
	if err := s.profileRepo.UpdateWork(ctx, work); err != nil {
		return nil, err
	}
	return work, nil
}

func (s *profileItemService) DeleteWork(ctx context.Context, userID string, id uint) error {
	work, err := s.profileRepo.GetWork(ctx, id)
	if err != nil {
		return err
	}
	if work.UserID != userID {
		return accounts.ErrForbidden
	}
	return s.profileRepo.DeleteWork(ctx, id)
}

func (s *profileItemService) ListEducations(ctx context.Context, userID string) ([]*accounts.Education, error) {
	return s.profileRepo.ListEducations(ctx, userID)
}

func (s *profileItemService) CreateEducation(ctx context.Context, userID string, input accounts.ProfileItemInput) (*accounts.Education, error) {
	education := &accounts.Education{
		UserID:      userID,
		College:     input.College,
		Subject:     input.Subject,
		Description: input.Description,
	}
	if err := s.profileRepo.CreateEducation(ctx, education); err != nil {
		return nil, err
	}
	return education, nil
}

func (s *profileItemService) UpdateEducation(ctx context.Context, userID string, id uint, input accounts.ProfileItemInput) (*accounts.Education, error) {
	education, err := s.profileRepo.GetEducation(ctx, id)
	if err != nil {
		return nil, err
	}
	if education.UserID != userID {
		return nil, accounts.ErrForbidden
	}

	education.College = input.College
	education.Subject = input.Subject
	education.Description = input.Description
	if err := s.profileRepo.UpdateEducation(ctx, education); err != nil {
		return nil, err
	}
	return education, nil
}

func (s *profileItemService) DeleteEducation(ctx context.Context, userID string, id uint) error {
	education, err := s.profileRepo.GetEducation(ctx, id)
	if err != nil {
		return err
	}
	if education.UserID != userID {
		return accounts.ErrForbidden
	}
	return s.profileRepo.DeleteEducation(ctx, id)
}
