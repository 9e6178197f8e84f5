package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/matching"
	"github.com/gdugdh24/roommate-backend/internal/repository"
	"go.uber.org/zap"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	logger      *zap.Logger
}

func NewProfileUseCase(profileRepo repository.ProfileRepository, logger *zap.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// CreateProfileRequest represents profile creation request
type CreateProfileRequest struct {
	Username        string                  `json:"username" binding:"required,min=3,max=50"`
	FullName        string                  `json:"fullName" binding:"required,min=2,max=100"`
	Age             *int                    `json:"age" binding:"omitempty,min=18,max=120"`
	Gender          *domain.Gender          `json:"gender" binding:"omitempty,oneof=male female nonbinary other"`
	PreferredGender *domain.PreferredGender `json:"preferredGender" binding:"omitempty,oneof=any male female nonbinary"`
	Smoking         *domain.Smoking         `json:"smoking" binding:"omitempty,oneof=no yes occasionally"`
	Location        *string                 `json:"location" binding:"omitempty,max=100"`
	Budget          *int                    `json:"budget" binding:"omitempty,min=0"`
	MoveInDate      *string                 `json:"moveInDate" binding:"omitempty,datetime=2006-01-02"`
	Cleanliness     *domain.Cleanliness     `json:"cleanliness" binding:"omitempty,oneof=messy average clean very-clean"`
	Personality     *domain.Personality     `json:"personality" binding:"omitempty,oneof=introvert extrovert ambivert"`
	HasPets         bool                    `json:"hasPets"`
	Religion        *string                 `json:"religion" binding:"omitempty,max=50"`
	Bio             *string                 `json:"bio" binding:"omitempty,max=500"`
}

// UpdateProfileRequest represents a partial profile update. Username is
// immutable.
type UpdateProfileRequest struct {
	FullName        *string                 `json:"fullName" binding:"omitempty,min=2,max=100"`
	Age             *int                    `json:"age" binding:"omitempty,min=18,max=120"`
	Gender          *domain.Gender          `json:"gender" binding:"omitempty,oneof=male female nonbinary other"`
	PreferredGender *domain.PreferredGender `json:"preferredGender" binding:"omitempty,oneof=any male female nonbinary"`
	Smoking         *domain.Smoking         `json:"smoking" binding:"omitempty,oneof=no yes occasionally"`
	Location        *string                 `json:"location" binding:"omitempty,max=100"`
	Budget          *int                    `json:"budget" binding:"omitempty,min=0"`
	MoveInDate      *string                 `json:"moveInDate" binding:"omitempty,datetime=2006-01-02"`
	Cleanliness     *domain.Cleanliness     `json:"cleanliness" binding:"omitempty,oneof=messy average clean very-clean"`
	Personality     *domain.Personality     `json:"personality" binding:"omitempty,oneof=introvert extrovert ambivert"`
	HasPets         *bool                   `json:"hasPets"`
	Religion        *string                 `json:"religion" binding:"omitempty,max=50"`
	Bio             *string                 `json:"bio" binding:"omitempty,max=500"`
}

// ProfileResponse represents profile response with the viewer's match score
type ProfileResponse struct {
	*domain.Profile
	MatchPercentage *int `json:"matchPercentage,omitempty"`
}

// GetMyProfile returns current user's profile
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, userID int) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfileByID returns a profile. When a viewer is given and differs from
// the target, the response carries the viewer's compatibility with it.
func (uc *ProfileUseCase) GetProfileByID(ctx context.Context, targetID int, currentUserID *int) (*ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	response := &ProfileResponse{Profile: profile}

	if currentUserID != nil && *currentUserID != targetID {
		viewer, err := uc.profileRepo.GetByID(ctx, *currentUserID)
		switch {
		case err == nil:
			score := matching.Score(viewer, profile)
			response.MatchPercentage = &score
		case errors.Is(err, domain.ErrProfileNotFound):
			// viewer has no profile yet
		default:
			uc.logger.Warn("failed to load viewer profile",
				zap.Int("viewer_id", *currentUserID),
				zap.Error(err),
			)
		}
	}

	return response, nil
}

// CreateProfile stores a new profile; the store assigns its id
func (uc *ProfileUseCase) CreateProfile(ctx context.Context, req *CreateProfileRequest) (*domain.Profile, error) {
	if _, err := uc.profileRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, domain.ErrProfileAlreadyExists
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	profile := &domain.Profile{
		Username:        req.Username,
		FullName:        req.FullName,
		Age:             req.Age,
		Gender:          req.Gender,
		PreferredGender: req.PreferredGender,
		Smoking:         req.Smoking,
		Location:        req.Location,
		Budget:          req.Budget,
		MoveInDate:      req.MoveInDate,
		Cleanliness:     req.Cleanliness,
		Personality:     req.Personality,
		HasPets:         req.HasPets,
		Religion:        req.Religion,
		Bio:             req.Bio,
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrProfileAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	uc.logger.Info("profile created", zap.Int("profile_id", profile.ID))
	return profile, nil
}

// UpdateProfile updates user profile
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID int, req *UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Update fields if provided
	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Age != nil {
		profile.Age = req.Age
	}
	if req.Gender != nil {
		profile.Gender = req.Gender
	}
	if req.PreferredGender != nil {
		profile.PreferredGender = req.PreferredGender
	}
	if req.Smoking != nil {
		profile.Smoking = req.Smoking
	}
	if req.Location != nil {
		profile.Location = req.Location
	}
	if req.Budget != nil {
		profile.Budget = req.Budget
	}
	if req.MoveInDate != nil {
		profile.MoveInDate = req.MoveInDate
	}
	if req.Cleanliness != nil {
		profile.Cleanliness = req.Cleanliness
	}
	if req.Personality != nil {
		profile.Personality = req.Personality
	}
	if req.HasPets != nil {
		profile.HasPets = *req.HasPets
	}
	if req.Religion != nil {
		profile.Religion = req.Religion
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}
