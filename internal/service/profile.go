package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/ketoplate/backend/config"
	"github.com/ketoplate/backend/internal/models"
	"github.com/ketoplate/backend/internal/types"
	"gorm.io/gorm"
)

// ErrAvatarStorageUnavailable is returned when no S3 configuration was
// provided at startup.
var ErrAvatarStorageUnavailable = errors.New("avatar storage is not configured")

// ProfileService handles user profile operations
type ProfileService struct {
	db       *gorm.DB
	s3Config *config.S3Config
}

// NewProfileService creates a new ProfileService instance. s3Config may be
// nil; avatar uploads are then rejected but everything else works.
func NewProfileService(db *gorm.DB, s3Config *config.S3Config) *ProfileService {
	return &ProfileService{
		db:       db,
		s3Config: s3Config,
	}
}

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile updates the fields present in the request
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	if req.Username != nil {
		profile.Username = *req.Username
	}
	if req.HeightCM != nil {
		profile.HeightCM = *req.HeightCM
	}
	if req.WeightKG != nil {
		profile.WeightKG = *req.WeightKG
	}
	if req.FitnessGoal != nil {
		profile.FitnessGoal = *req.FitnessGoal
	}

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UploadAvatar stores the image in S3 under a per-user key and records the
// public URL on the profile.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID uuid.UUID, body io.Reader, filename, contentType string) (string, error) {
	if s.s3Config == nil {
		return "", ErrAvatarStorageUnavailable
	}

	key := fmt.Sprintf("avatars/%s/%s%s", userID, uuid.New().String(), path.Ext(filename))
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	if err := s.db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		return "", err
	}
	return url, nil
}
