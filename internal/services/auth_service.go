package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"fixa_backend/internal/auth"
	"fixa_backend/internal/logger"
	"fixa_backend/internal/models"
	"fixa_backend/internal/repositories"
	"fixa_backend/internal/services/dto"
	"fixa_backend/internal/verification"
	"fixa_backend/pkg/apperrors"
)

type AuthService struct {
	db           *gorm.DB
	users        *repositories.UserRepository
	credits      *CreditService
	codes        verification.Store
	welcomeBonus int
	codeTTL      time.Duration
}

func NewAuthService(
	db *gorm.DB,
	users *repositories.UserRepository,
	credits *CreditService,
	codes verification.Store,
	welcomeBonus int,
	codeTTL time.Duration,
) *AuthService {
	return &AuthService{
		db:           db,
		users:        users,
		credits:      credits,
		codes:        codes,
		welcomeBonus: welcomeBonus,
		codeTTL:      codeTTL,
	}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !models.ValidUserRole(req.Role) || req.Role == models.UserRoleAdmin {
		return nil, apperrors.NewBadRequestError("role must be client, worker or both")
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.users.FindByPhone(req.Phone); err == nil {
		return nil, apperrors.ErrPhoneTaken
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:            req.Email,
		Phone:            req.Phone,
		PasswordHash:     hash,
		Name:             req.Name,
		Role:             req.Role,
		SubscriptionTier: models.TierFree,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.users.WithTx(tx).Create(user); err != nil {
			return err
		}
		if s.welcomeBonus > 0 {
			return s.credits.GrantInTx(tx, user.ID, s.welcomeBonus, models.CreditTxBonus, "Welcome bonus")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.issueCode(user.Phone); err != nil {
		logger.WithError(err).Warn("failed to issue verification code", "user_id", user.ID)
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: user}, nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: user}, nil
}

// RequestCode issues a fresh verification code for a registered phone.
func (s *AuthService) RequestCode(phone string) error {
	if _, err := s.users.FindByPhone(phone); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return s.issueCode(phone)
}

// VerifyPhone consumes a code and marks the user verified.
func (s *AuthService) VerifyPhone(phone, code string) error {
	user, err := s.users.FindByPhone(phone)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	if err := s.codes.Consume(phone, code); err != nil {
		return apperrors.ErrInvalidVerificationCode
	}

	return s.users.MarkPhoneVerified(user.ID)
}

// issueCode generates and stores a code. Delivery is an external capability;
// in development the code shows up in the log.
func (s *AuthService) issueCode(phone string) error {
	code, err := verification.GenerateCode()
	if err != nil {
		return err
	}
	if err := s.codes.Put(phone, code, s.codeTTL); err != nil {
		return err
	}
	logger.Debug("verification code issued", "phone", phone, "code", code)
	return nil
}
