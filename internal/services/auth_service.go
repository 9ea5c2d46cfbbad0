package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"bcommune_backend/internal/auth"
	"bcommune_backend/internal/email"
	"bcommune_backend/internal/logger"
	"bcommune_backend/internal/models"
	"bcommune_backend/internal/repositories"
	"bcommune_backend/internal/services/dto"
	"bcommune_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	SignupIndividual(db *gorm.DB, req *dto.IndividualSignupRequest) (*dto.AccountDTO, error)
	SignupCompany(db *gorm.DB, req *dto.CompanySignupRequest) (*dto.AccountDTO, error)
	// Login checks credentials first, then the expected role. A role mismatch
	// reports the same error as a bad password so the response never reveals
	// whether the email exists or which role it holds.
	Login(db *gorm.DB, req *dto.LoginRequest, expectedRole models.AccountRole) (*dto.LoginResponse, error)
	RefreshToken(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
}

type AuthServiceImpl struct {
	accountRepo      repositories.AccountRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailProvider    email.Provider
}

func NewAuthService(
	accountRepo repositories.AccountRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		accountRepo:      accountRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailProvider:    emailProvider,
	}
}

func (s *AuthServiceImpl) SignupIndividual(db *gorm.DB, req *dto.IndividualSignupRequest) (*dto.AccountDTO, error) {
	account, err := s.createAccount(db, req.Email, req.Password, req.ConfirmPassword, models.AccountRoleIndividual, nil)
	if err != nil {
		return nil, err
	}

	s.sendWelcomeEmail(account.Email)

	accountDTO := dto.NewAccountDTO(account)
	return &accountDTO, nil
}

func (s *AuthServiceImpl) SignupCompany(db *gorm.DB, req *dto.CompanySignupRequest) (*dto.AccountDTO, error) {
	profile := &models.CompanyProfile{
		CompanyName:        req.CompanyName,
		CompanyWebsite:     req.CompanyWebsite,
		Industry:           req.Industry,
		CompanySize:        req.CompanySize,
		CompanyType:        req.CompanyType,
		PersonName:         req.PersonName,
		Designation:        req.Designation,
		PhoneNumber:        req.PhoneNumber,
		BcommuneProfileURL: req.BcommuneProfileURL,
	}

	account, err := s.createAccount(db, req.Email, req.Password, req.ConfirmPassword, models.AccountRoleCompany, profile)
	if err != nil {
		return nil, err
	}

	s.sendWelcomeEmail(account.Email)

	accountDTO := dto.NewAccountDTO(account)
	return &accountDTO, nil
}

// createAccount runs the shared signup path: confirmation match, password
// strength, then a single create that persists the account and, for company
// signups, its profile in one transaction.
func (s *AuthServiceImpl) createAccount(
	db *gorm.DB,
	emailAddr, password, confirmPassword string,
	role models.AccountRole,
	profile *models.CompanyProfile,
) (*models.Account, error) {
	if password != confirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}
	if err := auth.ValidatePassword(password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	account := &models.Account{
		Email:          emailAddr,
		PasswordHash:   hashedPassword,
		Role:           role,
		CompanyProfile: profile,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return s.accountRepo.Create(tx, account)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return account, nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest, expectedRole models.AccountRole) (*dto.LoginResponse, error) {
	account, err := s.accountRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, account.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	// Role gate: an individual credential must never open a company session
	// and vice versa.
	if account.Role != expectedRole {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildLoginResponse(db, account)
}

func (s *AuthServiceImpl) RefreshToken(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error) {
	token, err := s.refreshTokenRepo.FindByToken(db, refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		s.refreshTokenRepo.DeleteByToken(db, refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	account, err := s.accountRepo.FindByID(db, token.AccountID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	// Rotate: the presented token is single use.
	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildLoginResponse(db, account)
}

func (s *AuthServiceImpl) Logout(db *gorm.DB, refreshToken string) error {
	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) buildLoginResponse(db *gorm.DB, account *models.Account) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(account.ID, string(account.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken := &models.RefreshToken{
		AccountID: account.ID,
		Token:     generateRandomToken(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.refreshTokenRepo.Create(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		Account:      dto.NewAccountDTO(account),
	}, nil
}

func (s *AuthServiceImpl) sendWelcomeEmail(to string) {
	go func() {
		if err := s.emailProvider.Send(to, "Welcome to bcommune", "<p>Your bcommune account is ready.</p>"); err != nil {
			logger.Warn("failed to send welcome email", "to", to, "error", err)
		}
	}()
}

func generateRandomToken() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}
