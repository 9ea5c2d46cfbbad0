package services

import (
	"bcommune_backend/internal/repositories"
	"bcommune_backend/internal/services/dto"
	"bcommune_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AccountService interface {
	GetByID(db *gorm.DB, accountID string) (*dto.AccountDTO, error)
}

type AccountServiceImpl struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountService {
	return &AccountServiceImpl{accountRepo: accountRepo}
}

func (s *AccountServiceImpl) GetByID(db *gorm.DB, accountID string) (*dto.AccountDTO, error) {
	account, err := s.accountRepo.FindByID(db, accountID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	accountDTO := dto.NewAccountDTO(account)
	return &accountDTO, nil
}
