package repositories

import (
	"errors"

	"bcommune_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
)

type AccountRepository interface {
	Create(db *gorm.DB, account *models.Account) error
	FindByID(db *gorm.DB, id string) (*models.Account, error)
	FindByEmail(db *gorm.DB, email string) (*models.Account, error)
	CountByRole(db *gorm.DB, role models.AccountRole) (int64, error)
}

type AccountRepositoryImpl struct{}

func NewAccountRepository() AccountRepository {
	return &AccountRepositoryImpl{}
}

// Create persists the account together with its CompanyProfile relation when
// one is attached. The email uniqueIndex is the real duplicate guard; the
// pre-check only gives a cleaner error on the common path.
func (r *AccountRepositoryImpl) Create(db *gorm.DB, account *models.Account) error {
	var existing models.Account
	if err := db.Where("email = ?", account.Email).First(&existing).Error; err == nil {
		return ErrAccountAlreadyExists
	}

	if err := db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountAlreadyExists
		}
		return err
	}
	return nil
}

func (r *AccountRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Account, error) {
	var account models.Account
	err := db.Preload("CompanyProfile").First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Account, error) {
	var account models.Account
	err := db.Preload("CompanyProfile").First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepositoryImpl) CountByRole(db *gorm.DB, role models.AccountRole) (int64, error) {
	var count int64
	err := db.Model(&models.Account{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
