package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"travigo/internal/models/db_models"
	"travigo/pkg/utils"
)

type AccountRepository interface {
	InsertTx(account *db_models.Account, ctx context.Context) error
	FindById(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	UpdatePreferences(ctx context.Context, id string, prefs db_models.AccountPreferences) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

// InsertTx maps a unique violation on email to ErrEmailAlreadyExists, which covers two
// registrations racing past the FindByEmail check.
func (a *accountRepository) InsertTx(account *db_models.Account, ctx context.Context) error {
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(account).Error
	})
	if isUniqueViolation(err) {
		return utils.ErrEmailAlreadyExists
	}
	return err
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// untranslated postgres errors carry the SQLSTATE in their text
	return strings.Contains(err.Error(), "SQLSTATE 23505")
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) UpdatePreferences(ctx context.Context, id string, prefs db_models.AccountPreferences) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"pref_travel_type":           prefs.TravelType,
			"pref_budget":                prefs.Budget,
			"pref_accommodation":         prefs.Accommodation,
			"pref_interests":             prefs.Interests,
			"pref_favorite_destinations": prefs.FavoriteDestinations,
		}).Error
}
