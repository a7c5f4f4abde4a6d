package storage

import (
	"context"

	"gorm.io/gorm"

	apperrors "budgetapp/internal/errors"
	"budgetapp/internal/models"
	"budgetapp/internal/pagination"
)

// gormRemoteStore talks to the remote transactions table.
type gormRemoteStore struct {
	db *gorm.DB
}

// NewRemoteStore returns a RemoteStore over db.
func NewRemoteStore(db *gorm.DB) RemoteStore {
	return &gormRemoteStore{db: db}
}

func (s *gormRemoteStore) Insert(ctx context.Context, tx models.Transaction) error {
	if err := s.db.WithContext(ctx).Create(&tx).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrRemote, err)
	}
	return nil
}

func (s *gormRemoteStore) SelectAll(ctx context.Context) ([]models.Transaction, error) {
	txs := []models.Transaction{}
	if err := s.db.WithContext(ctx).Order("date DESC").Find(&txs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemote, err)
	}
	return txs, nil
}

func (s *gormRemoteStore) SelectPage(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.WithContext(ctx).Model(&models.Transaction{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemote, err)
	}

	var txs []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Order("id").
		Find(&txs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemote, err)
	}

	result := pagination.NewPageResponse(txs, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateByID overwrites every column of the row with tx.ID. An absent row is
// not an error.
func (s *gormRemoteStore) UpdateByID(ctx context.Context, tx models.Transaction) error {
	err := s.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ?", tx.ID).
		Select("amount", "type", "category", "title", "date", "time", "note").
		Updates(&tx).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrRemote, err)
	}
	return nil
}

// DeleteByID removes the row with id. An absent row is not an error.
func (s *gormRemoteStore) DeleteByID(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrRemote, err)
	}
	return nil
}
