package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"travigo/internal/models/db_models"
	"travigo/pkg/utils"
)

type ItineraryRepositoryInterface interface {
	Create(ctx context.Context, itinerary *db_models.Itinerary) error
	ListByUserID(ctx context.Context, userID string, page, pageSize int) ([]db_models.Itinerary, int64, error)
	FindByIDForUser(ctx context.Context, id, userID string) (*db_models.Itinerary, error)
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepositoryInterface {
	return &ItineraryRepository{db: db}
}

type ItineraryRepository struct {
	db *gorm.DB
}

// Create writes the itinerary with its daily plan and cost breakdown in a single insert.
func (r *ItineraryRepository) Create(ctx context.Context, itinerary *db_models.Itinerary) error {
	if err := r.db.WithContext(ctx).Create(itinerary).Error; err != nil {
		return fmt.Errorf("%w: %w", utils.ErrPersistence, err)
	}
	return nil
}

func (r *ItineraryRepository) ListByUserID(ctx context.Context, userID string, page, pageSize int) ([]db_models.Itinerary, int64, error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&db_models.Itinerary{}).Where("user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Find(&itineraries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return itineraries, total, nil
}

func (r *ItineraryRepository) FindByIDForUser(ctx context.Context, id, userID string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&itinerary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return &itinerary, nil
}
