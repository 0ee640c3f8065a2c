package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	domainRepo "github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/repository"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/pkg/pagination"
	"gorm.io/gorm"
)

type pieceRepository struct {
	db *gorm.DB
}

// NewPieceRepository creates a new piece inventory repository
func NewPieceRepository(db *gorm.DB) domainRepo.PieceRepository {
	return &pieceRepository{db: db}
}

func (r *pieceRepository) Create(ctx context.Context, piece *entity.Piece) error {
	return r.db.WithContext(ctx).Create(piece).Error
}

func (r *pieceRepository) GetByID(ctx context.Context, id uint) (*entity.Piece, error) {
	var piece entity.Piece
	err := r.db.WithContext(ctx).First(&piece, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &piece, err
}

func (r *pieceRepository) GetByIDs(ctx context.Context, ids []uint) ([]entity.Piece, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var pieces []entity.Piece
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&pieces).Error
	return pieces, err
}

func (r *pieceRepository) GetByName(ctx context.Context, name string) (*entity.Piece, error) {
	var piece entity.Piece
	err := r.db.WithContext(ctx).First(&piece, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &piece, err
}

func (r *pieceRepository) Update(ctx context.Context, piece *entity.Piece) error {
	return r.db.WithContext(ctx).Save(piece).Error
}

func (r *pieceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Piece{}, "id = ?", id).Error
}

func (r *pieceRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Piece, int64, error) {
	var pieces []entity.Piece
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Piece{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&pieces).Error

	return pieces, total, err
}

func (r *pieceRepository) ListAll(ctx context.Context) ([]entity.Piece, error) {
	var pieces []entity.Piece
	err := r.db.WithContext(ctx).Order("name ASC").Find(&pieces).Error
	return pieces, err
}

func (r *pieceRepository) ListBelowStock(ctx context.Context, threshold int) ([]entity.Piece, error) {
	var pieces []entity.Piece
	err := r.db.WithContext(ctx).
		Where("stock < ?", threshold).
		Order("stock ASC").
		Find(&pieces).Error
	return pieces, err
}

// AtomicDecrementBatch applies every decrement inside one transaction.
// A guarded UPDATE refuses to take stock below zero; if any piece fails
// the whole transaction rolls back and the failed ids are returned.
func (r *pieceRepository) AtomicDecrementBatch(ctx context.Context, decrements map[uint]int) ([]uint, error) {
	if len(decrements) == 0 {
		return nil, nil
	}

	// Stable order keeps lock acquisition deterministic
	ids := make([]uint, 0, len(decrements))
	for id := range decrements {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var failed []uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			amount := decrements[id]
			if amount <= 0 {
				continue
			}
			result := tx.Model(&entity.Piece{}).
				Where("id = ? AND stock >= ?", id, amount).
				UpdateColumn("stock", gorm.Expr("stock - ?", amount))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				failed = append(failed, id)
			}
		}
		if len(failed) > 0 {
			return gorm.ErrInvalidTransaction
		}
		return nil
	})

	if len(failed) > 0 {
		return failed, nil
	}
	return nil, err
}

func (r *pieceRepository) AtomicIncrementBatch(ctx context.Context, increments map[uint]int) error {
	if len(increments) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(increments))
	for id := range increments {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			amount := increments[id]
			if amount <= 0 {
				continue
			}
			if err := tx.Model(&entity.Piece{}).
				Where("id = ?", id).
				UpdateColumn("stock", gorm.Expr("stock + ?", amount)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
