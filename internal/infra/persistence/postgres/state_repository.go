// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/repository"
	"tiffin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// stateRepository implements the domain.StateRepository interface.
type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository is the constructor for stateRepository.
func NewStateRepository(db *gorm.DB) repository.StateRepository {
	return &stateRepository{db: db}
}

// FindByID retrieves a single state by its unique ID.
func (repo *stateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.State, error) {
	var stateM model.StateModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&stateM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStateNotFound
		}

		return nil, errors.Wrap(err, "failed to find state by ID")
	}

	return toStateDomain(&stateM), nil
}

// FindAll retrieves every state in insertion order.
func (repo *stateRepository) FindAll(ctx context.Context) ([]*entity.State, error) {
	var stateModels []*model.StateModel

	err := repo.db.WithContext(ctx).
		Find(&stateModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find states")
	}

	states := make([]*entity.State, 0, len(stateModels))
	for _, stateM := range stateModels {
		states = append(states, toStateDomain(stateM))
	}

	return states, nil
}

// --- Mapper Functions ---

// toStateDomain converts a GORM StateModel to a domain State entity.
func toStateDomain(data *model.StateModel) *entity.State {
	if data == nil {
		return nil
	}

	return &entity.State{
		ID:   data.ID,
		Name: data.Name,
	}
}
