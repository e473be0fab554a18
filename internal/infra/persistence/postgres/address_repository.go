package postgres

import (
	"context"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// Create persists a new address.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStateNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindByID retrieves an address by its unique ID, with its state preloaded.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	err := repo.db.WithContext(ctx).
		Preload("State").
		Where("id = ?", id).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// Delete removes an address and its customer link in one pass. The link row
// goes first so the address never ends up orphaned but linked.
func (repo *addressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("address_id = ?", id).
		Delete(&model.CustomerAddressModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete customer address link")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// LinkCustomer creates the customer-address link that records ownership.
func (repo *addressRepository) LinkCustomer(ctx context.Context, customerID, addressID uuid.UUID) (*entity.CustomerAddress, error) {
	linkM := &model.CustomerAddressModel{
		CustomerID: customerID,
		AddressID:  addressID,
	}

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.NewDatabaseExecuteError(err, "address already linked to a customer")
		}
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to link customer to address")
	}

	return toCustomerAddressDomain(linkM), nil
}

// FindLinkByAddress retrieves the customer-address link for an address.
func (repo *addressRepository) FindLinkByAddress(ctx context.Context, addressID uuid.UUID) (*entity.CustomerAddress, error) {
	var linkM model.CustomerAddressModel

	err := repo.db.WithContext(ctx).
		Where("address_id = ?", addressID).
		First(&linkM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer address link")
	}

	return toCustomerAddressDomain(&linkM), nil
}

// FindAddressesByCustomer retrieves all addresses linked to a customer in
// link insertion order, oldest first. Callers decide the presentation order.
func (repo *addressRepository) FindAddressesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel

	err := repo.db.WithContext(ctx).
		Preload("State").
		Joins("JOIN customer_address ON customer_address.address_id = addresses.id").
		Where("customer_address.customer_id = ?", customerID).
		Order("customer_address.created_at ASC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by customer")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:        data.ID,
		FlatBuild: data.FlatBuild,
		Locality:  data.Locality,
		City:      data.City,
		Pincode:   data.Pincode,
		State:     toStateDomain(data.State),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	addressM := &model.AddressModel{
		ID:        data.ID,
		FlatBuild: data.FlatBuild,
		Locality:  data.Locality,
		City:      data.City,
		Pincode:   data.Pincode,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.State != nil {
		addressM.StateID = data.State.ID
	}

	return addressM
}

// toCustomerAddressDomain converts a GORM CustomerAddressModel to a domain
// CustomerAddress entity.
func toCustomerAddressDomain(data *model.CustomerAddressModel) *entity.CustomerAddress {
	if data == nil {
		return nil
	}

	return &entity.CustomerAddress{
		CustomerID: data.CustomerID,
		AddressID:  data.AddressID,
		CreatedAt:  data.CreatedAt,
	}
}
