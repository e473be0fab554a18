// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"slices"

	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/domain/service"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// pincodePattern matches exactly six decimal digits, nothing before or after.
var pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// SaveAddress validates the candidate address and persists it together with
// the customer-address link in a single transaction. Validation short-circuits
// at the first violation: state resolution, then field presence, then pincode
// format.
func (srv *addressService) SaveAddress(ctx context.Context, customerID uuid.UUID, input *usecase.SaveAddressInput) (*entity.Address, error) {
	srv.loggerFromCtx(ctx).Debug("Saving address", "customerID", customerID)

	var created *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stateRepo := repoFactory.StateRepo()
		addressRepo := repoFactory.AddressRepo()

		// 1. Resolve the state before looking at the candidate fields.
		stateID, parseErr := uuid.Parse(input.StateID)
		if parseErr != nil {
			return errors.Wrap(domainerrors.ErrStateNotFound, "state id is not a valid uuid")
		}

		state, err := stateRepo.FindByID(ctx, stateID)
		if err != nil {
			if errors.Is(err, repository.ErrStateNotFound) {
				return errors.Wrap(domainerrors.ErrStateNotFound, "state not found")
			}

			return errors.Wrap(err, "failed to find state")
		}

		// 2. Reject empty required fields.
		if input.FlatBuild == "" || input.Locality == "" || input.City == "" || input.Pincode == "" {
			return errors.Wrap(domainerrors.ErrAddressFieldEmpty, "required address field is empty")
		}

		// 3. Reject anything that is not exactly six digits.
		if !pincodePattern.MatchString(input.Pincode) {
			return errors.Wrap(domainerrors.ErrInvalidPincode, "pincode must be exactly six digits")
		}

		address := &entity.Address{
			ID:        uuid.New(),
			FlatBuild: input.FlatBuild,
			Locality:  input.Locality,
			City:      input.City,
			Pincode:   input.Pincode,
			State:     state,
		}

		// 4. Address and ownership link succeed or fail together.
		if err := addressRepo.Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		if _, err := addressRepo.LinkCustomer(ctx, customerID, address.ID); err != nil {
			return errors.Wrap(err, "failed to link customer to address")
		}

		created = address

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to save address")
	}

	srv.publishEvent(ctx, service.AddressEventCreated, created, customerID)

	return created, nil
}

// ListAddresses returns the acting customer's addresses, most recently
// created first. An empty result is valid.
func (srv *addressService) ListAddresses(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error) {
	srv.loggerFromCtx(ctx).Debug("Listing addresses", "customerID", customerID)

	var addresses []*entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AddressRepo().FindAddressesByCustomer(ctx, customerID)
		if err != nil {
			return errors.Wrap(err, "failed to find addresses by customer")
		}
		addresses = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	// Storage returns link insertion order; the presentation contract is
	// newest first.
	slices.Reverse(addresses)

	return addresses, nil
}

// GetOwnedAddress resolves an address and confirms the acting customer owns
// it by walking the customer-address link backward.
func (srv *addressService) GetOwnedAddress(ctx context.Context, addressID string, customerID uuid.UUID) (*entity.Address, error) {
	var address *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.findOwnedAddress(ctx, repoFactory, addressID, customerID)
		if err != nil {
			return err
		}
		address = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get owned address")
	}

	return address, nil
}

// DeleteAddress removes an address after confirming ownership and returns the
// deleted address's prior state. Orders referencing the address are not
// checked; a delete always goes through for the owner.
func (srv *addressService) DeleteAddress(ctx context.Context, addressID string, customerID uuid.UUID) (*entity.Address, error) {
	srv.loggerFromCtx(ctx).Info("Deleting address", "customerID", customerID, "addressID", addressID)

	var deleted *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		address, err := srv.findOwnedAddress(ctx, repoFactory, addressID, customerID)
		if err != nil {
			return err
		}

		if err := repoFactory.AddressRepo().Delete(ctx, address.ID); err != nil {
			return errors.Wrap(err, "failed to delete address")
		}
		deleted = address

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to delete address")
	}

	srv.publishEvent(ctx, service.AddressEventDeleted, deleted, customerID)

	return deleted, nil
}

// ListStates returns every state. An empty result is valid.
func (srv *addressService) ListStates(ctx context.Context) ([]*entity.State, error) {
	var states []*entity.State

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.StateRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to find states")
		}
		states = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list states")
	}

	return states, nil
}

// findOwnedAddress is the shared ownership walk used by read and delete.
func (srv *addressService) findOwnedAddress(ctx context.Context, repoFactory repository.RepositoryFactory, addressID string, customerID uuid.UUID) (*entity.Address, error) {
	if addressID == "" {
		return nil, errors.Wrap(domainerrors.ErrAddressIDEmpty, "address id is empty")
	}

	id, err := uuid.Parse(addressID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address id is not a valid uuid")
	}

	addressRepo := repoFactory.AddressRepo()

	address, err := addressRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
		}

		return nil, errors.Wrap(err, "failed to find address")
	}

	link, err := addressRepo.FindLinkByAddress(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customer address link")
	}

	// Strict identity equality, not a fuzzy match.
	if link.CustomerID != customerID {
		return nil, errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "acting customer does not own this address")
	}

	return address, nil
}

// publishEvent emits an address lifecycle event. Publishing is best-effort:
// a failure is logged, never surfaced to the caller.
func (srv *addressService) publishEvent(ctx context.Context, action string, address *entity.Address, customerID uuid.UUID) {
	if srv.publisher == nil || address == nil {
		return
	}

	event := &service.AddressEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Action:     action,
		AddressID:  address.ID.String(),
		CustomerID: customerID.String(),
		City:       address.City,
		Pincode:    address.Pincode,
	}
	if address.State != nil {
		event.StateName = address.State.Name
	}

	if err := srv.publisher.PublishAddressEvent(ctx, event); err != nil {
		srv.loggerFromCtx(ctx).Error("failed to publish address event", "action", action, "error", err)
	}
}

// loggerFromCtx prefers the request-scoped logger when the delivery layer
// provided one.
func (srv *addressService) loggerFromCtx(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}
