package impl

import (
	"context"
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
)

// sellerService implements the SellerUsecase interface.
type sellerService struct {
	txManager  repository.TransactionManager
	sellerRepo repository.SellerRepository
	hasher     service.PasswordHasher
	events     eventNotifier
	logger     *slog.Logger
}

// NewSellerService is the constructor for sellerService.
func NewSellerService(
	txManager repository.TransactionManager,
	sellerRepo repository.SellerRepository,
	hasher service.PasswordHasher,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.SellerUsecase {
	return &sellerService{
		txManager:  txManager,
		sellerRepo: sellerRepo,
		hasher:     hasher,
		events:     eventNotifier{publisher: publisher},
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sellerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterSeller handles the business logic for seller registration.
func (srv *sellerService) RegisterSeller(ctx context.Context, input *usecase.RegisterSellerInput) (*entity.Seller, error) {
	profile := entity.SellerProfile{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}
	if err := domainerrors.JoinValidation(
		entity.ValidateSellerProfile(profile),
		entity.ValidatePassword(input.Password),
	); err != nil {
		return nil, errors.WithStack(err)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	seller := &entity.Seller{HashedPassword: hashedPassword}
	seller.Apply(profile)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sellerRepo := repoFactory.NewSellerRepository()

		// 1. Reject a taken email before inserting
		_, err := sellerRepo.FindByEmail(ctx, seller.Email)
		if err == nil {
			return errors.WithStack(domainerrors.ErrEmailAlreadyExists)
		}
		if !errors.Is(err, repository.ErrSellerNotFound) {
			return errors.Wrap(err, "failed to check email")
		}

		// 2. Insert; the unique index still guards concurrent registrations
		if err := sellerRepo.Create(ctx, seller); err != nil {
			return translateSellerError(err, "failed to create seller")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register seller")
	}

	srv.log(ctx).Info("Seller registered", slog.Int64("seller_id", seller.ID))
	srv.events.notify(ctx, srv.log(ctx), service.SellerCreated, seller.ID, 0)

	return seller, nil
}

// ListSellers returns all sellers ordered by ID.
func (srv *sellerService) ListSellers(ctx context.Context) ([]*entity.Seller, error) {
	sellers, err := srv.sellerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sellers")
	}

	return sellers, nil
}

// GetSeller returns the seller with its books.
func (srv *sellerService) GetSeller(ctx context.Context, id int64) (*entity.Seller, error) {
	seller, err := srv.sellerRepo.FindByIDWithBooks(ctx, id)
	if err != nil {
		return nil, translateSellerError(err, "failed to get seller")
	}

	return seller, nil
}

// UpdateSeller replaces the seller profile.
func (srv *sellerService) UpdateSeller(ctx context.Context, id int64, input *usecase.UpdateSellerInput) (*entity.Seller, error) {
	profile := entity.SellerProfile{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}
	if err := entity.ValidateSellerProfile(profile); err != nil {
		return nil, errors.WithStack(err)
	}

	var seller *entity.Seller

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sellerRepo := repoFactory.NewSellerRepository()

		found, err := sellerRepo.FindByID(ctx, id)
		if err != nil {
			return translateSellerError(err, "failed to find seller")
		}

		found.Apply(profile)
		if err := sellerRepo.Update(ctx, found); err != nil {
			return translateSellerError(err, "failed to update seller")
		}
		seller = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update seller")
	}

	srv.events.notify(ctx, srv.log(ctx), service.SellerUpdated, seller.ID, 0)

	return seller, nil
}

// DeleteSeller removes the seller's books and then the seller, atomically.
func (srv *sellerService) DeleteSeller(ctx context.Context, id int64) error {
	var removedBooks int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sellerRepo := repoFactory.NewSellerRepository()
		bookRepo := repoFactory.NewBookRepository()

		if _, err := sellerRepo.FindByID(ctx, id); err != nil {
			return translateSellerError(err, "failed to find seller")
		}

		n, err := bookRepo.DeleteBySellerID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to delete seller books")
		}
		removedBooks = n

		if err := sellerRepo.Delete(ctx, id); err != nil {
			return translateSellerError(err, "failed to delete seller")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete seller")
	}

	srv.log(ctx).Info("Seller deleted",
		slog.Int64("seller_id", id),
		slog.Int64("removed_books", removedBooks),
	)
	srv.events.notify(ctx, srv.log(ctx), service.SellerDeleted, id, 0)

	return nil
}

// translateSellerError maps repository sentinels onto domain errors.
func translateSellerError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrSellerNotFound):
		return errors.Wrap(domainerrors.ErrSellerNotFound, msg)
	case errors.Is(err, repository.ErrSellerEmailExists):
		return errors.Wrap(domainerrors.ErrEmailAlreadyExists, msg)
	default:
		return errors.Wrap(err, msg)
	}
}
