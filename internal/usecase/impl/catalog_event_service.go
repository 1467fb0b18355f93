package impl

import (
	"context"
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
)

type catalogEventService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCatalogEventService is the constructor for catalogEventService.
func NewCatalogEventService(txManager repository.TransactionManager, logger *slog.Logger) usecase.CatalogEventUsecase {
	return &catalogEventService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *catalogEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleCatalogEvent audits every event and sweeps books left behind by a deleted seller.
func (srv *catalogEventService) HandleCatalogEvent(ctx context.Context, event *service.CatalogEvent) error {
	if err := checkEvent(event); err != nil {
		return err
	}

	srv.log(ctx).Info("Catalog event received",
		slog.String("event_id", event.EventID),
		slog.String("event_type", string(event.Type)),
		slog.Int64("seller_id", event.SellerID),
		slog.Int64("book_id", event.BookID),
		slog.Time("occurred_at", event.OccurredAt),
	)

	if event.Type != service.SellerDeleted {
		return nil
	}

	return srv.sweepSellerBooks(ctx, event.SellerID)
}

// sweepSellerBooks removes books whose seller no longer exists. Replays are harmless.
func (srv *catalogEventService) sweepSellerBooks(ctx context.Context, sellerID int64) error {
	var swept int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.NewSellerRepository().FindByID(ctx, sellerID)
		if err == nil {
			srv.log(ctx).Warn("Seller still exists, skipping book sweep", slog.Int64("seller_id", sellerID))

			return nil
		}
		if !errors.Is(err, repository.ErrSellerNotFound) {
			return errors.Wrap(err, "failed to look up seller")
		}

		bookRepo := repoFactory.NewBookRepository()
		orphans, err := bookRepo.ListBySellerID(ctx, sellerID)
		if err != nil {
			return errors.Wrap(err, "failed to list seller books")
		}
		if len(orphans) == 0 {
			return nil
		}

		bookIDs := make([]int64, 0, len(orphans))
		for _, b := range orphans {
			bookIDs = append(bookIDs, b.ID)
		}
		srv.log(ctx).Info("Sweeping orphaned books",
			slog.Int64("seller_id", sellerID),
			slog.Any("book_ids", bookIDs),
		)

		swept, err = bookRepo.DeleteBySellerID(ctx, sellerID)
		if err != nil {
			return errors.Wrap(err, "failed to delete seller books")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to sweep seller books")
	}

	if swept > 0 {
		srv.log(ctx).Warn("Removed orphaned books",
			slog.Int64("seller_id", sellerID),
			slog.Int64("count", swept),
		)
	}

	return nil
}

func checkEvent(event *service.CatalogEvent) error {
	if event == nil || event.SellerID <= 0 {
		return errors.WithStack(usecase.ErrMalformedEvent)
	}

	switch event.Type {
	case service.SellerCreated, service.SellerUpdated, service.SellerDeleted:
		return nil
	case service.BookCreated, service.BookUpdated, service.BookDeleted:
		if event.BookID <= 0 {
			return errors.Wrap(usecase.ErrMalformedEvent, "book event without book id")
		}

		return nil
	default:
		return errors.Wrapf(usecase.ErrMalformedEvent, "unknown event type %q", event.Type)
	}
}
