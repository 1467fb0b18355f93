package impl

import (
	"context"
	"log/slog"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
)

// bookService implements the BookUsecase interface.
type bookService struct {
	txManager        repository.TransactionManager
	bookRepo         repository.BookRepository
	qrService        service.QRCodeService
	events           eventNotifier
	enforceOwnership bool
	logger           *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(
	txManager repository.TransactionManager,
	bookRepo repository.BookRepository,
	qrService service.QRCodeService,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.BookUsecase {
	return &bookService{
		txManager:        txManager,
		bookRepo:         bookRepo,
		qrService:        qrService,
		events:           eventNotifier{publisher: publisher},
		enforceOwnership: cfg.EnforceBookOwnership(),
		logger:           logger,
	}
}

func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBook stores a book whose owner is always the authenticated seller.
func (srv *bookService) CreateBook(ctx context.Context, owner *entity.Seller, input *usecase.BookInput) (*entity.Book, error) {
	if owner == nil {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	details := input.Details()
	if err := entity.ValidateBookDetails(details); err != nil {
		return nil, errors.WithStack(err)
	}

	book := &entity.Book{SellerID: owner.ID}
	book.Apply(details)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewBookRepository().Create(ctx, book); err != nil {
			if errors.Is(err, repository.ErrBookSellerMissing) {
				// The token named a seller that was deleted after it was resolved.
				return errors.Wrap(domainerrors.ErrInvalidToken, "owner no longer exists")
			}

			return errors.Wrap(err, "failed to create book")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create book")
	}

	srv.log(ctx).Info("Book created",
		slog.Int64("book_id", book.ID),
		slog.Int64("seller_id", book.SellerID),
	)
	srv.events.notify(ctx, srv.log(ctx), service.BookCreated, book.SellerID, book.ID)

	return book, nil
}

// ListBooks returns all books ordered by ID.
func (srv *bookService) ListBooks(ctx context.Context) ([]*entity.Book, error) {
	books, err := srv.bookRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	return books, nil
}

// GetBook returns a single book.
func (srv *bookService) GetBook(ctx context.Context, id int64) (*entity.Book, error) {
	book, err := srv.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateBookError(err, "failed to get book")
	}

	return book, nil
}

// UpdateBook replaces title, author, year and page count. The owner never changes.
func (srv *bookService) UpdateBook(ctx context.Context, caller *entity.Seller, id int64, input *usecase.BookInput) (*entity.Book, error) {
	details := input.Details()
	if err := entity.ValidateBookDetails(details); err != nil {
		return nil, errors.WithStack(err)
	}

	var book *entity.Book

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()

		found, err := bookRepo.FindByID(ctx, id)
		if err != nil {
			return translateBookError(err, "failed to find book")
		}

		if err := srv.checkOwnership(caller, found); err != nil {
			return err
		}

		found.Apply(details)
		if err := bookRepo.Update(ctx, found); err != nil {
			return translateBookError(err, "failed to update book")
		}
		book = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update book")
	}

	srv.events.notify(ctx, srv.log(ctx), service.BookUpdated, book.SellerID, book.ID)

	return book, nil
}

// DeleteBook removes a single book.
func (srv *bookService) DeleteBook(ctx context.Context, caller *entity.Seller, id int64) error {
	var sellerID int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()

		found, err := bookRepo.FindByID(ctx, id)
		if err != nil {
			return translateBookError(err, "failed to find book")
		}

		if err := srv.checkOwnership(caller, found); err != nil {
			return err
		}

		if err := bookRepo.Delete(ctx, id); err != nil {
			return translateBookError(err, "failed to delete book")
		}
		sellerID = found.SellerID

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete book")
	}

	srv.events.notify(ctx, srv.log(ctx), service.BookDeleted, sellerID, id)

	return nil
}

// BookQRCode renders the QR label of an existing book.
func (srv *bookService) BookQRCode(ctx context.Context, id int64) ([]byte, error) {
	if _, err := srv.GetBook(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateBookQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate book QR code")
	}

	return png, nil
}

// checkOwnership is a no-op unless ownership enforcement is configured.
func (srv *bookService) checkOwnership(caller *entity.Seller, book *entity.Book) error {
	if !srv.enforceOwnership {
		return nil
	}

	if caller == nil {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	if caller.ID != book.SellerID {
		return errors.Wrapf(domainerrors.ErrForbidden, "seller %d does not own book %d", caller.ID, book.ID)
	}

	return nil
}

func translateBookError(err error, msg string) error {
	if errors.Is(err, repository.ErrBookNotFound) {
		return errors.Wrap(domainerrors.ErrBookNotFound, msg)
	}

	return errors.Wrap(err, msg)
}
