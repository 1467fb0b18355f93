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

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sellerRepo   repository.SellerRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	sellerRepo repository.SellerRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		sellerRepo:   sellerRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueToken authenticates by email and password and signs an access token for the seller.
func (srv *sessionService) IssueToken(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	seller, err := srv.sellerRepo.FindByEmail(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		return nil, errors.Wrap(err, "failed to find seller")
	}

	if !srv.hasher.Check(input.Password, seller.HashedPassword) {
		srv.log(ctx).Info("Rejected login attempt", slog.Int64("seller_id", seller.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	token, err := srv.tokenService.Issue(jwt.MapClaims{"sub": seller.Email}, 0)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return &usecase.TokenOutput{
		AccessToken: token,
		TokenType:   usecase.TokenTypeBearer,
	}, nil
}

// ResolveSeller maps a bearer token to the seller named by its sub claim.
func (srv *sessionService) ResolveSeller(ctx context.Context, token string) (*entity.Seller, error) {
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token has no subject")
	}

	seller, err := srv.sellerRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token subject does not exist")
		}

		return nil, errors.Wrap(err, "failed to resolve seller")
	}

	return seller, nil
}
