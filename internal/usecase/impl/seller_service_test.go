package impl

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	mockRepo "catalog/internal/mocks/repository"
	mockSvc "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sellerServiceFixtures holds all test dependencies for seller service tests.
type sellerServiceFixtures struct {
	service    usecase.SellerUsecase
	txManager  *mockRepo.TransactionManager
	sellerRepo *mockRepo.MockSellerRepository
	bookRepo   *mockRepo.MockBookRepository
	hasher     *mockSvc.MockPasswordHasher
	publisher  *mockSvc.MockEventPublisher
}

func createTestSellerService(t *testing.T) sellerServiceFixtures {
	sellerRepo := mockRepo.NewMockSellerRepository(t)
	bookRepo := mockRepo.NewMockBookRepository(t)
	txManager := mockRepo.NewTransactionManager(sellerRepo, bookRepo)
	hasher := mockSvc.NewMockPasswordHasher(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return sellerServiceFixtures{
		service:    NewSellerService(txManager, sellerRepo, hasher, publisher, newDiscardLogger()),
		txManager:  txManager,
		sellerRepo: sellerRepo,
		bookRepo:   bookRepo,
		hasher:     hasher,
		publisher:  publisher,
	}
}

func validRegisterInput() *usecase.RegisterSellerInput {
	return &usecase.RegisterSellerInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "Secret123",
	}
}

func eventOfType(typ service.CatalogEventType) any {
	return mock.MatchedBy(func(e *service.CatalogEvent) bool { return e.Type == typ })
}

func TestSellerService_RegisterSeller_Success(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.sellerRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrSellerNotFound)
	fx.sellerRepo.On("Create", ctx, mock.AnythingOfType("*entity.Seller")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Seller).ID = 7
		}).
		Return(nil)
	fx.publisher.On("PublishCatalogEvent", ctx, eventOfType(service.SellerCreated)).Return(nil)

	seller, err := fx.service.RegisterSeller(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(7), seller.ID)
	assert.Equal(t, "ada@example.com", seller.Email)
	assert.Equal(t, "hashed_password", seller.HashedPassword)
	assert.Equal(t, 1, fx.txManager.Calls)
}

func TestSellerService_RegisterSeller_DuplicateEmail(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.sellerRepo.On("FindByEmail", ctx, input.Email).Return(&entity.Seller{ID: 1, Email: input.Email}, nil)

	seller, err := fx.service.RegisterSeller(ctx, input)

	assert.Nil(t, seller)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
	fx.sellerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSellerService_RegisterSeller_UniqueIndexRace(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.sellerRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrSellerNotFound)
	fx.sellerRepo.On("Create", ctx, mock.Anything).Return(repository.ErrSellerEmailExists)

	_, err := fx.service.RegisterSeller(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestSellerService_RegisterSeller_ValidationCollectsAllFields(t *testing.T) {
	fx := createTestSellerService(t)

	input := &usecase.RegisterSellerInput{FirstName: "Ada", LastName: "Lovelace", Email: "nope", Password: "weak"}
	_, err := fx.service.RegisterSeller(context.Background(), input)

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields(), 2)
	assert.Equal(t, "email", verr.Fields()[0].Loc[1])
	assert.Equal(t, "password", verr.Fields()[1].Loc[1])
	assert.Zero(t, fx.txManager.Calls)
}

func TestSellerService_RegisterSeller_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.sellerRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrSellerNotFound)
	fx.sellerRepo.On("Create", ctx, mock.Anything).Return(nil)
	fx.publisher.On("PublishCatalogEvent", ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.RegisterSeller(ctx, input)

	assert.NoError(t, err)
}

func TestSellerService_GetSeller_NotFound(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	fx.sellerRepo.On("FindByIDWithBooks", ctx, int64(9)).Return(nil, repository.ErrSellerNotFound)

	_, err := fx.service.GetSeller(ctx, 9)

	assert.True(t, errors.Is(err, domainerrors.ErrSellerNotFound))
}

func TestSellerService_UpdateSeller(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	existing := &entity.Seller{ID: 3, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", HashedPassword: "h"}
	fx.sellerRepo.On("FindByID", ctx, int64(3)).Return(existing, nil)
	fx.sellerRepo.On("Update", ctx, existing).Return(nil)
	fx.publisher.On("PublishCatalogEvent", ctx, eventOfType(service.SellerUpdated)).Return(nil)

	seller, err := fx.service.UpdateSeller(ctx, 3, &usecase.UpdateSellerInput{
		FirstName: "Augusta",
		LastName:  "King",
		Email:     "augusta@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Augusta", seller.FirstName)
	assert.Equal(t, "King", seller.LastName)
	assert.Equal(t, "augusta@example.com", seller.Email)
	assert.Equal(t, "h", seller.HashedPassword)
}

func TestSellerService_UpdateSeller_Errors(t *testing.T) {
	input := &usecase.UpdateSellerInput{FirstName: "A", LastName: "B", Email: "taken@example.com"}

	t.Run("not found", func(t *testing.T) {
		fx := createTestSellerService(t)
		ctx := context.Background()
		fx.sellerRepo.On("FindByID", ctx, int64(3)).Return(nil, repository.ErrSellerNotFound)

		_, err := fx.service.UpdateSeller(ctx, 3, input)
		assert.True(t, errors.Is(err, domainerrors.ErrSellerNotFound))
	})

	t.Run("duplicate email", func(t *testing.T) {
		fx := createTestSellerService(t)
		ctx := context.Background()
		fx.sellerRepo.On("FindByID", ctx, int64(3)).Return(&entity.Seller{ID: 3}, nil)
		fx.sellerRepo.On("Update", ctx, mock.Anything).Return(repository.ErrSellerEmailExists)

		_, err := fx.service.UpdateSeller(ctx, 3, input)
		assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
	})

	t.Run("invalid email", func(t *testing.T) {
		fx := createTestSellerService(t)

		_, err := fx.service.UpdateSeller(context.Background(), 3, &usecase.UpdateSellerInput{FirstName: "A", LastName: "B", Email: "x"})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestSellerService_DeleteSeller_RemovesBooksFirst(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	var order []string
	fx.sellerRepo.On("FindByID", ctx, int64(5)).Return(&entity.Seller{ID: 5}, nil)
	fx.bookRepo.On("DeleteBySellerID", ctx, int64(5)).
		Run(func(mock.Arguments) { order = append(order, "books") }).
		Return(int64(3), nil)
	fx.sellerRepo.On("Delete", ctx, int64(5)).
		Run(func(mock.Arguments) { order = append(order, "seller") }).
		Return(nil)
	fx.publisher.On("PublishCatalogEvent", ctx, eventOfType(service.SellerDeleted)).Return(nil)

	require.NoError(t, fx.service.DeleteSeller(ctx, 5))
	assert.Equal(t, []string{"books", "seller"}, order)
	assert.Equal(t, 1, fx.txManager.Calls)
}

func TestSellerService_DeleteSeller_NotFound(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	fx.sellerRepo.On("FindByID", ctx, int64(5)).Return(nil, repository.ErrSellerNotFound)

	err := fx.service.DeleteSeller(ctx, 5)

	assert.True(t, errors.Is(err, domainerrors.ErrSellerNotFound))
	fx.bookRepo.AssertNotCalled(t, "DeleteBySellerID", mock.Anything, mock.Anything)
}
