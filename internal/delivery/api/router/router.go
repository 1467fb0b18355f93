// Package router wires handlers and middleware onto the echo instance.
package router

import (
	"catalog/internal/delivery/api/middleware"
	"catalog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SellerHandler       *handler.SellerHandler
	BookHandler         *handler.BookHandler
	TokenHandler        *handler.TokenHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sellerHandler       *handler.SellerHandler
	bookHandler         *handler.BookHandler
	tokenHandler        *handler.TokenHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sellerHandler:       params.SellerHandler,
		bookHandler:         params.BookHandler,
		tokenHandler:        params.TokenHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	sellersGroup := apiV1.Group("/sellers")
	{
		sellersGroup.POST("", r.sellerHandler.CreateSeller)
		sellersGroup.GET("", r.sellerHandler.ListSellers)
		sellersGroup.GET("/:seller_id", r.sellerHandler.GetSeller, r.authMiddleware.Authenticate)
		sellersGroup.PUT("/:seller_id", r.sellerHandler.UpdateSeller)
		sellersGroup.DELETE("/:seller_id", r.sellerHandler.DeleteSeller)
	}

	booksGroup := apiV1.Group("/books")
	{
		booksGroup.POST("", r.bookHandler.CreateBook, r.authMiddleware.Authenticate)
		booksGroup.GET("", r.bookHandler.ListBooks)
		booksGroup.GET("/:book_id", r.bookHandler.GetBook)
		booksGroup.GET("/:book_id/qr", r.bookHandler.BookQRCode)
		booksGroup.PUT("/:book_id", r.bookHandler.UpdateBook, r.authMiddleware.Authenticate)
		// Ownership on delete is decided by the usecase, so the caller may be anonymous here.
		booksGroup.DELETE("/:book_id", r.bookHandler.DeleteBook, r.authMiddleware.OptionalAuthenticate)
	}

	apiV1.POST("/token", r.tokenHandler.IssueToken, r.rateLimitMiddleware.LoginAttempts)
}
