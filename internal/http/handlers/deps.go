package handlers

import (
	"github.com/jmoiron/sqlx"

	"bookstore/internal/cart"
	"bookstore/internal/repos"
	"bookstore/internal/services"
)

type Deps struct {
	BookHandler *BookHandler
	ShopHandler *ShopHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	bookRepo := repos.NewBookRepo(db)
	catalogSvc := services.NewCatalogService(bookRepo)
	carts := cart.NewStore()

	return &Deps{
		BookHandler: &BookHandler{Catalog: catalogSvc},
		ShopHandler: &ShopHandler{Catalog: catalogSvc, Carts: carts},
	}
}
