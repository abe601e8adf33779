package domain

import "context"

// Product is a cart line item. A Product only exists inside a cart, and its
// Amount is the quantity currently in the cart, never the stock level.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Amount   int     `json:"amount"`
}

// Stock is the inventory service's view of availability for a product.
// It is never persisted locally.
type Stock struct {
	ID     int `json:"id"`
	Amount int `json:"amount"`
}

// CartUseCase is the whole surface consumed by UI-facing callers: the current
// snapshot, the three mutating operations, and a subscription for reacting to
// committed changes. There are no other query operations.
type CartUseCase interface {
	Cart() []Product
	AddProduct(ctx context.Context, productID int)
	RemoveProduct(productID int)
	UpdateProductAmount(ctx context.Context, productID int, amount int)
	Subscribe(fn func([]Product))
}

// User-facing notification messages. The storefront UI renders these verbatim,
// so they must not be reworded.
const (
	MsgAddSuccess  = "Produto adicionado ao carrinho"
	MsgOutOfStock  = "Quantidade solicitada fora de estoque"
	MsgAddError    = "Erro na adição do produto"
	MsgRemoveError = "Erro na remoção do produto"
	MsgUpdateError = "Erro na alteração de quantidade do produto"
)
