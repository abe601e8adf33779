package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"cart_service/internal/clients"
	"cart_service/internal/domain"
	"cart_service/internal/notifier"
	"cart_service/internal/storage"

	"github.com/sirupsen/logrus"
)

var _ domain.CartUseCase = (*cartUseCase)(nil)

// cartUseCase owns the in-memory cart and its persisted mirror. Every
// successful mutation replaces the cart slice, writes the full JSON snapshot
// under the configured key and notifies subscribers. Failed operations leave
// both the cart and the snapshot untouched and only emit an error
// notification: no error ever reaches the caller.
type cartUseCase struct {
	snapshots     storage.SnapshotStore
	stockClient   clients.StockClient
	catalogClient clients.CatalogClient
	notify        notifier.Notifier
	log           *logrus.Logger
	cartKey       string

	mu          sync.Mutex
	cart        []domain.Product
	subscribers []func([]domain.Product)
}

// NewCartUseCase loads the persisted snapshot and returns the cart store. An
// absent or unparsable snapshot degrades to an empty cart without surfacing an
// error; a stale snapshot is worth less than a working cart.
func NewCartUseCase(
	ctx context.Context,
	snapshots storage.SnapshotStore,
	stockClient clients.StockClient,
	catalogClient clients.CatalogClient,
	notify notifier.Notifier,
	logger *logrus.Logger,
	cartKey string,
) domain.CartUseCase {
	if cartKey == "" {
		cartKey = storage.DefaultCartKey
	}

	uc := &cartUseCase{
		snapshots:     snapshots,
		stockClient:   stockClient,
		catalogClient: catalogClient,
		notify:        notify,
		log:           logger,
		cartKey:       cartKey,
	}
	uc.cart = uc.loadSnapshot(ctx)
	return uc
}

func (uc *cartUseCase) loadSnapshot(ctx context.Context) []domain.Product {
	raw, found, err := uc.snapshots.Read(ctx, uc.cartKey)
	if err != nil {
		uc.log.Warnf("Use Case: Failed to read cart snapshot under key '%s', starting empty: %v", uc.cartKey, err)
		return []domain.Product{}
	}
	if !found {
		uc.log.Infof("Use Case: No cart snapshot under key '%s', starting empty", uc.cartKey)
		return []domain.Product{}
	}

	var cart []domain.Product
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		uc.log.Warnf("Use Case: Unparsable cart snapshot under key '%s', starting empty: %v", uc.cartKey, err)
		return []domain.Product{}
	}
	if cart == nil {
		cart = []domain.Product{}
	}

	uc.log.Infof("Use Case: Loaded cart snapshot with %d items", len(cart))
	return cart
}

// Cart returns a copy of the current cart snapshot.
func (uc *cartUseCase) Cart() []domain.Product {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshot()
}

// Subscribe registers fn to receive the new snapshot after every commit.
// Subscribers are invoked synchronously, in registration order.
func (uc *cartUseCase) Subscribe(fn func([]domain.Product)) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.subscribers = append(uc.subscribers, fn)
}

// AddProduct puts one unit of a product into the cart. For a product already
// in the cart the increment is validated against the stock service; a first
// add is not stock-checked and always enters with amount 1. Matches the
// storefront behavior exactly, asymmetry included.
func (uc *cartUseCase) AddProduct(ctx context.Context, productID int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.log.Infof("Use Case: AddProduct called for product ID %d", productID)

	idx := uc.indexOf(productID)
	if idx >= 0 {
		stock, err := uc.stockClient.GetStock(ctx, productID)
		if err != nil {
			uc.log.Warnf("Use Case: Stock check failed for product ID %d: %v", productID, err)
			uc.notify.Error(domain.MsgAddError)
			return
		}

		if uc.cart[idx].Amount >= stock.Amount {
			uc.log.Warnf("Use Case: Product ID %d out of stock (in cart: %d, available: %d)",
				productID, uc.cart[idx].Amount, stock.Amount)
			uc.notify.Error(domain.MsgOutOfStock)
			return
		}

		next := uc.snapshot()
		next[idx].Amount++
		uc.commit(ctx, next)
		uc.notify.Success(domain.MsgAddSuccess)
		return
	}

	product, err := uc.catalogClient.GetProduct(ctx, productID)
	if err != nil {
		uc.log.Warnf("Use Case: Catalog lookup failed for product ID %d: %v", productID, err)
		uc.notify.Error(domain.MsgAddError)
		return
	}

	next := append(uc.snapshot(), domain.Product{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		ImageURL: product.ImageURL,
		Amount:   1,
	})
	uc.commit(ctx, next)
	uc.notify.Success(domain.MsgAddSuccess)
}

// RemoveProduct drops a product from the cart entirely, whatever its amount.
// No success notification is emitted for removal.
func (uc *cartUseCase) RemoveProduct(productID int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.log.Infof("Use Case: RemoveProduct called for product ID %d", productID)

	idx := uc.indexOf(productID)
	if idx < 0 {
		uc.log.Warnf("Use Case: Cannot remove product ID %d, not in cart", productID)
		uc.notify.Error(domain.MsgRemoveError)
		return
	}

	next := make([]domain.Product, 0, len(uc.cart)-1)
	for _, item := range uc.cart {
		if item.ID != productID {
			next = append(next, item)
		}
	}
	uc.commit(context.Background(), next)
}

// UpdateProductAmount sets the cart amount of an existing product after
// validating it against current stock. Amounts of zero or below are ignored
// without any notification. No success notification is emitted.
func (uc *cartUseCase) UpdateProductAmount(ctx context.Context, productID int, amount int) {
	if amount <= 0 {
		return
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.log.Infof("Use Case: UpdateProductAmount called for product ID %d (amount: %d)", productID, amount)

	idx := uc.indexOf(productID)
	if idx < 0 {
		uc.log.Warnf("Use Case: Cannot update product ID %d, not in cart", productID)
		uc.notify.Error(domain.MsgUpdateError)
		return
	}

	stock, err := uc.stockClient.GetStock(ctx, productID)
	if err != nil {
		uc.log.Warnf("Use Case: Stock check failed for product ID %d: %v", productID, err)
		uc.notify.Error(domain.MsgUpdateError)
		return
	}

	if amount > stock.Amount {
		uc.log.Warnf("Use Case: Requested amount %d for product ID %d exceeds stock %d",
			amount, productID, stock.Amount)
		uc.notify.Error(domain.MsgOutOfStock)
		return
	}

	next := uc.snapshot()
	next[idx].Amount = amount
	uc.commit(ctx, next)
}

// indexOf returns the cart position of productID, or -1. Callers must hold
// the mutex.
func (uc *cartUseCase) indexOf(productID int) int {
	for i, item := range uc.cart {
		if item.ID == productID {
			return i
		}
	}
	return -1
}

// snapshot copies the current cart. Callers must hold the mutex.
func (uc *cartUseCase) snapshot() []domain.Product {
	out := make([]domain.Product, len(uc.cart))
	copy(out, uc.cart)
	return out
}

// commit swaps in the new cart, persists the full snapshot and notifies
// subscribers. A persistence failure is logged and absorbed: the in-memory
// mutation stands and the stale snapshot is overwritten on the next commit.
// Callers must hold the mutex.
func (uc *cartUseCase) commit(ctx context.Context, next []domain.Product) {
	uc.cart = next

	data, err := json.Marshal(next)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to serialize cart snapshot: %v", err)
	} else if err := uc.snapshots.Write(ctx, uc.cartKey, string(data)); err != nil {
		uc.log.Errorf("Use Case: Failed to persist cart snapshot under key '%s': %v", uc.cartKey, err)
	}

	for _, fn := range uc.subscribers {
		fn(uc.snapshot())
	}
}
