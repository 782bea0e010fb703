package client

import (
	"log"
	"sync"

	"grostory/internal/models"
)

// CartController keeps three representations of cart state consistent: the
// in-memory item list, the local cache, and the remote cart store. Remote
// pushes are fire-and-forget: failures are logged, never retried, and never
// block a mutation. Empty lists are never pushed; the remote cart only
// empties through an explicit clear.
type CartController struct {
	api   *APIClient
	store *LocalStore

	mu    sync.Mutex
	items []models.CartItem
	token string
	auth  bool

	pushes sync.WaitGroup
}

// NewCartController creates a controller starting with an empty in-memory
// cart. Call SetUser to load the initial state.
func NewCartController(api *APIClient, store *LocalStore) *CartController {
	return &CartController{
		api:   api,
		store: store,
		items: []models.CartItem{},
	}
}

// loadLocal reads the local cart cache, empty when absent or unreadable.
func (c *CartController) loadLocal() []models.CartItem {
	var items []models.CartItem
	ok, err := c.store.Get(KeyCart, &items)
	if err != nil {
		log.Printf("Failed to read local cart cache: %v", err)
	}
	if !ok || items == nil {
		return []models.CartItem{}
	}
	return items
}

// SetUser reloads cart state for an auth transition. With a user present the
// remote cart wins when reachable, even when empty; on a fetch failure the
// local cache is the fallback. Without a user only the local cache is used.
// The adopted list is mirrored back into the local cache when non-empty, so
// a later offline restart resumes from the last server state rather than a
// stale pre-login cache. The remote fetch runs outside the lock; readers and
// mutators are never blocked on the network.
func (c *CartController) SetUser(user *models.User, token string) {
	c.mu.Lock()
	c.auth = user != nil
	c.token = token
	c.mu.Unlock()

	var adopted []models.CartItem
	if user != nil {
		remote, err := c.api.GetCart(token)
		if err == nil {
			adopted = remote
		} else {
			log.Printf("Failed to load remote cart, falling back to local cache: %v", err)
			adopted = c.loadLocal()
		}
	} else {
		adopted = c.loadLocal()
	}

	c.mu.Lock()
	c.items = adopted
	c.mu.Unlock()

	if len(adopted) > 0 {
		if err := c.store.Set(KeyCart, adopted); err != nil {
			log.Printf("Failed to write local cart cache: %v", err)
		}
	}
}

// Items returns a copy of the in-memory item list.
func (c *CartController) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// TotalItems returns the summed quantity across all lines.
func (c *CartController) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the summed price*quantity across all lines.
func (c *CartController) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// itemsChanged runs after every mutation while holding the lock: it writes
// through to the local cache and, when authenticated and non-empty, pushes
// the full list to the remote store in the background.
func (c *CartController) itemsChanged() {
	snapshot := make([]models.CartItem, len(c.items))
	copy(snapshot, c.items)

	if err := c.store.Set(KeyCart, snapshot); err != nil {
		log.Printf("Failed to write local cart cache: %v", err)
	}

	if !c.auth || len(snapshot) == 0 {
		return
	}
	token := c.token
	c.pushes.Add(1)
	go func() {
		defer c.pushes.Done()
		if err := c.api.SaveCart(token, snapshot); err != nil {
			log.Printf("Failed to save cart to backend: %v", err)
		}
	}()
}

// AddItem appends a line with quantity 1, or increments the quantity when
// the product is already in the cart. The Quantity field of the argument is
// ignored.
func (c *CartController) AddItem(item models.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity++
			c.itemsChanged()
			return
		}
	}
	item.Quantity = 1
	c.items = append(c.items, item)
	c.itemsChanged()
}

// RemoveItem drops the line for the given product entirely.
func (c *CartController) RemoveItem(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, item := range c.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(c.items) {
		return
	}
	c.items = kept
	c.itemsChanged()
}

// UpdateQuantity sets the line's quantity, removing the line when the new
// quantity is zero or negative. Unknown product IDs are a no-op.
func (c *CartController) UpdateQuantity(productID, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = quantity
		}
		c.itemsChanged()
		return
	}
}

// ClearCart empties the in-memory list and the local cache immediately, and
// issues an explicit remote clear in the background when authenticated.
func (c *CartController) ClearCart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = []models.CartItem{}
	if err := c.store.Remove(KeyCart); err != nil {
		log.Printf("Failed to clear local cart cache: %v", err)
	}

	if !c.auth {
		return
	}
	token := c.token
	c.pushes.Add(1)
	go func() {
		defer c.pushes.Done()
		if err := c.api.ClearCart(token); err != nil {
			log.Printf("Failed to clear cart on backend: %v", err)
		}
	}()
}

// Flush blocks until all in-flight remote pushes have finished.
func (c *CartController) Flush() {
	c.pushes.Wait()
}
