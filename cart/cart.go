package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/pkg/apperr"
)

// Entry is one line of a cart: item reference, price snapshot, quantity.
type Entry struct {
	FoodItemID uint            `json:"foodItemId"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int             `json:"quantity"`
}

func (e Entry) Extended() decimal.Decimal {
	return e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Cart is a session's mutable list of entries plus its pricing variant.
// All methods are safe for concurrent use; the cart's own mutex is the
// per-session exclusive region, so unrelated sessions never contend.
type Cart struct {
	mu       sync.Mutex
	entries  []Entry
	pricing  PricingKind
	checking bool // a placement holds a claim on this cart
}

func New() *Cart {
	return &Cart{pricing: PricingNormal}
}

// Add appends a new entry. Entries for the same item are not merged; each
// add is its own line, insertion order preserved.
func (c *Cart) Add(itemID uint, name string, unitPrice decimal.Decimal, qty int, mods ...Modifier) error {
	if qty < 1 {
		return apperr.Newf(apperr.Validation, "quantity must be at least 1, got %d", qty)
	}
	for _, m := range mods {
		name, unitPrice = m(name, unitPrice)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, Entry{
		FoodItemID: itemID,
		Name:       name,
		UnitPrice:  unitPrice,
		Quantity:   qty,
	})
	return nil
}

// Entries returns a copy; callers never see internal state.
func (c *Cart) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotalLocked()
}

func (c *Cart) subtotalLocked() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range c.entries {
		sum = sum.Add(e.Extended())
	}
	return sum
}

func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pricing.apply(c.subtotalLocked())
}

// Clear empties the cart and releases any checkout claim. Idempotent.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
	c.checking = false
}

func (c *Cart) SetPricing(k PricingKind) error {
	if !k.valid() {
		return apperr.Newf(apperr.Validation, "unknown pricing kind %d", k)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pricing = k
	return nil
}

// Snapshot is the immutable cart state captured when a placement claims
// the cart.
type Snapshot struct {
	Entries []Entry
	Total   decimal.Decimal
}

// Checkout atomically claims the cart for one placement and captures its
// state. A second claim before Clear or Reopen fails, which is what keeps
// two racing placements from both succeeding. The claim is taken without
// holding the lock past this call, so cart reads elsewhere are never
// blocked on database I/O.
func (c *Cart) Checkout() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.checking {
		return Snapshot{}, apperr.New(apperr.Conflict, "cart checkout already in progress")
	}
	if len(c.entries) == 0 {
		return Snapshot{}, apperr.New(apperr.Validation, "cart is empty")
	}

	c.checking = true
	entries := make([]Entry, len(c.entries))
	copy(entries, c.entries)
	return Snapshot{
		Entries: entries,
		Total:   c.pricing.apply(c.subtotalLocked()),
	}, nil
}

// Reopen releases a claim after a failed placement, leaving the entries
// intact so the order can be retried.
func (c *Cart) Reopen() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checking = false
}
