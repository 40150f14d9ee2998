package cart

import (
	"sync"

	"github.com/dmtumanov/beanline-backend/internal/catalog"
	"github.com/dmtumanov/beanline-backend/internal/options"
)

// Snapshot is a point-in-time view of a customer's cart.
type Snapshot struct {
	Lines     []Line `json:"lines"`
	Total     int    `json:"total"`
	ItemCount int    `json:"item_count"`
}

// Manager owns the per-customer cart engines and serializes all access to
// them. Engines are created lazily on first use.
type Manager struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	engines map[string]*Engine
}

// NewManager builds an empty session store over the given catalog.
func NewManager(cat *catalog.Catalog) *Manager {
	return &Manager{
		catalog: cat,
		engines: make(map[string]*Engine),
	}
}

// AddItem resolves and prices the item for the named customer, then hands
// the engine the computed total for an arithmetic merge.
func (m *Manager) AddItem(customerKey, productID string, variantIndex, quantity int, sel options.Selection) (Line, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	engine := m.engine(customerKey)
	product, ok := m.catalog.Product(productID)
	if !ok || variantIndex < 0 || variantIndex >= len(product.Variants) {
		// The engine reports the precise reference error.
		return engine.AddItem(productID, variantIndex, quantity, sel, 0)
	}

	resolved, surcharge, err := options.Resolve(product, sel)
	if err != nil {
		return Line{}, err
	}
	unitPrice := product.Variants[variantIndex].Price + surcharge
	return engine.AddItem(productID, variantIndex, quantity, resolved, unitPrice*quantity)
}

// RemoveItem drops a line from the named customer's cart.
func (m *Manager) RemoveItem(customerKey, lineKey string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.engine(customerKey).RemoveItem(lineKey)
}

// Snapshot returns the current contents of the named customer's cart.
func (m *Manager) Snapshot(customerKey string) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	engine := m.engine(customerKey)
	return Snapshot{
		Lines:     engine.Lines(),
		Total:     engine.Total(),
		ItemCount: engine.ItemCount(),
	}
}

// Clear empties the named customer's cart.
func (m *Manager) Clear(customerKey string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.engine(customerKey).Clear()
}

func (m *Manager) engine(customerKey string) *Engine {
	engine, ok := m.engines[customerKey]
	if !ok {
		engine = NewEngine(m.catalog)
		m.engines[customerKey] = engine
	}
	return engine
}
