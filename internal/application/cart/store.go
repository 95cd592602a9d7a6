// Package cart mantiene el borrador persistido de la orden que se está
// armando en la terminal: las líneas con su snapshot de producto y el cliente
// seleccionado. Es la fuente autoritativa hasta que el checkout lo vacía.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/omnipos-terminal/internal/domain/entity"
	"github.com/jhoicas/omnipos-terminal/pkg/logger"
)

// SnapshotName nombre del snapshot persistido (mismo que el cliente web).
const SnapshotName = "pos-cart-storage"

// Persister puerto de persistencia de snapshots.
type Persister interface {
	SaveSnapshot(name string, v any) error
	LoadSnapshot(name string, v any) (bool, error)
}

// Item línea del carrito: snapshot del producto al momento de agregarlo más
// la cantidad acumulada. El precio congelado en Product.BasePrice es el que
// viaja al checkout, no el precio vigente en el servidor.
type Item struct {
	Product  entity.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// snapshot estado serializable del store. Items conserva el orden de primera
// inserción; nunca hay dos entradas con el mismo producto.
type snapshot struct {
	Items      []Item `json:"items"`
	CustomerID string `json:"customer_id"`
}

// Store contenedor del borrador de orden, construible e inyectable.
// Seguro para lectura concurrente.
type Store struct {
	mu        sync.RWMutex
	state     snapshot
	persister Persister
	log       *logger.Logger
}

// New construye el store y carga el snapshot persistido si existe.
func New(persister Persister, log *logger.Logger) *Store {
	s := &Store{persister: persister, log: log}
	if persister != nil {
		if _, err := persister.LoadSnapshot(SnapshotName, &s.state); err != nil {
			log.Warn().Err(err).Msg("carrito: snapshot ilegible, se arranca vacío")
			s.state = snapshot{}
		}
	}
	return s
}

// ── Mutaciones ────────────────────────────────────────────────────────────────

// AddToCart agrega una unidad del producto. Si ya hay una línea para esa
// identidad de producto incrementa su cantidad; si no, inserta una línea
// nueva al final (orden de primera inserción).
func (s *Store) AddToCart(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Items {
		if s.state.Items[i].Product.ID == p.ID {
			s.state.Items[i].Quantity++
			s.persistLocked()
			return
		}
	}
	s.state.Items = append(s.state.Items, Item{Product: p, Quantity: 1})
	s.persistLocked()
}

// RemoveFromCart elimina la línea del producto; no-op si no existe.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Items {
		if s.state.Items[i].Product.ID == productID {
			s.state.Items = append(s.state.Items[:i], s.state.Items[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// UpdateQuantity fija la cantidad de la línea en max(0, quantity). Una línea
// en cero permanece visible hasta que se elimina explícitamente. No-op si el
// producto no está en el carrito.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Items {
		if s.state.Items[i].Product.ID == productID {
			s.state.Items[i].Quantity = quantity
			s.persistLocked()
			return
		}
	}
}

// ClearCart vacía las líneas y quita el cliente seleccionado en una sola
// mutación (el snapshot persiste ambos cambios juntos).
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.state = snapshot{}
	s.persistLocked()
	s.mu.Unlock()
}

// SetCustomer sobrescribe la referencia al cliente ("" la quita); es
// independiente de las mutaciones de líneas.
func (s *Store) SetCustomer(customerID string) {
	s.mu.Lock()
	s.state.CustomerID = customerID
	s.persistLocked()
	s.mu.Unlock()
}

// ── Lecturas ──────────────────────────────────────────────────────────────────

// Items devuelve una copia de las líneas en orden de primera inserción.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.state.Items))
	copy(out, s.state.Items)
	return out
}

// CustomerID devuelve el cliente seleccionado, o "" si no hay.
func (s *Store) CustomerID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.CustomerID
}

// TotalItems suma de todas las cantidades.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, it := range s.state.Items {
		total += it.Quantity
	}
	return total
}

// Subtotal suma de precio congelado × cantidad sobre todas las líneas.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub := decimal.Zero
	for _, it := range s.state.Items {
		sub = sub.Add(it.Product.BasePrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sub
}

// Total hoy es igual al subtotal; la composición de impuestos y descuentos es
// un punto de extensión deliberado que calcula el servidor en el checkout.
func (s *Store) Total() decimal.Decimal {
	return s.Subtotal()
}

func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	if err := s.persister.SaveSnapshot(SnapshotName, &s.state); err != nil {
		s.log.Error().Err(err).Msg("carrito: persistir snapshot")
	}
}
