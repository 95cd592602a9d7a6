package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/omnipos-terminal/internal/application/cart"
	"github.com/jhoicas/omnipos-terminal/internal/domain/entity"
	"github.com/jhoicas/omnipos-terminal/internal/infrastructure/storage"
	"github.com/jhoicas/omnipos-terminal/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func producto(id, name string, price string) entity.Product {
	return entity.Product{
		ID:        id,
		SKU:       "SKU-" + id,
		Name:      name,
		BasePrice: decimal.RequireFromString(price),
	}
}

func newStore(t *testing.T) *cart.Store {
	t.Helper()
	return cart.New(nil, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones de líneas
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: agregar dos veces el mismo producto acumula cantidad en una sola
// línea en vez de duplicarla.
func TestAddToCart_MismoProductoIncrementaCantidad(t *testing.T) {
	s := newStore(t)
	cafe := producto("p1", "Café", "5.00")

	s.AddToCart(cafe)
	s.AddToCart(cafe)

	items := s.Items()
	require.Len(t, items, 1, "el mismo producto no debe duplicar líneas")
	assert.Equal(t, 2, items[0].Quantity, "la cantidad debe acumularse")
}

// Caso 2: productos distintos conservan el orden de primera inserción.
func TestAddToCart_ConservaOrdenDeInsercion(t *testing.T) {
	s := newStore(t)
	s.AddToCart(producto("p1", "Café", "5.00"))
	s.AddToCart(producto("p2", "Pan", "2.00"))
	s.AddToCart(producto("p1", "Café", "5.00"))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].Product.ID, "p1 se insertó primero")
	assert.Equal(t, "p2", items[1].Product.ID)
}

// Caso 3: UpdateQuantity con negativo se fija en cero y la línea permanece
// visible hasta eliminarla explícitamente.
func TestUpdateQuantity_NegativoSeFijaEnCeroYConservaLinea(t *testing.T) {
	s := newStore(t)
	s.AddToCart(producto("p1", "Café", "5.00"))

	s.UpdateQuantity("p1", -5)

	items := s.Items()
	require.Len(t, items, 1, "la línea en cero debe permanecer en el carrito")
	assert.Equal(t, 0, items[0].Quantity)
	assert.Equal(t, 0, s.TotalItems())
	assert.True(t, s.Subtotal().IsZero(), "una línea en cero no aporta al subtotal")
}

// Caso 4: UpdateQuantity y RemoveFromCart sobre un producto ausente son no-op.
func TestMutaciones_ProductoAusenteEsNoOp(t *testing.T) {
	s := newStore(t)
	s.AddToCart(producto("p1", "Café", "5.00"))

	s.UpdateQuantity("no-existe", 7)
	s.RemoveFromCart("no-existe")

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity, "el carrito no debe cambiar")
}

// Caso 5: RemoveFromCart elimina solo la línea indicada.
func TestRemoveFromCart_EliminaSoloLaLinea(t *testing.T) {
	s := newStore(t)
	s.AddToCart(producto("p1", "Café", "5.00"))
	s.AddToCart(producto("p2", "Pan", "2.00"))

	s.RemoveFromCart("p1")

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].Product.ID)
}

// Caso 6: ClearCart vacía líneas y cliente en una sola mutación.
func TestClearCart_VaciaLineasYCliente(t *testing.T) {
	s := newStore(t)
	s.AddToCart(producto("p1", "Café", "5.00"))
	s.SetCustomer("c-42")

	s.ClearCart()

	assert.Empty(t, s.Items())
	assert.Equal(t, "", s.CustomerID(), "el cliente debe quitarse junto con las líneas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregados
// ──────────────────────────────────────────────────────────────────────────────

// Subtotal = Σ precio congelado × cantidad; TotalItems = Σ cantidades.
// Escenario: 2 × $5.00 + 1 × $11.00 = $21.00, 3 artículos.
func TestSubtotalYTotalItems_EscenarioMixto(t *testing.T) {
	s := newStore(t)
	cafe := producto("p1", "Café", "5.00")
	torta := producto("p2", "Torta", "11.00")

	s.AddToCart(cafe)
	s.AddToCart(cafe)
	s.AddToCart(torta)

	assert.Equal(t, 3, s.TotalItems())
	assert.True(t, decimal.RequireFromString("21.00").Equal(s.Subtotal()),
		"subtotal esperado 21.00, obtenido %s", s.Subtotal())
	assert.True(t, s.Total().Equal(s.Subtotal()),
		"sin impuestos ni descuentos locales, total == subtotal")
}

// El precio que cuenta es el congelado al agregar, no el vigente después.
func TestSubtotal_UsaPrecioCongelado(t *testing.T) {
	s := newStore(t)
	s.AddToCart(producto("p1", "Café", "5.00"))

	// El servidor sube el precio; el carrito no se entera.
	s.AddToCart(producto("p1", "Café", "9.00"))

	items := s.Items()
	require.Len(t, items, 1)
	assert.True(t, decimal.RequireFromString("10.00").Equal(s.Subtotal()),
		"debe cobrarse 2 × 5.00 con el snapshot original")
}

// ──────────────────────────────────────────────────────────────────────────────
// Persistencia
// ──────────────────────────────────────────────────────────────────────────────

// El borrador sobrevive a un reinicio: un store nuevo sobre el mismo
// directorio de estado rehidrata líneas y cliente.
func TestPersistencia_SobreviveReinicio(t *testing.T) {
	dir := t.TempDir()
	st, err := storage.New(dir)
	require.NoError(t, err)

	s := cart.New(st, logger.Nop())
	s.AddToCart(producto("p1", "Café", "5.00"))
	s.AddToCart(producto("p1", "Café", "5.00"))
	s.SetCustomer("c-42")

	reborn := cart.New(st, logger.Nop())
	items := reborn.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "c-42", reborn.CustomerID())
	assert.True(t, decimal.RequireFromString("10.00").Equal(reborn.Subtotal()))
}

// Un snapshot corrupto no debe tumbar el arranque: se ignora y se parte vacío.
func TestPersistencia_SnapshotCorruptoArrancaVacio(t *testing.T) {
	dir := t.TempDir()
	st, err := storage.New(dir)
	require.NoError(t, err)
	require.NoError(t, st.Set(cart.SnapshotName+".json", "{esto no es json"))

	s := cart.New(st, logger.Nop())
	assert.Empty(t, s.Items(), "con snapshot ilegible el carrito arranca vacío")
}
