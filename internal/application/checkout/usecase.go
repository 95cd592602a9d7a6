// Package checkout implementa la transacción de venta de la terminal: crear
// la orden desde el snapshot del carrito, registrar el pago con el total que
// calculó el servidor y vaciar el carrito solo tras la confirmación.
package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/omnipos-terminal/internal/application/cart"
	"github.com/jhoicas/omnipos-terminal/internal/application/dto"
	"github.com/jhoicas/omnipos-terminal/internal/application/session"
	"github.com/jhoicas/omnipos-terminal/internal/domain"
	"github.com/jhoicas/omnipos-terminal/internal/domain/entity"
	"github.com/jhoicas/omnipos-terminal/pkg/logger"
)

// paymentProvider etiqueta del proveedor para pagos registrados desde la
// terminal (sin pasarela externa).
const paymentProvider = "SYSTEM_POS"

// Result venta completada: la orden con montos del servidor y su pago.
type Result struct {
	Order   *entity.Order
	Payment *entity.Payment
}

// UseCase flujo de checkout.
type UseCase struct {
	api     API
	cart    *cart.Store
	session *session.Store
	log     *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(api API, cartStore *cart.Store, sess *session.Store, log *logger.Logger) *UseCase {
	return &UseCase{api: api, cart: cartStore, session: sess, log: log}
}

// Checkout ejecuta la venta en dos pasos secuenciales: la creación del pago
// espera la respuesta de la orden porque usa el total calculado por el
// servidor, no el subtotal local. Si cualquiera de los dos pasos falla el
// carrito queda intacto (sin actualizaciones optimistas); solo el éxito
// completo lo vacía.
func (uc *UseCase) Checkout(ctx context.Context, method entity.PaymentMethod) (*Result, error) {
	items := uc.cart.Items()
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	orderReq := dto.CreateOrderRequest{
		CustomerID:    uc.cart.CustomerID(),
		PaymentMethod: method,
		PaidAmount:    uc.cart.Total(),
		Items:         make([]dto.CreateOrderItemInput, 0, len(items)),
	}
	if u := uc.session.User(); u != nil {
		orderReq.CashierID = u.ID
	}
	for _, it := range items {
		orderReq.Items = append(orderReq.Items, dto.CreateOrderItemInput{
			ProductID: it.Product.ID,
			Quantity:  it.Quantity,
			UnitPrice: it.Product.BasePrice, // precio congelado al agregar
		})
	}

	orderResp, err := uc.api.CreateOrder(ctx, orderReq)
	if err != nil {
		return nil, fmt.Errorf("checkout: crear orden: %w", err)
	}
	order := orderResp.Order

	paymentResp, err := uc.api.CreatePayment(ctx, dto.CreatePaymentRequest{
		OrderID:         order.ID,
		Amount:          order.TotalAmount,
		PaymentMethod:   method,
		Provider:        paymentProvider,
		ReferenceNumber: "REF-" + uuid.NewString(),
	})
	if err != nil {
		// La orden existe en el servidor pero el pago no quedó registrado;
		// el carrito se conserva para que el cajero pueda reintentar o
		// resolver en caja.
		return nil, fmt.Errorf("checkout: registrar pago de la orden %s: %w", order.OrderNumber, err)
	}

	uc.cart.ClearCart()
	uc.log.Info().
		Str("order", order.OrderNumber).
		Str("total", order.TotalAmount.StringFixed(2)).
		Str("metodo", method.String()).
		Msg("venta completada")

	return &Result{Order: &order, Payment: &paymentResp.Payment}, nil
}
