package checkout

import (
	"context"

	"github.com/jhoicas/omnipos-terminal/internal/application/dto"
	"github.com/jhoicas/omnipos-terminal/internal/domain/entity"
)

// API puerto hacia los endpoints de órdenes y pagos del backend.
type API interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*dto.CreatePaymentResponse, error)
}

// ReceiptGenerator puerto de generación del recibo imprimible de una venta
// completada. La implementación vive en infraestructura.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order, payment *entity.Payment, merchant *entity.Merchant) ([]byte, error)
}
