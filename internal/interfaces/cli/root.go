// Package cli expone la superficie de comandos de la terminal OmniPOS.
// Cada comando es una vista delgada: lee identidad y permisos del store de
// sesión, el borrador de venta del store de carrito y todo lo demás del
// backend vía el cliente HTTP.
package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/omnipos-terminal/internal/application/auth"
	"github.com/jhoicas/omnipos-terminal/internal/application/cart"
	"github.com/jhoicas/omnipos-terminal/internal/application/checkout"
	"github.com/jhoicas/omnipos-terminal/internal/application/session"
	"github.com/jhoicas/omnipos-terminal/internal/domain"
	"github.com/jhoicas/omnipos-terminal/internal/infrastructure/api"
	"github.com/jhoicas/omnipos-terminal/pkg/logger"
)

// Permisos que gatean cada pantalla (mismos códigos que la navegación web).
const (
	PermPOSAccess    = "pos:access"
	PermDashboard    = "dashboard:read"
	PermProductRead  = "product:read"
	PermCategoryRead = "category:read"
	PermOrderRead    = "order:read"
	PermCustomerRead = "customer:read"
	PermStoreRead    = "store:read"
	PermSettings     = "settings:read"
)

// TokenReader lectura de las llaves de token, solo para mostrar el estado de
// la sesión; el manejo real de tokens vive en el cliente HTTP.
type TokenReader interface {
	Get(key string) (string, bool)
}

// App dependencias compartidas por todos los comandos.
type App struct {
	Client   *api.Client
	Session  *session.Store
	Cart     *cart.Store
	Auth     *auth.UseCase
	Checkout *checkout.UseCase
	Receipts checkout.ReceiptGenerator
	Tokens   TokenReader
	Log      *logger.Logger

	printer *message.Printer
}

// NewRootCommand arma el árbol de comandos.
func NewRootCommand(app *App) *cobra.Command {
	app.printer = message.NewPrinter(language.English)

	root := &cobra.Command{
		Use:           "omnipos",
		Short:         "Terminal de punto de venta y administración OmniPOS",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCommand(app),
		newLogoutCommand(app),
		newWhoamiCommand(app),
		newPOSCommand(app),
		newStatsCommand(app),
		newProductsCommand(app),
		newCategoriesCommand(app),
		newOrdersCommand(app),
		newCustomersCommand(app),
		newStoresCommand(app),
		newUsersCommand(app),
		newRolesCommand(app),
	)
	return root
}

// money formatea un monto para la salida de la terminal ($1,234.50).
// Solo presentación: los cálculos siguen siendo decimales exactos.
func (a *App) money(d decimal.Decimal) string {
	f, _ := d.Float64()
	return a.printer.Sprintf("$%.2f", f)
}

// errValidation error de validación local: nunca llega al servidor.
func errValidation(msg string) error {
	return fmt.Errorf("%s: %w", msg, domain.ErrInvalidInput)
}

// requirePermission corta el comando si el actor actual no tiene el permiso.
// El dueño operando sin empleado seleccionado pasa siempre.
func (a *App) requirePermission(code string) error {
	if !a.Session.HasPermission(code) {
		return fmt.Errorf("acceso denegado: se requiere el permiso %q", code)
	}
	return nil
}
