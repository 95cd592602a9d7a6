package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/omnipos-terminal/internal/application/dto"
	"github.com/jhoicas/omnipos-terminal/internal/domain/entity"
)

// newPOSCommand terminal interactiva de punto de venta: catálogo a la
// izquierda, carrito a la derecha — aquí, un bucle de comandos sobre los dos
// stores y el checkout.
func newPOSCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pos",
		Short: "Abre la terminal interactiva de punto de venta",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePermission(PermPOSAccess); err != nil {
				return err
			}
			return runPOSLoop(app, cmd)
		},
	}
}

// posState catálogo cacheado para la sesión de venta. El carrito congela su
// propio snapshot de producto al agregar; este caché es solo para resolver
// SKUs y filtrar.
type posState struct {
	products   []entity.Product
	categories []entity.Category
}

func runPOSLoop(app *App, cmd *cobra.Command) error {
	ctx := cmd.Context()

	prodResp, err := app.Client.ListProducts(ctx, dto.ListParams{Page: 1, PageSize: 100})
	if err != nil {
		return fmt.Errorf("cargar catálogo: %w", err)
	}
	catResp, err := app.Client.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("cargar categorías: %w", err)
	}
	state := &posState{products: prodResp.Products, categories: catResp.Categories}

	cmd.Println(styleHeader.Render("Terminal POS — escriba 'help' para ver los comandos"))
	printCart(app, cmd)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Print("pos> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		verb, rest := fields[0], fields[1:]

		switch verb {
		case "help":
			printPOSHelp(cmd)

		case "list":
			printProducts(app, cmd, state, strings.Join(rest, " "))

		case "add":
			if len(rest) != 1 {
				cmd.Println(styleError.Render("uso: add <sku>"))
				continue
			}
			p, ok := state.find(rest[0])
			if !ok {
				cmd.Println(styleError.Render("producto no encontrado: " + rest[0]))
				continue
			}
			app.Cart.AddToCart(p)
			printCart(app, cmd)

		case "qty":
			if len(rest) != 2 {
				cmd.Println(styleError.Render("uso: qty <sku> <cantidad>"))
				continue
			}
			p, ok := state.find(rest[0])
			if !ok {
				cmd.Println(styleError.Render("producto no encontrado: " + rest[0]))
				continue
			}
			n, err := strconv.Atoi(rest[1])
			if err != nil {
				cmd.Println(styleError.Render("cantidad inválida: " + rest[1]))
				continue
			}
			app.Cart.UpdateQuantity(p.ID, n)
			printCart(app, cmd)

		case "rm":
			if len(rest) != 1 {
				cmd.Println(styleError.Render("uso: rm <sku>"))
				continue
			}
			if p, ok := state.find(rest[0]); ok {
				app.Cart.RemoveFromCart(p.ID)
			}
			printCart(app, cmd)

		case "customer":
			if len(rest) == 0 {
				app.Cart.SetCustomer("")
				cmd.Println("Cliente quitado de la venta.")
				continue
			}
			selectCustomer(app, cmd, scanner, strings.Join(rest, " "))

		case "cart":
			printCart(app, cmd)

		case "clear":
			app.Cart.ClearCart()
			printCart(app, cmd)

		case "checkout":
			method := entity.PaymentMethodCash
			if len(rest) > 0 {
				m, ok := parsePaymentMethod(rest[0])
				if !ok {
					cmd.Println(styleError.Render("método de pago inválido: " + rest[0] +
						" (cash, qris, debit, credit)"))
					continue
				}
				method = m
			}
			doCheckout(app, cmd, method)

		case "quit", "exit":
			return nil

		default:
			cmd.Println(styleError.Render("comando desconocido: " + verb + " — escriba 'help'"))
		}
	}
}

func printPOSHelp(cmd *cobra.Command) {
	cmd.Println(`Comandos:
  list [texto]          catálogo, filtrado por nombre/SKU
  add <sku>             agrega una unidad al carrito
  qty <sku> <n>         fija la cantidad de una línea (0 la deja visible)
  rm <sku>              quita la línea del carrito
  customer <texto>      busca y asocia un cliente a la venta
  customer              quita el cliente de la venta
  cart                  muestra el carrito
  clear                 vacía el carrito
  checkout [método]     cobra la venta (cash, qris, debit, credit)
  quit                  sale de la terminal`)
}

// find resuelve un producto por SKU, código de barras o id exacto.
func (s *posState) find(key string) (entity.Product, bool) {
	for _, p := range s.products {
		if strings.EqualFold(p.SKU, key) || (p.Barcode != "" && p.Barcode == key) || p.ID == key {
			return p, true
		}
	}
	return entity.Product{}, false
}

func printProducts(app *App, cmd *cobra.Command, state *posState, filter string) {
	catNames := make(map[string]string, len(state.categories))
	for _, c := range state.categories {
		catNames[c.ID] = c.Name
	}

	lower := strings.ToLower(filter)
	rows := make([][]string, 0, len(state.products))
	for _, p := range state.products {
		if lower != "" &&
			!strings.Contains(strings.ToLower(p.Name), lower) &&
			!strings.Contains(strings.ToLower(p.SKU), lower) &&
			!strings.Contains(strings.ToLower(catNames[p.CategoryID]), lower) {
			continue
		}
		rows = append(rows, []string{p.SKU, p.Name, catNames[p.CategoryID], app.money(p.BasePrice)})
	}
	cmd.Print(renderTable([]string{"SKU", "Nombre", "Categoría", "Precio"}, []int{14, 30, 16, 12}, rows))
}

// printCart renderiza el borrador de venta. Las líneas en cero se muestran
// igual que las demás: solo 'rm' las quita.
func printCart(app *App, cmd *cobra.Command) {
	items := app.Cart.Items()
	if len(items) == 0 {
		cmd.Println(styleMuted.Render("(carrito vacío)"))
		return
	}

	var b strings.Builder
	for _, it := range items {
		lineTotal := it.Product.BasePrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		b.WriteString(fmt.Sprintf("%2d × %s %12s\n", it.Quantity, pad(it.Product.Name, 30), app.money(lineTotal)))
	}
	b.WriteString(styleMuted.Render(fmt.Sprintf("%d artículos", app.Cart.TotalItems())))
	b.WriteByte('\n')
	b.WriteString(styleTotal.Render("TOTAL  " + app.money(app.Cart.Total())))
	if id := app.Cart.CustomerID(); id != "" {
		b.WriteByte('\n')
		b.WriteString(styleMuted.Render("cliente: " + id))
	}
	cmd.Println(styleBox.Render(b.String()))
}

// selectCustomer busca clientes (primeros 5, igual que el buscador del POS) y
// deja elegir uno para la venta.
func selectCustomer(app *App, cmd *cobra.Command, scanner *bufio.Scanner, query string) {
	resp, err := app.Client.ListCustomers(cmd.Context(), dto.ListParams{Page: 1, PageSize: 5, Search: query})
	if err != nil {
		cmd.Println(styleError.Render("buscar clientes: " + err.Error()))
		return
	}
	if len(resp.Customers) == 0 {
		cmd.Println(styleMuted.Render("sin resultados para: " + query))
		return
	}
	for i, c := range resp.Customers {
		cmd.Printf("  [%d] %s (%s)\n", i+1, c.Name, c.Phone)
	}
	cmd.Print("Cliente [1]: ")
	if !scanner.Scan() {
		return
	}
	choice := strings.TrimSpace(scanner.Text())
	idx := 1
	if choice != "" {
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(resp.Customers) {
			cmd.Println(styleError.Render("selección inválida"))
			return
		}
		idx = n
	}
	c := resp.Customers[idx-1]
	app.Cart.SetCustomer(c.ID)
	cmd.Printf("Cliente %s asociado a la venta.\n", c.Name)
}

// doCheckout ejecuta la venta y deja el recibo PDF junto al directorio de
// trabajo. Un fallo deja el carrito intacto para reintentar.
func doCheckout(app *App, cmd *cobra.Command, method entity.PaymentMethod) {
	result, err := app.Checkout.Checkout(cmd.Context(), method)
	if err != nil {
		cmd.Println(styleError.Render("checkout: " + err.Error()))
		return
	}

	order := result.Order
	cmd.Println(styleTotal.Render(fmt.Sprintf(
		"Venta %s completada — total %s (%s)",
		order.OrderNumber, app.money(order.TotalAmount), method.String(),
	)))

	if app.Receipts == nil {
		return
	}
	pdfBytes, err := app.Receipts.GenerateReceiptPDF(cmd.Context(), order, result.Payment, app.Session.Merchant())
	if err != nil {
		app.Log.Error().Err(err).Msg("generar recibo PDF")
		return
	}
	name := "recibo-" + order.OrderNumber + ".pdf"
	if err := os.WriteFile(name, pdfBytes, 0o644); err != nil {
		app.Log.Error().Err(err).Str("archivo", name).Msg("guardar recibo PDF")
		return
	}
	cmd.Println(styleMuted.Render("recibo guardado en " + name))
}

func parsePaymentMethod(s string) (entity.PaymentMethod, bool) {
	switch strings.ToLower(s) {
	case "cash", "efectivo":
		return entity.PaymentMethodCash, true
	case "qris", "qr":
		return entity.PaymentMethodQRIS, true
	case "debit", "debito":
		return entity.PaymentMethodDebit, true
	case "credit", "credito":
		return entity.PaymentMethodCredit, true
	default:
		return entity.PaymentMethodUnspecified, false
	}
}
