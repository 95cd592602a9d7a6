package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/omnipos-terminal/internal/application/dto"
)

// newOrdersCommand historial de órdenes.
func newOrdersCommand(app *App) *cobra.Command {
	var params dto.ListParams

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Lista el historial de órdenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePermission(PermOrderRead); err != nil {
				return err
			}
			params.DefaultPage()
			resp, err := app.Client.ListOrders(cmd.Context(), params)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(resp.Orders))
			for _, o := range resp.Orders {
				rows = append(rows, []string{
					o.OrderNumber,
					o.CreatedAt.Format("02/01/2006 15:04"),
					o.PaymentMethod.String(),
					strconv.Itoa(len(o.Items)),
					app.money(o.TotalAmount),
				})
			}
			cmd.Print(renderTable(
				[]string{"Orden", "Fecha", "Pago", "Líneas", "Total"},
				[]int{16, 17, 8, 6, 12},
				rows,
			))
			cmd.Println(styleMuted.Render(strconv.Itoa(resp.Total) + " órdenes en total"))
			return nil
		},
	}

	cmd.Flags().IntVar(&params.Page, "page", 1, "número de página")
	cmd.Flags().IntVar(&params.PageSize, "page-size", 10, "tamaño de página")
	return cmd
}

// newCustomersCommand listado y alta de clientes.
func newCustomersCommand(app *App) *cobra.Command {
	var params dto.ListParams

	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Lista los clientes del comercio",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePermission(PermCustomerRead); err != nil {
				return err
			}
			params.DefaultPage()
			resp, err := app.Client.ListCustomers(cmd.Context(), params)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(resp.Customers))
			for _, c := range resp.Customers {
				rows = append(rows, []string{
					c.Name, c.Phone, c.Email, strconv.Itoa(c.LoyaltyPoints),
				})
			}
			cmd.Print(renderTable(
				[]string{"Nombre", "Teléfono", "Email", "Puntos"},
				[]int{26, 14, 26, 6},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&params.Page, "page", 1, "número de página")
	cmd.Flags().IntVar(&params.PageSize, "page-size", 10, "tamaño de página")
	cmd.Flags().StringVar(&params.Search, "search", "", "búsqueda libre por nombre o teléfono")

	var newCustomer dto.CreateCustomerRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Da de alta un cliente",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePermission(PermCustomerRead); err != nil {
				return err
			}
			if newCustomer.Name == "" || newCustomer.Phone == "" {
				return errValidation("nombre y teléfono son obligatorios")
			}
			resp, err := app.Client.CreateCustomer(cmd.Context(), newCustomer)
			if err != nil {
				return err
			}
			cmd.Printf("Cliente creado: %s\n", resp.ID)
			return nil
		},
	}
	add.Flags().StringVar(&newCustomer.Name, "name", "", "nombre del cliente")
	add.Flags().StringVar(&newCustomer.Phone, "phone", "", "teléfono")
	add.Flags().StringVar(&newCustomer.Email, "email", "", "email (opcional)")
	add.Flags().StringVar(&newCustomer.Address, "address", "", "dirección (opcional)")
	cmd.AddCommand(add)

	return cmd
}

// newStoresCommand sucursales del comercio.
func newStoresCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stores",
		Short: "Lista las sucursales del comercio",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePermission(PermStoreRead); err != nil {
				return err
			}
			resp, err := app.Client.ListStores(cmd.Context(), dto.ListParams{Page: 1, PageSize: 100})
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(resp.Stores))
			for _, s := range resp.Stores {
				rows = append(rows, []string{s.Name, s.Address, s.Phone})
			}
			cmd.Print(renderTable(
				[]string{"Nombre", "Dirección", "Teléfono"},
				[]int{24, 36, 14},
				rows,
			))
			return nil
		},
	}
}

// newStatsCommand métricas agregadas del dashboard.
func newStatsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Muestra las métricas de ventas del dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePermission(PermDashboard); err != nil {
				return err
			}
			stats, err := app.Client.DashboardStats(cmd.Context())
			if err != nil {
				return err
			}

			cmd.Println(styleHeader.Render("Resumen de ventas"))
			cmd.Printf("  Ingresos:        %s\n", app.money(stats.TotalRevenue))
			cmd.Printf("  Órdenes:         %d\n", stats.TotalOrders)
			cmd.Printf("  Artículos:       %d\n", stats.TotalItemsSold)

			if len(stats.TopProducts) > 0 {
				cmd.Println(styleHeader.Render("\nProductos más vendidos"))
				for _, p := range stats.TopProducts {
					cmd.Printf("  %-30s %4d uds  %s\n", p.ProductName, p.SalesCount, app.money(p.Revenue))
				}
			}
			if len(stats.SalesChart) > 0 {
				cmd.Println(styleHeader.Render("\nVentas por día"))
				for _, s := range stats.SalesChart {
					cmd.Printf("  %-12s %s\n", s.Date, app.money(s.Total))
				}
			}
			return nil
		},
	}
}
