package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/omnipos-terminal/internal/application/dto"
)

// newProductsCommand listado del catálogo de productos.
func newProductsCommand(app *App) *cobra.Command {
	var params dto.ListParams

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Lista el catálogo de productos",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePermission(PermProductRead); err != nil {
				return err
			}
			params.DefaultPage()
			resp, err := app.Client.ListProducts(cmd.Context(), params)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(resp.Products))
			for _, p := range resp.Products {
				estado := "activo"
				if !p.IsActive {
					estado = "inactivo"
				}
				rows = append(rows, []string{p.SKU, p.Name, app.money(p.BasePrice), estado})
			}
			cmd.Print(renderTable(
				[]string{"SKU", "Nombre", "Precio", "Estado"},
				[]int{14, 34, 12, 9},
				rows,
			))
			cmd.Println(styleMuted.Render(
				"página " + strconv.Itoa(params.Page) + " — " + strconv.Itoa(resp.Total) + " productos en total"))
			return nil
		},
	}

	cmd.Flags().IntVar(&params.Page, "page", 1, "número de página")
	cmd.Flags().IntVar(&params.PageSize, "page-size", 20, "tamaño de página")
	cmd.Flags().StringVar(&params.Search, "search", "", "búsqueda libre por nombre o SKU")
	return cmd
}

// newCategoriesCommand listado de categorías.
func newCategoriesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Lista las categorías del catálogo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePermission(PermCategoryRead); err != nil {
				return err
			}
			resp, err := app.Client.ListCategories(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(resp.Categories))
			for _, c := range resp.Categories {
				estado := "activa"
				if !c.IsActive {
					estado = "inactiva"
				}
				rows = append(rows, []string{c.Name, c.Description, estado})
			}
			cmd.Print(renderTable(
				[]string{"Nombre", "Descripción", "Estado"},
				[]int{24, 40, 9},
				rows,
			))
			return nil
		},
	}
}
