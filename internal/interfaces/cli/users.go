package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/omnipos-terminal/internal/application/dto"
)

// newUsersCommand administración del personal (pantalla "People").
func newUsersCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Lista y administra a los empleados del comercio",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePermission(PermSettings); err != nil {
				return err
			}
			resp, err := app.Client.ListUsers(cmd.Context(), dto.ListParams{Page: 1, PageSize: 100})
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(resp.Users))
			for _, u := range resp.Users {
				role := ""
				if u.Role != nil {
					role = u.Role.Name
				}
				rows = append(rows, []string{u.Username, u.FullName, role, u.Status})
			}
			cmd.Print(renderTable(
				[]string{"Usuario", "Nombre", "Rol", "Estado"},
				[]int{16, 28, 16, 9},
				rows,
			))
			return nil
		},
	}

	var newUser dto.CreateUserRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Da de alta a un empleado",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePermission(PermSettings); err != nil {
				return err
			}
			if newUser.Username == "" || newUser.FullName == "" || newUser.RoleID == "" {
				return errValidation("usuario, nombre y rol son obligatorios")
			}
			if err := app.Client.CreateUser(cmd.Context(), newUser); err != nil {
				return err
			}
			cmd.Printf("Empleado %s creado.\n", newUser.Username)
			return nil
		},
	}
	add.Flags().StringVar(&newUser.Username, "username", "", "nombre de usuario")
	add.Flags().StringVar(&newUser.FullName, "name", "", "nombre completo")
	add.Flags().StringVar(&newUser.Email, "email", "", "email")
	add.Flags().StringVar(&newUser.RoleID, "role", "", "id del rol asignado")
	add.Flags().StringVar(&newUser.Password, "password", "", "contraseña inicial")
	cmd.AddCommand(add)

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Elimina a un empleado",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePermission(PermSettings); err != nil {
				return err
			}
			if err := app.Client.DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println("Empleado eliminado.")
			return nil
		},
	}
	cmd.AddCommand(rm)

	return cmd
}

// newRolesCommand roles y catálogo de permisos.
func newRolesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Lista los roles y sus permisos",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePermission(PermSettings); err != nil {
				return err
			}
			resp, err := app.Client.ListRoles(cmd.Context(), dto.ListParams{Page: 1, PageSize: 100})
			if err != nil {
				return err
			}

			for _, r := range resp.Roles {
				codes := make([]string, 0, len(r.Permissions))
				for _, p := range r.Permissions {
					codes = append(codes, p.Code)
				}
				cmd.Println(styleHeader.Render(r.Name) + "  " + styleMuted.Render(r.Description))
				cmd.Println("  " + strings.Join(codes, ", "))
			}
			return nil
		},
	}

	perms := &cobra.Command{
		Use:   "permissions",
		Short: "Muestra el catálogo de permisos asignables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePermission(PermSettings); err != nil {
				return err
			}
			resp, err := app.Client.ListPermissions(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(resp.Permissions))
			for _, p := range resp.Permissions {
				rows = append(rows, []string{p.Code, p.Module, p.Name})
			}
			cmd.Print(renderTable(
				[]string{"Código", "Módulo", "Nombre"},
				[]int{20, 12, 34},
				rows,
			))
			return nil
		},
	}
	cmd.AddCommand(perms)

	var newRole dto.CreateRoleRequest
	var permCodes string
	add := &cobra.Command{
		Use:   "add",
		Short: "Crea un rol con un conjunto de permisos",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requirePermission(PermSettings); err != nil {
				return err
			}
			if newRole.Name == "" {
				return errValidation("el nombre del rol es obligatorio")
			}
			if permCodes != "" {
				newRole.PermissionIDs = strings.Split(permCodes, ",")
			}
			if err := app.Client.CreateRole(cmd.Context(), newRole); err != nil {
				return err
			}
			cmd.Printf("Rol %s creado.\n", newRole.Name)
			return nil
		},
	}
	add.Flags().StringVar(&newRole.Name, "name", "", "nombre del rol")
	add.Flags().StringVar(&newRole.Description, "description", "", "descripción")
	add.Flags().StringVar(&permCodes, "permissions", "", "ids de permisos separados por coma")
	cmd.AddCommand(add)

	return cmd
}
