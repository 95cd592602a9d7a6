package cli

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/omnipos-terminal/internal/infrastructure/storage"
	pkgjwt "github.com/jhoicas/omnipos-terminal/pkg/jwt"
)

// newLoginCommand login del dueño (teléfono + PIN) y, si el comercio tiene
// cuentas de personal, selección interactiva del perfil que opera la terminal.
func newLoginCommand(app *App) *cobra.Command {
	var phone, pin, username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión contra el backend OmniPOS",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())

			if phone == "" {
				phone = prompt(cmd, reader, "Teléfono / usuario: ")
			}
			if pin == "" {
				pin = prompt(cmd, reader, "PIN (6 dígitos): ")
			}

			needsSelection, err := app.Auth.MerchantLogin(cmd.Context(), phone, pin)
			if err != nil {
				return err
			}

			if m := app.Session.Merchant(); m != nil {
				cmd.Printf("Bienvenido, %s\n", m.Name)
			}

			if !needsSelection {
				cmd.Println("Sesión iniciada como dueño.")
				return nil
			}

			// Selección de perfil: equivalente de la pantalla "¿Quién usa el
			// POS?". Enter en blanco continúa como dueño.
			roster := app.Session.AvailableUsers()
			cmd.Println("\n¿Quién usa el POS?")
			cmd.Println("  [0] Dueño (acceso total)")
			for i, u := range roster {
				cmd.Printf("  [%d] %s (%s) — %s\n", i+1, u.FullName, u.Username, u.RoleName)
			}

			if username == "" {
				choice := prompt(cmd, reader, "Perfil [0]: ")
				if choice == "" || choice == "0" {
					cmd.Println("Sesión iniciada como dueño.")
					return nil
				}
				idx := 0
				if _, err := fmt.Sscanf(choice, "%d", &idx); err != nil || idx < 1 || idx > len(roster) {
					return fmt.Errorf("perfil inválido: %s", choice)
				}
				username = roster[idx-1].Username
			}
			if password == "" {
				password = prompt(cmd, reader, "Contraseña de "+username+": ")
			}

			user, err := app.Auth.UserLogin(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			role := "sin rol"
			if user.Role != nil {
				role = user.Role.Name
			}
			cmd.Printf("Sesión iniciada como %s (%s).\n", user.FullName, role)
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "teléfono o usuario del comercio")
	cmd.Flags().StringVar(&pin, "pin", "", "PIN de 6 dígitos")
	cmd.Flags().StringVar(&username, "user", "", "empleado que opera la terminal")
	cmd.Flags().StringVar(&password, "password", "", "contraseña del empleado")
	return cmd
}

// newLogoutCommand cierra la sesión: resetea el store y limpia los tokens.
func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión y olvida los tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Auth.Logout()
			cmd.Println("Sesión cerrada.")
			return nil
		},
	}
}

// newWhoamiCommand muestra el actor actual y sus permisos efectivos.
func newWhoamiCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Muestra quién opera la terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			merchant := app.Session.Merchant()
			user := app.Session.User()

			switch {
			case user != nil:
				role := "sin rol"
				var codes []string
				if user.Role != nil {
					role = user.Role.Name
					for _, p := range user.Role.Permissions {
						codes = append(codes, p.Code)
					}
				}
				cmd.Printf("Empleado: %s (%s)\n", user.FullName, user.Username)
				cmd.Printf("Rol: %s\n", role)
				cmd.Printf("Permisos: %s\n", strings.Join(codes, ", "))
			case merchant != nil:
				cmd.Printf("Dueño: %s (%s)\n", merchant.Name, merchant.Phone)
				cmd.Println("Permisos: todos (el dueño no pasa por RBAC)")
			default:
				cmd.Println("Sin sesión. Ejecute: omnipos login")
				return nil
			}

			// Estado del access token, solo informativo: un token vencido se
			// renueva solo en la siguiente llamada.
			if app.Tokens != nil {
				if tok, ok := app.Tokens.Get(storage.KeyAccessToken); ok && tok != "" {
					if claims, err := pkgjwt.ParseUnverified(tok); err == nil && !claims.ExpiresAt().IsZero() {
						if claims.Expired(time.Now()) {
							cmd.Println("Token: vencido (se renovará con el refresh token)")
						} else {
							cmd.Printf("Token: vigente hasta %s\n", claims.ExpiresAt().Local().Format("15:04:05"))
						}
					}
				}
			}
			return nil
		},
	}
}

// prompt lee una línea de la entrada del comando.
func prompt(cmd *cobra.Command, reader *bufio.Reader, label string) string {
	cmd.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
