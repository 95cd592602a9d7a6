package entity

// Permission código de permiso RBAC. Code es opaco para el cliente: solo se
// compara por igualdad (ej. "pos:access", "product:read").
type Permission struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Module      string `json:"module,omitempty"`
}

// Role conjunto nombrado de permisos asignable a usuarios del personal.
type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	MerchantID  string       `json:"merchant_id,omitempty"`
	IsSystem    bool         `json:"is_system"`
	Permissions []Permission `json:"permissions"`
}

// HasPermission indica si el rol contiene el código de permiso dado.
func (r *Role) HasPermission(code string) bool {
	if r == nil {
		return false
	}
	for _, p := range r.Permissions {
		if p.Code == code {
			return true
		}
	}
	return false
}

// User empleado del comercio con exactamente un rol asignado.
type User struct {
	ID         string `json:"id"`
	MerchantID string `json:"merchant_id,omitempty"`
	Username   string `json:"username"`
	Email      string `json:"email,omitempty"`
	FullName   string `json:"full_name"`
	RoleID     string `json:"role_id,omitempty"`
	Status     string `json:"status,omitempty"`
	Role       *Role  `json:"role,omitempty"`
}

// UserSummary resumen de empleado para la pantalla de selección de perfil
// después del login del dueño.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	RoleName string `json:"role_name"`
}
