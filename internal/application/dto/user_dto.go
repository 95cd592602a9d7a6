package dto

import "github.com/jhoicas/omnipos-terminal/internal/domain/entity"

// ── Usuarios (RBAC) ───────────────────────────────────────────────────────────

// CreateUserRequest alta directa de un empleado con rol asignado.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	RoleID   string `json:"role_id"`
	Password string `json:"password,omitempty"`
}

// UpdateUserRequest edición parcial de un empleado.
type UpdateUserRequest struct {
	FullName string `json:"full_name,omitempty"`
	RoleID   string `json:"role_id,omitempty"`
	Status   string `json:"status,omitempty"`
	Password string `json:"password,omitempty"`
}

// ListUsersResponse página de empleados.
type ListUsersResponse struct {
	Users []entity.User `json:"users"`
	Total int           `json:"total"`
}

// ── Roles y permisos ──────────────────────────────────────────────────────────

// CreateRoleRequest alta de rol con su conjunto de permisos.
type CreateRoleRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PermissionIDs []string `json:"permission_ids"`
}

// ListRolesResponse página de roles.
type ListRolesResponse struct {
	Roles []entity.Role `json:"roles"`
	Total int           `json:"total"`
}

// ListPermissionsResponse catálogo completo de permisos.
type ListPermissionsResponse struct {
	Permissions []entity.Permission `json:"permissions"`
}
