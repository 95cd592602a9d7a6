package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/omnipos-terminal/internal/application/dto"
)

// ── Usuarios (RBAC) ───────────────────────────────────────────────────────────

// ListUsers devuelve una página de empleados.
func (c *Client) ListUsers(ctx context.Context, params dto.ListParams) (*dto.ListUsersResponse, error) {
	path := "/v1/users"
	if q := params.Query(); q != "" {
		path += "?" + q
	}
	var out dto.ListUsersResponse
	if err := c.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser da de alta a un empleado.
func (c *Client) CreateUser(ctx context.Context, req dto.CreateUserRequest) error {
	return c.Do(ctx, http.MethodPost, "/v1/users", req, nil)
}

// UpdateUser edita a un empleado existente.
func (c *Client) UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) error {
	return c.Do(ctx, http.MethodPut, "/v1/users/"+id, req, nil)
}

// DeleteUser elimina a un empleado.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, "/v1/users/"+id, nil, nil)
}

// ── Roles y permisos ──────────────────────────────────────────────────────────

// ListRoles devuelve los roles del comercio.
func (c *Client) ListRoles(ctx context.Context, params dto.ListParams) (*dto.ListRolesResponse, error) {
	path := "/v1/roles"
	if q := params.Query(); q != "" {
		path += "?" + q
	}
	var out dto.ListRolesResponse
	if err := c.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRole crea un rol con su conjunto de permisos.
func (c *Client) CreateRole(ctx context.Context, req dto.CreateRoleRequest) error {
	return c.Do(ctx, http.MethodPost, "/v1/roles", req, nil)
}

// ListPermissions devuelve el catálogo completo de permisos asignables.
func (c *Client) ListPermissions(ctx context.Context) (*dto.ListPermissionsResponse, error) {
	var out dto.ListPermissionsResponse
	if err := c.Do(ctx, http.MethodGet, "/v1/permissions", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
