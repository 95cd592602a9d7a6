package entity

// Merchant identidad del dueño del negocio (tenant). Cuando el actor actual
// es el dueño, todas las verificaciones de permisos pasan sin consultar rol.
type Merchant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
