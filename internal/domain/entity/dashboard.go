package entity

import "github.com/shopspring/decimal"

// SalesPoint punto de la serie de ventas del dashboard (un día).
type SalesPoint struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// TopProduct producto más vendido en el período del dashboard.
type TopProduct struct {
	ProductName string          `json:"productName"`
	SalesCount  int             `json:"salesCount"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// DashboardStats métricas agregadas de ventas que expone /v1/dashboard/stats.
// El backend serializa este recurso en camelCase (gateway gRPC), a diferencia
// del resto de la API.
type DashboardStats struct {
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	TotalOrders        int             `json:"totalOrders"`
	TotalItemsSold     int             `json:"totalItemsSold"`
	SalesChart         []SalesPoint    `json:"salesChart"`
	TopProducts        []TopProduct    `json:"topProducts"`
	RecentTransactions []Order         `json:"recentTransactions"`
}
