package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RevenueTrend struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

type CategoryPerformance struct {
	CategoryName string          `json:"categoryName"`
	Sales        decimal.Decimal `json:"sales"`
}

type OrderStatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type TopProduct struct {
	Name  string `json:"name"`
	Sales int    `json:"sales"`
}

type CustomerSegment struct {
	Month        string `json:"month"`
	NewCustomers int    `json:"newCustomers"`
	Returning    int    `json:"returning"`
}

type SalesByDay struct {
	Day          string          `json:"day"`
	Sales        decimal.Decimal `json:"sales"`
	Transactions int             `json:"transactions"`
}

type InventoryStatus struct {
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	Threshold int    `json:"threshold"`
}

type DashboardSummary struct {
	TotalClients  int64           `json:"totalClients"`
	TotalProducts int64           `json:"totalProducts"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalSales    int64           `json:"totalSales"`
}

type MonthlyRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

type RecentOrder struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
	Status    string          `json:"status"`
}

type InventoryAlert struct {
	ProductID    uuid.UUID       `json:"productId"`
	ProductName  string          `json:"productName"`
	CategoryName string          `json:"categoryName"`
	CurrentStock int             `json:"currentStock"`
	LowStock     bool            `json:"lowStock"`
	Archived     bool            `json:"archived"`
	ProductPrice decimal.Decimal `json:"productPrice"`
}

type CategorySales struct {
	CategoryID   uuid.UUID       `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	TotalOrders  int64           `json:"totalOrders"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}
