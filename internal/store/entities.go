package store

import (
	"strings"
	"time"

	"github.com/NotAnsar/orava-api/internal/auth"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "NEW"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCanceled   OrderStatus = "CANCELED"
)

// ParseOrderStatus is lenient: unknown names report false instead of erroring
// so malformed filter values can be treated as absent.
func ParseOrderStatus(value string) (OrderStatus, bool) {
	switch OrderStatus(strings.ToUpper(strings.TrimSpace(value))) {
	case OrderStatusNew:
		return OrderStatusNew, true
	case OrderStatusProcessing:
		return OrderStatusProcessing, true
	case OrderStatusCompleted:
		return OrderStatusCompleted, true
	case OrderStatusCanceled:
		return OrderStatusCanceled, true
	default:
		return "", false
	}
}

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

func ParseTaskStatus(value string) (TaskStatus, bool) {
	switch TaskStatus(strings.ToUpper(strings.TrimSpace(value))) {
	case TaskStatusTodo:
		return TaskStatusTodo, true
	case TaskStatusInProgress:
		return TaskStatusInProgress, true
	case TaskStatusDone:
		return TaskStatusDone, true
	default:
		return "", false
	}
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

func ParseTaskPriority(value string) (TaskPriority, bool) {
	switch TaskPriority(strings.ToUpper(strings.TrimSpace(value))) {
	case TaskPriorityLow:
		return TaskPriorityLow, true
	case TaskPriorityMedium:
		return TaskPriorityMedium, true
	case TaskPriorityHigh:
		return TaskPriorityHigh, true
	default:
		return "", false
	}
}

type User struct {
	ID           uuid.UUID     `json:"id"`
	FirstName    string        `json:"firstName"`
	LastName     string        `json:"lastName"`
	Email        string        `json:"email"`
	Role         auth.UserRole `json:"role"`
	CreatedAt    time.Time     `json:"createdAt"`
	PasswordHash string        `json:"-"`
}

func (u User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type Color struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Value     *string   `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

type Size struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	FullName  *string   `json:"fullname"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProductImage struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"productId"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Key          string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Archived    bool            `json:"archived"`
	Featured    bool            `json:"featured"`
	Category    *Category       `json:"category"`
	Color       *Color          `json:"color"`
	Size        *Size           `json:"size"`
	Images      []ProductImage  `json:"images"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type OrderItem struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.UUID       `json:"productId"`
	ProductName  string          `json:"productName"`
	CategoryID   uuid.UUID       `json:"-"`
	CategoryName string          `json:"-"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
}

// Subtotal is always derived from the price snapshot, never stored.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	UserName      string          `json:"userName"`
	UserFirstName string          `json:"-"`
	UserLastName  string          `json:"-"`
	UserEmail     string          `json:"userEmail"`
	Total         decimal.Decimal `json:"total"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	Items         []OrderItem     `json:"items"`
}

type Task struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type PasswordResetToken struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Token      string
	ExpiryDate time.Time
	Used       bool
}

func (t PasswordResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiryDate)
}
