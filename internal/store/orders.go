package store

import (
	"context"
	"time"

	"github.com/NotAnsar/orava-api/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const orderColumns = `o.id, o.user_id, u.f_name, u.l_name, u.email, o.total, o.status, o.created_at`

const orderJoins = ` from orders o join "user" u on u.id = o.user_id`

func scanOrder(row pgx.Row) (Order, error) {
	var (
		o         Order
		id        pgtype.UUID
		userID    pgtype.UUID
		firstName pgtype.Text
		lastName  pgtype.Text
		total     pgtype.Numeric
		status    pgtype.Text
	)
	err := row.Scan(&id, &userID, &firstName, &lastName, &o.UserEmail, &total, &status, &o.CreatedAt)
	if err != nil {
		return Order{}, err
	}
	o.ID = uuidFrom(id)
	o.UserID = uuidFrom(userID)
	o.UserFirstName = textOr(firstName, "")
	o.UserLastName = textOr(lastName, "")
	o.UserName = User{FirstName: o.UserFirstName, LastName: o.UserLastName}.DisplayName()
	o.Total = utils.NumericToDecimal(total)
	if parsed, ok := ParseOrderStatus(textOr(status, "")); ok {
		o.Status = parsed
	}
	return o, nil
}

func (s *Store) queryOrders(ctx context.Context, where string, args ...any) ([]Order, error) {
	query := `select ` + orderColumns + orderJoins
	if where != "" {
		query += ` where ` + where
	}
	query += ` order by o.created_at desc`

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := s.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) Orders(ctx context.Context) ([]Order, error) {
	return s.queryOrders(ctx, "")
}

// OrdersCreatedAfter returns orders whose createdAt is at or after the
// given instant, so a boundary-timestamp order lands in its bucket.
func (s *Store) OrdersCreatedAfter(ctx context.Context, after time.Time) ([]Order, error) {
	return s.queryOrders(ctx, `o.created_at >= $1`, after)
}

func (s *Store) OrdersByUser(ctx context.Context, userID uuid.UUID) ([]Order, error) {
	return s.queryOrders(ctx, `o.user_id = $1`, pgUUID(userID))
}

func (s *Store) OrderByID(ctx context.Context, id uuid.UUID) (Order, error) {
	o, err := scanOrder(s.DB.QueryRow(ctx,
		`select `+orderColumns+orderJoins+` where o.id = $1`, pgUUID(id)))
	if err != nil {
		return Order{}, err
	}
	orders := []Order{o}
	if err := s.attachItems(ctx, orders); err != nil {
		return Order{}, err
	}
	return orders[0], nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error {
	return expectOneRow(s.DB.Exec(ctx, `update orders set status = $2 where id = $1`,
		pgUUID(id), string(status)))
}

func (s *Store) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if _, err := s.DB.Exec(ctx, `delete from order_items where order_id = $1`, pgUUID(id)); err != nil {
		return err
	}
	return expectOneRow(s.DB.Exec(ctx, `delete from orders where id = $1`, pgUUID(id)))
}

func (s *Store) attachItems(ctx context.Context, orders []Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	rows, err := s.DB.Query(ctx,
		`select oi.id, oi.order_id, oi.product_id, p.name, p.category_id, c.name, oi.quantity, oi.unit_price
		 from order_items oi
		 join product p on p.id = oi.product_id
		 left join category c on c.id = p.category_id
		 where oi.order_id = any($1::uuid[])`, uuidStrings(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	byOrder := make(map[uuid.UUID][]OrderItem, len(orders))
	for rows.Next() {
		var (
			item         OrderItem
			id           pgtype.UUID
			orderID      pgtype.UUID
			productID    pgtype.UUID
			categoryID   pgtype.UUID
			categoryName pgtype.Text
			unitPrice    pgtype.Numeric
		)
		err := rows.Scan(&id, &orderID, &productID, &item.ProductName,
			&categoryID, &categoryName, &item.Quantity, &unitPrice)
		if err != nil {
			return err
		}
		item.ID = uuidFrom(id)
		item.ProductID = uuidFrom(productID)
		item.CategoryID = uuidFrom(categoryID)
		item.CategoryName = textOr(categoryName, "")
		item.UnitPrice = utils.NumericToDecimal(unitPrice)
		key := uuidFrom(orderID)
		byOrder[key] = append(byOrder[key], item)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range orders {
		if items, ok := byOrder[orders[i].ID]; ok {
			orders[i].Items = items
		} else {
			orders[i].Items = []OrderItem{}
		}
	}
	return nil
}

// OrderItemDraft is one line of a new order: a product and how many.
type OrderItemDraft struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrder inserts the order and its item lines in one transaction.
// Unit prices snapshot the product price at purchase time and the order
// total is the sum of the line subtotals.
func (s *Store) CreateOrder(ctx context.Context, userID uuid.UUID, status OrderStatus, items []OrderItemDraft) (Order, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback(ctx)

	orderID := uuid.New()
	now := time.Now()

	type line struct {
		id        uuid.UUID
		productID uuid.UUID
		quantity  int
		unitPrice pgtype.Numeric
	}
	lines := make([]line, 0, len(items))
	sum := decimal.Zero
	for _, item := range items {
		var price pgtype.Numeric
		err := tx.QueryRow(ctx, `select price from product where id = $1`, pgUUID(item.ProductID)).Scan(&price)
		if err != nil {
			return Order{}, err
		}
		unit := utils.NumericToDecimal(price)
		sum = sum.Add(unit.Mul(decimal.NewFromInt(int64(item.Quantity))))
		lines = append(lines, line{id: uuid.New(), productID: item.ProductID, quantity: item.Quantity, unitPrice: price})
	}
	total := utils.DecimalToNumeric(sum)

	_, err = tx.Exec(ctx,
		`insert into orders (id, user_id, total, status, created_at) values ($1, $2, $3, $4, $5)`,
		pgUUID(orderID), pgUUID(userID), total, string(status), now)
	if err != nil {
		return Order{}, err
	}
	for _, l := range lines {
		_, err = tx.Exec(ctx,
			`insert into order_items (id, order_id, product_id, quantity, unit_price) values ($1, $2, $3, $4, $5)`,
			pgUUID(l.id), pgUUID(orderID), pgUUID(l.productID), l.quantity, l.unitPrice)
		if err != nil {
			return Order{}, err
		}
		_, err = tx.Exec(ctx,
			`update product set stock = greatest(stock - $2, 0) where id = $1`,
			pgUUID(l.productID), l.quantity)
		if err != nil {
			return Order{}, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return Order{}, err
	}
	return s.OrderByID(ctx, orderID)
}
