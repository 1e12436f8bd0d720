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

const productColumns = `
	p.id, p.name, p.description, p.price, p.stock, p.archived, p.featured, p.created_at,
	c.id, c.name, c.created_at,
	col.id, col.name, col.value, col.created_at,
	s.id, s.name, s.fullname, s.created_at`

const productJoins = `
	from product p
	left join category c on c.id = p.category_id
	left join colors col on col.id = p.color_id
	left join sizes s on s.id = p.size_id`

func scanProduct(row pgx.Row) (Product, error) {
	var (
		p           Product
		id          pgtype.UUID
		description pgtype.Text
		price       pgtype.Numeric

		categoryID        pgtype.UUID
		categoryName      pgtype.Text
		categoryCreatedAt pgtype.Timestamptz

		colorID        pgtype.UUID
		colorName      pgtype.Text
		colorValue     pgtype.Text
		colorCreatedAt pgtype.Timestamptz

		sizeID        pgtype.UUID
		sizeName      pgtype.Text
		sizeFullName  pgtype.Text
		sizeCreatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &p.Name, &description, &price, &p.Stock, &p.Archived, &p.Featured, &p.CreatedAt,
		&categoryID, &categoryName, &categoryCreatedAt,
		&colorID, &colorName, &colorValue, &colorCreatedAt,
		&sizeID, &sizeName, &sizeFullName, &sizeCreatedAt,
	)
	if err != nil {
		return Product{}, err
	}

	p.ID = uuidFrom(id)
	p.Description = textPtr(description)
	p.Price = utils.NumericToDecimal(price)
	if categoryID.Valid {
		p.Category = &Category{
			ID:        uuidFrom(categoryID),
			Name:      textOr(categoryName, ""),
			CreatedAt: categoryCreatedAt.Time,
		}
	}
	if colorID.Valid {
		p.Color = &Color{
			ID:        uuidFrom(colorID),
			Name:      textOr(colorName, ""),
			Value:     textPtr(colorValue),
			CreatedAt: colorCreatedAt.Time,
		}
	}
	if sizeID.Valid {
		p.Size = &Size{
			ID:        uuidFrom(sizeID),
			Name:      textOr(sizeName, ""),
			FullName:  textPtr(sizeFullName),
			CreatedAt: sizeCreatedAt.Time,
		}
	}
	return p, nil
}

func (s *Store) queryProducts(ctx context.Context, where string, args ...any) ([]Product, error) {
	query := `select` + productColumns + productJoins
	if where != "" {
		query += ` where ` + where
	}
	query += ` order by p.created_at desc`

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := s.attachImages(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) Products(ctx context.Context) ([]Product, error) {
	return s.queryProducts(ctx, "")
}

func (s *Store) ActiveProducts(ctx context.Context) ([]Product, error) {
	return s.queryProducts(ctx, `p.archived = false`)
}

func (s *Store) FeaturedProducts(ctx context.Context) ([]Product, error) {
	return s.queryProducts(ctx, `p.featured = true and p.archived = false`)
}

func (s *Store) ProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]Product, error) {
	return s.queryProducts(ctx, `p.category_id = $1`, pgUUID(categoryID))
}

func (s *Store) ProductsByColor(ctx context.Context, colorID uuid.UUID) ([]Product, error) {
	return s.queryProducts(ctx, `p.color_id = $1`, pgUUID(colorID))
}

func (s *Store) ProductsBySize(ctx context.Context, sizeID uuid.UUID) ([]Product, error) {
	return s.queryProducts(ctx, `p.size_id = $1`, pgUUID(sizeID))
}

func (s *Store) ProductByID(ctx context.Context, id uuid.UUID) (Product, error) {
	p, err := scanProduct(s.DB.QueryRow(ctx,
		`select`+productColumns+productJoins+` where p.id = $1`, pgUUID(id)))
	if err != nil {
		return Product{}, err
	}
	images, err := s.ProductImages(ctx, id)
	if err != nil {
		return Product{}, err
	}
	p.Images = images
	return p, nil
}

func (s *Store) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := s.DB.QueryRow(ctx, `select count(*) from product`).Scan(&count)
	return count, err
}

// ProductDraft carries the writable columns of a product row.
type ProductDraft struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Stock       int
	Archived    bool
	Featured    bool
	CategoryID  *uuid.UUID
	ColorID     *uuid.UUID
	SizeID      *uuid.UUID
}

func (s *Store) CreateProduct(ctx context.Context, draft ProductDraft) (Product, error) {
	id := uuid.New()
	now := time.Now()
	_, err := s.DB.Exec(ctx,
		`insert into product (id, name, description, price, stock, archived, featured, category_id, color_id, size_id, created_at)
		 values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		pgUUID(id), draft.Name, draft.Description, utils.DecimalToNumeric(draft.Price),
		draft.Stock, draft.Archived, draft.Featured,
		pgUUIDPtr(draft.CategoryID), pgUUIDPtr(draft.ColorID), pgUUIDPtr(draft.SizeID), now)
	if err != nil {
		return Product{}, err
	}
	return s.ProductByID(ctx, id)
}

func (s *Store) UpdateProduct(ctx context.Context, id uuid.UUID, draft ProductDraft) (Product, error) {
	err := expectOneRow(s.DB.Exec(ctx,
		`update product
		 set name = $2, description = $3, price = $4, stock = $5, archived = $6, featured = $7,
		     category_id = $8, color_id = $9, size_id = $10
		 where id = $1`,
		pgUUID(id), draft.Name, draft.Description, utils.DecimalToNumeric(draft.Price),
		draft.Stock, draft.Archived, draft.Featured,
		pgUUIDPtr(draft.CategoryID), pgUUIDPtr(draft.ColorID), pgUUIDPtr(draft.SizeID)))
	if err != nil {
		return Product{}, err
	}
	return s.ProductByID(ctx, id)
}

func (s *Store) SetProductArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	return expectOneRow(s.DB.Exec(ctx, `update product set archived = $2 where id = $1`, pgUUID(id), archived))
}

func (s *Store) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return expectOneRow(s.DB.Exec(ctx, `delete from product where id = $1`, pgUUID(id)))
}

func (s *Store) attachImages(ctx context.Context, products []Product) error {
	if len(products) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	rows, err := s.DB.Query(ctx,
		`select id, product_id, url, thumbnail_url, key, created_at
		 from product_images
		 where product_id = any($1::uuid[])
		 order by created_at`, uuidStrings(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	byProduct := make(map[uuid.UUID][]ProductImage, len(products))
	for rows.Next() {
		img, err := scanProductImage(rows)
		if err != nil {
			return err
		}
		byProduct[img.ProductID] = append(byProduct[img.ProductID], img)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range products {
		if images, ok := byProduct[products[i].ID]; ok {
			products[i].Images = images
		} else {
			products[i].Images = []ProductImage{}
		}
	}
	return nil
}
