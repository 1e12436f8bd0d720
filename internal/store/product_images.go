package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func scanProductImage(row pgx.Row) (ProductImage, error) {
	var (
		img          ProductImage
		id           pgtype.UUID
		productID    pgtype.UUID
		thumbnailURL pgtype.Text
		key          pgtype.Text
	)
	err := row.Scan(&id, &productID, &img.URL, &thumbnailURL, &key, &img.CreatedAt)
	if err != nil {
		return ProductImage{}, err
	}
	img.ID = uuidFrom(id)
	img.ProductID = uuidFrom(productID)
	img.ThumbnailURL = textOr(thumbnailURL, "")
	img.Key = textOr(key, "")
	return img, nil
}

func (s *Store) ProductImages(ctx context.Context, productID uuid.UUID) ([]ProductImage, error) {
	rows, err := s.DB.Query(ctx,
		`select id, product_id, url, thumbnail_url, key, created_at
		 from product_images where product_id = $1 order by created_at`, pgUUID(productID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]ProductImage, 0)
	for rows.Next() {
		img, err := scanProductImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (s *Store) ProductImageByID(ctx context.Context, id uuid.UUID) (ProductImage, error) {
	return scanProductImage(s.DB.QueryRow(ctx,
		`select id, product_id, url, thumbnail_url, key, created_at
		 from product_images where id = $1`, pgUUID(id)))
}

func (s *Store) CreateProductImage(ctx context.Context, img ProductImage) (ProductImage, error) {
	img.ID = uuid.New()
	img.CreatedAt = time.Now()
	_, err := s.DB.Exec(ctx,
		`insert into product_images (id, product_id, url, thumbnail_url, key, created_at)
		 values ($1, $2, $3, $4, $5, $6)`,
		pgUUID(img.ID), pgUUID(img.ProductID), img.URL, img.ThumbnailURL, img.Key, img.CreatedAt)
	return img, err
}

func (s *Store) DeleteProductImage(ctx context.Context, id uuid.UUID) error {
	return expectOneRow(s.DB.Exec(ctx, `delete from product_images where id = $1`, pgUUID(id)))
}
