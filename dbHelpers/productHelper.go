package dbHelpers

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/volatiletech/null"

	"github.com/rentloop/rentloop-server/database"
	"github.com/rentloop/rentloop-server/models"
)

// InsertProduct creates a new product listing and returns its id
func InsertProduct(p models.Product) (int, error) {
	SQL := `INSERT INTO products(name, description, category, tags, features, price_per_day, price_per_week,
                                 price_per_month, original_price, in_stock, stock_count, lat, lng, address, city,
                                 country, owner_id, min_rental_days, max_rental_days)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
            RETURNING id`
	var productID int
	err := database.RentloopDB.Get(&productID, SQL, p.Name, p.Description, p.Category, p.Tags, p.Features,
		p.PricePerDay, p.PricePerWeek, p.PricePerMonth, p.OriginalPrice, p.InStock, p.StockCount,
		p.Lat, p.Lng, p.Address, p.City, p.Country, p.OwnerID, p.MinRentalDays, p.MaxRentalDays)
	return productID, err
}

// GetProducts returns all live product listings with owner info
func GetProducts() ([]models.Product, error) {
	SQL := `SELECT p.id,
                   p.name,
                   p.description,
                   p.category,
                   p.tags,
                   p.features,
                   p.price_per_day,
                   p.price_per_week,
                   p.price_per_month,
                   p.original_price,
                   p.in_stock,
                   p.stock_count,
                   p.rating,
                   p.review_count,
                   p.lat,
                   p.lng,
                   p.address,
                   p.city,
                   p.country,
                   p.owner_id,
                   COALESCE(u.name, '')   AS owner_name,
                   u.rating               AS owner_rating,
                   p.min_rental_days,
                   p.max_rental_days,
                   p.created_at
            FROM products p
                     JOIN users u ON u.id = p.owner_id
            WHERE p.archived_at IS NULL
            ORDER BY p.created_at DESC`
	products := make([]models.Product, 0)

	err := database.RentloopDB.Select(&products, SQL)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductById gets the product details for a given id
func GetProductById(productID int) (*models.Product, error) {
	SQL := `SELECT p.id,
                   p.name,
                   p.description,
                   p.category,
                   p.tags,
                   p.features,
                   p.price_per_day,
                   p.price_per_week,
                   p.price_per_month,
                   p.original_price,
                   p.in_stock,
                   p.stock_count,
                   p.rating,
                   p.review_count,
                   p.lat,
                   p.lng,
                   p.address,
                   p.city,
                   p.country,
                   p.owner_id,
                   COALESCE(u.name, '')   AS owner_name,
                   u.rating               AS owner_rating,
                   p.min_rental_days,
                   p.max_rental_days,
                   p.created_at
            FROM products p
                     JOIN users u ON u.id = p.owner_id
            WHERE p.archived_at IS NULL
              AND p.id = $1`

	var product models.Product

	err := database.RentloopDB.Get(&product, SQL, productID)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ModifyProduct modifies a given product in table
func ModifyProduct(p models.Product) error {
	SQL := `UPDATE products
            SET name            = $1,
                description     = $2,
                category        = $3,
                tags            = $4,
                features        = $5,
                price_per_day   = $6,
                price_per_week  = $7,
                price_per_month = $8,
                original_price  = $9,
                in_stock        = $10,
                stock_count     = $11,
                lat             = $12,
                lng             = $13,
                address         = $14,
                city            = $15,
                country         = $16,
                min_rental_days = $17,
                max_rental_days = $18,
                updated_at      = $19
            WHERE id = $20
              AND archived_at IS NULL`
	_, err := database.RentloopDB.Exec(SQL, p.Name, p.Description, p.Category, p.Tags, p.Features,
		p.PricePerDay, p.PricePerWeek, p.PricePerMonth, p.OriginalPrice, p.InStock, p.StockCount,
		p.Lat, p.Lng, p.Address, p.City, p.Country, p.MinRentalDays, p.MaxRentalDays, time.Now(), p.ID)
	return err
}

// ArchiveProduct archives a given product
func ArchiveProduct(productID, ownerID int) error {
	SQL := `UPDATE products
            SET archived_at = $1
            WHERE archived_at IS NULL
              AND id = $2
              AND owner_id = $3`
	result, err := database.RentloopDB.Exec(SQL, time.Now(), productID, ownerID)
	if err != nil {
		return err
	}
	affectedCount, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affectedCount == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetProductsForAdmin returns every listing, archived ones included
func GetProductsForAdmin() ([]models.Product, error) {
	SQL := `SELECT p.id,
                   p.name,
                   p.description,
                   p.category,
                   p.tags,
                   p.features,
                   p.price_per_day,
                   p.price_per_week,
                   p.price_per_month,
                   p.original_price,
                   p.in_stock,
                   p.stock_count,
                   p.rating,
                   p.review_count,
                   p.lat,
                   p.lng,
                   p.address,
                   p.city,
                   p.country,
                   p.owner_id,
                   COALESCE(u.name, '')   AS owner_name,
                   u.rating               AS owner_rating,
                   p.min_rental_days,
                   p.max_rental_days,
                   p.created_at,
                   p.archived_at
            FROM products p
                     JOIN users u ON u.id = p.owner_id
            ORDER BY p.created_at DESC`
	products := make([]models.Product, 0)
	err := database.RentloopDB.Select(&products, SQL)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductCount returns the number of live products
func GetProductCount() (int, error) {
	SQL := `SELECT count(*)
            FROM products
            WHERE archived_at IS NULL`
	var count int
	err := database.RentloopDB.Get(&count, SQL)
	return count, err
}

// GetProductsByOwner returns every live listing belonging to a host
func GetProductsByOwner(ownerID int) ([]models.Product, error) {
	SQL := `SELECT p.id,
                   p.name,
                   p.description,
                   p.category,
                   p.tags,
                   p.features,
                   p.price_per_day,
                   p.price_per_week,
                   p.price_per_month,
                   p.original_price,
                   p.in_stock,
                   p.stock_count,
                   p.rating,
                   p.review_count,
                   p.lat,
                   p.lng,
                   p.address,
                   p.city,
                   p.country,
                   p.owner_id,
                   COALESCE(u.name, '')   AS owner_name,
                   u.rating               AS owner_rating,
                   p.min_rental_days,
                   p.max_rental_days,
                   p.created_at
            FROM products p
                     JOIN users u ON u.id = p.owner_id
            WHERE p.archived_at IS NULL
              AND p.owner_id = $1
            ORDER BY p.created_at DESC`
	products := make([]models.Product, 0)
	err := database.RentloopDB.Select(&products, SQL, ownerID)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetAllCategories returns all live categories
func GetAllCategories() ([]models.ProductCategory, error) {
	SQL := `SELECT id, category, created_at
            FROM categories
            WHERE archived_at IS NULL
            ORDER BY category`
	categories := make([]models.ProductCategory, 0)
	err := database.RentloopDB.Select(&categories, SQL)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// LinkProductWithImage stores relation between an image and product
func LinkProductWithImage(productID, imageID int) error {
	err := database.Tx(func(tx *sqlx.Tx) error {
		SQL := `INSERT INTO product_images(product_id, image_id) VALUES ($1, $2)`
		_, err := tx.Exec(SQL, productID, imageID)
		return err
	})
	return err
}

// GetImageInfoByProductID returns image info - bucket & path for given productID
func GetImageInfoByProductID(productID int) ([]models.Image, error) {
	SQL := `SELECT i.id, i.bucket, i.path, i.type
            FROM images i
                     LEFT JOIN product_images pi
                               ON i.id = pi.image_id
            WHERE pi.product_id = $1
            ORDER BY i.created_at DESC`

	imagesInfo := make([]models.Image, 0)
	err := database.RentloopDB.Select(&imagesInfo, SQL, productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return imagesInfo, nil
		}
		return nil, err
	}
	return imagesInfo, nil
}

// SetProductStock flips availability and stock count after rental transitions
func SetProductStock(productID int, inStock bool, stockCount null.Int) error {
	SQL := `UPDATE products
            SET in_stock    = $1,
                stock_count = COALESCE($2, stock_count),
                updated_at  = $3
            WHERE id = $4
              AND archived_at IS NULL`
	_, err := database.RentloopDB.Exec(SQL, inStock, stockCount, time.Now(), productID)
	return err
}
