package dbHelpers

import (
	"database/sql"

	"github.com/rentloop/rentloop-server/database"
	"github.com/rentloop/rentloop-server/models"
)

// AddFavorite marks a product as favorite for a user
func AddFavorite(userID, productID int) error {
	SQL := `INSERT INTO favorites(user_id, product_id)
            VALUES ($1, $2)
            ON CONFLICT (user_id, product_id) DO NOTHING`
	_, err := database.RentloopDB.Exec(SQL, userID, productID)
	return err
}

// RemoveFavorite removes a product from a user's favorites
func RemoveFavorite(userID, productID int) error {
	SQL := `DELETE
            FROM favorites
            WHERE user_id = $1
              AND product_id = $2`
	result, err := database.RentloopDB.Exec(SQL, userID, productID)
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

// IsFavorited reports whether a user already favorited a product
func IsFavorited(userID, productID int) (bool, error) {
	SQL := `SELECT id
            FROM favorites
            WHERE user_id = $1
              AND product_id = $2`
	var favoriteID int
	err := database.RentloopDB.Get(&favoriteID, SQL, userID, productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetFavoriteIds returns the product ids a user has favorited
func GetFavoriteIds(userID int) ([]int, error) {
	SQL := `SELECT product_id
            FROM favorites
            WHERE user_id = $1
            ORDER BY created_at DESC`
	productIDs := make([]int, 0)
	err := database.RentloopDB.Select(&productIDs, SQL, userID)
	if err != nil {
		return nil, err
	}
	return productIDs, nil
}

// GetFavoriteProducts returns the full product rows a user has favorited
func GetFavoriteProducts(userID int) ([]models.Product, error) {
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
            FROM favorites f
                     JOIN products p ON p.id = f.product_id AND p.archived_at IS NULL
                     JOIN users u ON u.id = p.owner_id
            WHERE f.user_id = $1
            ORDER BY f.created_at DESC`
	products := make([]models.Product, 0)
	err := database.RentloopDB.Select(&products, SQL, userID)
	if err != nil {
		return nil, err
	}
	return products, nil
}
