package dbHelpers

import (
	"time"

	"github.com/volatiletech/null"

	"github.com/rentloop/rentloop-server/database"
	"github.com/rentloop/rentloop-server/models"
)

// InsertRental creates a new pending rental and returns its id
func InsertRental(rental models.Rental) (int, error) {
	SQL := `INSERT INTO rentals(product_id, renter_id, host_id, status, start_date, end_date, total_days,
                                subtotal, service_fee, insurance_fee, total_amount)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
            RETURNING id`
	var rentalID int
	err := database.RentloopDB.Get(&rentalID, SQL, rental.ProductID, rental.RenterID, rental.HostID,
		models.RentalPending, rental.StartDate, rental.EndDate, rental.TotalDays,
		rental.Subtotal, rental.ServiceFee, rental.InsuranceFee, rental.TotalAmount)
	return rentalID, err
}

// GetRentalById gets a rental with its product name
func GetRentalById(rentalID int) (*models.Rental, error) {
	SQL := `SELECT r.id,
                   r.product_id,
                   p.name AS product_name,
                   r.renter_id,
                   r.host_id,
                   r.status,
                   r.start_date,
                   r.end_date,
                   r.total_days,
                   r.subtotal,
                   r.service_fee,
                   r.insurance_fee,
                   r.total_amount,
                   r.notes,
                   r.created_at,
                   r.updated_at
            FROM rentals r
                     JOIN products p ON p.id = r.product_id
            WHERE r.id = $1`
	var rental models.Rental
	err := database.RentloopDB.Get(&rental, SQL, rentalID)
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// GetRentalsAsRenter returns a user's rentals, optionally filtered by status
func GetRentalsAsRenter(renterID int, status models.RentalStatus) ([]models.Rental, error) {
	return rentalsFor("renter_id", renterID, status)
}

// GetRentalsAsHost returns the rentals on a host's listings, optionally filtered by status
func GetRentalsAsHost(hostID int, status models.RentalStatus) ([]models.Rental, error) {
	return rentalsFor("host_id", hostID, status)
}

func rentalsFor(column string, userID int, status models.RentalStatus) ([]models.Rental, error) {
	SQL := `SELECT r.id,
                   r.product_id,
                   p.name AS product_name,
                   r.renter_id,
                   r.host_id,
                   r.status,
                   r.start_date,
                   r.end_date,
                   r.total_days,
                   r.subtotal,
                   r.service_fee,
                   r.insurance_fee,
                   r.total_amount,
                   r.notes,
                   r.created_at,
                   r.updated_at
            FROM rentals r
                     JOIN products p ON p.id = r.product_id
            WHERE r.` + column + ` = $1`

	rentals := make([]models.Rental, 0)
	if status != "" {
		SQL += ` AND r.status = $2 ORDER BY r.created_at DESC`
		err := database.RentloopDB.Select(&rentals, SQL, userID, status)
		return rentals, err
	}
	SQL += ` ORDER BY r.created_at DESC`
	err := database.RentloopDB.Select(&rentals, SQL, userID)
	return rentals, err
}

// UpdateRentalStatus moves a rental to a new status
func UpdateRentalStatus(rentalID int, status models.RentalStatus, notes null.String) error {
	SQL := `UPDATE rentals
            SET status     = $1,
                notes      = COALESCE($2, notes),
                updated_at = $3
            WHERE id = $4`
	_, err := database.RentloopDB.Exec(SQL, status, notes, time.Now(), rentalID)
	return err
}

// IsProductAvailable reports whether the product has no confirmed or active
// rental overlapping the given date range
func IsProductAvailable(productID int, startDate, endDate time.Time) (bool, error) {
	SQL := `SELECT count(*)
            FROM rentals
            WHERE product_id = $1
              AND status IN ($2, $3)
              AND start_date <= $5
              AND end_date >= $4`
	var conflicts int
	err := database.RentloopDB.Get(&conflicts, SQL, productID, models.RentalConfirmed, models.RentalActive, startDate, endDate)
	if err != nil {
		return false, err
	}
	return conflicts == 0, nil
}

// GetHostStats aggregates rental counts and earnings for a host
func GetHostStats(hostID int) (*models.HostStats, error) {
	SQL := `SELECT count(*)                                                              AS total_rentals,
                   count(*) FILTER (WHERE status = $2)                                   AS active_rentals,
                   count(*) FILTER (WHERE status = $3)                                   AS completed_rentals,
                   COALESCE(sum(total_amount) FILTER (WHERE status = $3), 0)             AS total_earnings,
                   COALESCE(sum(total_amount) FILTER (WHERE status = $3
                       AND date_trunc('month', created_at) = date_trunc('month', NOW())), 0) AS this_month_earnings
            FROM rentals
            WHERE host_id = $1`
	var stats models.HostStats
	err := database.RentloopDB.Get(&stats, SQL, hostID, models.RentalActive, models.RentalCompleted)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetRentalCountForStatus counts rentals in a given status
func GetRentalCountForStatus(status models.RentalStatus) (int, error) {
	SQL := `SELECT count(*)
            FROM rentals
            WHERE status = $1`
	var count int
	err := database.RentloopDB.Get(&count, SQL, status)
	return count, err
}

// GetTotalRevenue sums the amount of all completed rentals
func GetTotalRevenue() (float64, error) {
	SQL := `SELECT COALESCE(sum(total_amount), 0)
            FROM rentals
            WHERE status = $1`
	var revenue float64
	err := database.RentloopDB.Get(&revenue, SQL, models.RentalCompleted)
	return revenue, err
}
