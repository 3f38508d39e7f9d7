package dbHelpers

import (
	"time"

	"github.com/rentloop/rentloop-server/database"
	"github.com/rentloop/rentloop-server/models"
)

// InsertPayment records a freshly created gateway order for a rental
func InsertPayment(rentalID int, gatewayOrderID string, amount float64, currency string) (int, error) {
	SQL := `INSERT INTO payments(rental_id, gateway_order_id, amount, currency, status)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING id`
	var paymentID int
	err := database.RentloopDB.Get(&paymentID, SQL, rentalID, gatewayOrderID, amount, currency, models.PaymentCreated)
	return paymentID, err
}

// GetPaymentByGatewayOrderId finds the payment row for a gateway order
func GetPaymentByGatewayOrderId(gatewayOrderID string) (*models.Payment, error) {
	SQL := `SELECT id,
                   rental_id,
                   gateway_order_id,
                   gateway_payment_id,
                   amount,
                   currency,
                   status,
                   created_at,
                   updated_at
            FROM payments
            WHERE gateway_order_id = $1`
	var payment models.Payment
	err := database.RentloopDB.Get(&payment, SQL, gatewayOrderID)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// MarkPaymentPaid stores the gateway payment id and flips the status
func MarkPaymentPaid(paymentID int, gatewayPaymentID string) error {
	SQL := `UPDATE payments
            SET status             = $1,
                gateway_payment_id = $2,
                updated_at         = $3
            WHERE id = $4`
	_, err := database.RentloopDB.Exec(SQL, models.PaymentPaid, gatewayPaymentID, time.Now(), paymentID)
	return err
}

// MarkPaymentFailed flips a payment to failed
func MarkPaymentFailed(paymentID int) error {
	SQL := `UPDATE payments
            SET status     = $1,
                updated_at = $2
            WHERE id = $3`
	_, err := database.RentloopDB.Exec(SQL, models.PaymentFailed, time.Now(), paymentID)
	return err
}

// HasPaidPayment reports whether a rental already has a successful payment
func HasPaidPayment(rentalID int) (bool, error) {
	SQL := `SELECT count(*)
            FROM payments
            WHERE rental_id = $1
              AND status = $2`
	var count int
	err := database.RentloopDB.Get(&count, SQL, rentalID, models.PaymentPaid)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
