package models

import (
	"time"

	"github.com/volatiletech/null"
)

type PaymentStatus string

const (
	PaymentCreated  PaymentStatus = "created"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type Payment struct {
	ID              int           `json:"id" db:"id"`
	RentalID        int           `json:"rentalID" db:"rental_id"`
	GatewayOrderID  string        `json:"gatewayOrderID" db:"gateway_order_id"`
	GatewayPayID    null.String   `json:"gatewayPaymentID" db:"gateway_payment_id"`
	Amount          float64       `json:"amount" db:"amount"`
	Currency        string        `json:"currency" db:"currency"`
	Status          PaymentStatus `json:"status" db:"status"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt       null.Time     `json:"-" db:"updated_at"`
}
