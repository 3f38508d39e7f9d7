package models

import (
	"time"

	"github.com/volatiletech/null"
)

type RentalStatus string
type TimeInterval int

const (
	RentalPending   RentalStatus = "pending"
	RentalConfirmed RentalStatus = "confirmed"
	RentalActive    RentalStatus = "active"
	RentalCompleted RentalStatus = "completed"
	RentalCancelled RentalStatus = "cancelled"
)

const (
	// TimeForRenterToPay is how long a pending rental may stay unpaid
	// before the cleanup job cancels it, in seconds.
	TimeForRenterToPay TimeInterval = 1800
)

type Rental struct {
	ID           int          `json:"id" db:"id"`
	ProductID    int          `json:"productID" db:"product_id"`
	ProductName  string       `json:"productName" db:"product_name"`
	RenterID     int          `json:"renterID" db:"renter_id"`
	HostID       int          `json:"hostID" db:"host_id"`
	Status       RentalStatus `json:"status" db:"status"`
	StartDate    time.Time    `json:"startDate" db:"start_date"`
	EndDate      time.Time    `json:"endDate" db:"end_date"`
	TotalDays    int          `json:"totalDays" db:"total_days"`
	Subtotal     float64      `json:"subtotal" db:"subtotal"`
	ServiceFee   float64      `json:"serviceFee" db:"service_fee"`
	InsuranceFee float64      `json:"insuranceFee" db:"insurance_fee"`
	TotalAmount  float64      `json:"totalAmount" db:"total_amount"`
	Notes        null.String  `json:"notes" db:"notes"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt    null.Time    `json:"updatedAt" db:"updated_at"`
}

type HostStats struct {
	TotalRentals      int     `json:"totalRentals" db:"total_rentals"`
	ActiveRentals     int     `json:"activeRentals" db:"active_rentals"`
	CompletedRentals  int     `json:"completedRentals" db:"completed_rentals"`
	TotalEarnings     float64 `json:"totalEarnings" db:"total_earnings"`
	ThisMonthEarnings float64 `json:"thisMonthEarnings" db:"this_month_earnings"`
}
