package cronJobs

import (
	"github.com/sirupsen/logrus"

	"github.com/rentloop/rentloop-server/database"
	"github.com/rentloop/rentloop-server/firebase"
	"github.com/rentloop/rentloop-server/models"
)

type rentalParty struct {
	RentalID int   `db:"rental_id"`
	RenterID int64 `db:"renter_id"`
	HostID   int64 `db:"host_id"`
}

// ActivateDueRentals flips confirmed rentals to active once their start date arrives
func ActivateDueRentals() {
	SQL := `
		UPDATE rentals
		SET status     = $1,
		    updated_at = NOW()
		WHERE status = $2
		  AND start_date <= NOW()
		RETURNING id AS rental_id, renter_id, host_id;
`
	parties := make([]rentalParty, 0)
	err := database.RentloopDB.Select(&parties, SQL, models.RentalActive, models.RentalConfirmed)
	if err != nil {
		logrus.Errorf("ActivateDueRentals: error :%v", err)
		return
	}
	for _, party := range parties {
		go firebase.RentalStatusUpdateNotification(party.RenterID, party.RentalID, models.RentalActive)
		go firebase.RentalStatusUpdateNotification(party.HostID, party.RentalID, models.RentalActive)
	}
}

// CompleteFinishedRentals flips active rentals to completed once their end date passes
func CompleteFinishedRentals() {
	SQL := `
		UPDATE rentals
		SET status     = $1,
		    updated_at = NOW()
		WHERE status = $2
		  AND end_date < NOW()
		RETURNING id AS rental_id, renter_id, host_id;
`
	parties := make([]rentalParty, 0)
	err := database.RentloopDB.Select(&parties, SQL, models.RentalCompleted, models.RentalActive)
	if err != nil {
		logrus.Errorf("CompleteFinishedRentals: error :%v", err)
		return
	}
	for _, party := range parties {
		go firebase.RentalStatusUpdateNotification(party.RenterID, party.RentalID, models.RentalCompleted)
		go firebase.RentalStatusUpdateNotification(party.HostID, party.RentalID, models.RentalCompleted)
	}
}

// ExpireUnpaidRentals cancels pending rentals that were never paid for in time
func ExpireUnpaidRentals() {
	SQL := `
		UPDATE rentals
		SET status     = $1,
		    notes      = 'payment window expired',
		    updated_at = NOW()
		WHERE rentals.id = ANY (SELECT r.id
								FROM rentals r
								WHERE r.status = $2
								  AND (NOW() - r.created_at) >= ($3 || ' second')::INTERVAL
								  AND NOT EXISTS(SELECT 1
												 FROM payments p
												 WHERE p.rental_id = r.id
												   AND p.status = $4))
		RETURNING id AS rental_id, renter_id, host_id;
`
	parties := make([]rentalParty, 0)
	err := database.RentloopDB.Select(&parties, SQL, models.RentalCancelled, models.RentalPending,
		models.TimeForRenterToPay, models.PaymentPaid)
	if err != nil {
		logrus.Errorf("ExpireUnpaidRentals: error :%v", err)
		return
	}
	for _, party := range parties {
		go firebase.RentalStatusUpdateNotification(party.RenterID, party.RentalID, models.RentalCancelled)
	}
}
