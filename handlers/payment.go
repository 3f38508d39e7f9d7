package handlers

import (
	"database/sql"
	"math"
	"net/http"
	"os"

	"github.com/volatiletech/null"

	"github.com/rentloop/rentloop-server/dbHelpers"
	"github.com/rentloop/rentloop-server/firebase"
	"github.com/rentloop/rentloop-server/middlewares"
	"github.com/rentloop/rentloop-server/models"
	"github.com/rentloop/rentloop-server/payment"
	"github.com/rentloop/rentloop-server/utils"
)

// CreatePaymentOrder registers a gateway order for a pending rental
func CreatePaymentOrder(w http.ResponseWriter, r *http.Request) {
	renter := middlewares.UserContext(r)

	reqBody := struct {
		RentalID int `json:"rentalID"`
	}{}
	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}

	rental, err := dbHelpers.GetRentalById(reqBody.RentalID)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusNotFound, err, "Rental not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get rental")
		return
	}
	if rental.RenterID != renter.ID {
		utils.RespondError(w, http.StatusForbidden, nil, "You can only pay for your own rentals")
		return
	}
	if rental.Status != models.RentalPending {
		utils.RespondError(w, http.StatusConflict, nil, "Rental is not awaiting payment")
		return
	}

	alreadyPaid, err := dbHelpers.HasPaidPayment(rental.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to check payments")
		return
	}
	if alreadyPaid {
		utils.RespondError(w, http.StatusConflict, nil, "Rental is already paid for")
		return
	}

	// gateway amounts are in the smallest currency unit
	amount := int64(math.Round(rental.TotalAmount * 100))
	order, err := payment.CreateOrder(amount, "INR")
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to create payment order")
		return
	}

	paymentID, err := dbHelpers.InsertPayment(rental.ID, order.OrderID, rental.TotalAmount, order.Currency)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to store payment entry")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, struct {
		PaymentID int                   `json:"paymentID"`
		Order     *payment.GatewayOrder `json:"order"`
	}{PaymentID: paymentID, Order: order})
}

// VerifyPayment checks the checkout signature and confirms the rental
func VerifyPayment(w http.ResponseWriter, r *http.Request) {
	renter := middlewares.UserContext(r)

	reqBody := struct {
		OrderID          string `json:"orderID"`
		GatewayPaymentID string `json:"gatewayPaymentID"`
		Signature        string `json:"signature"`
	}{}
	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}

	paymentEntry, err := dbHelpers.GetPaymentByGatewayOrderId(reqBody.OrderID)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusNotFound, err, "Payment order not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get payment")
		return
	}

	rental, err := dbHelpers.GetRentalById(paymentEntry.RentalID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get rental")
		return
	}
	if rental.RenterID != renter.ID {
		utils.RespondError(w, http.StatusForbidden, nil, "You can only verify your own payments")
		return
	}

	secret := os.Getenv("RAZORPAY_KEY_SECRET")
	if !payment.VerifySignature(reqBody.OrderID, reqBody.GatewayPaymentID, reqBody.Signature, secret) {
		if err := dbHelpers.MarkPaymentFailed(paymentEntry.ID); err != nil {
			utils.RespondError(w, http.StatusInternalServerError, err, "Failed to record payment failure")
			return
		}
		utils.RespondError(w, http.StatusBadRequest, nil, "Payment signature verification failed")
		return
	}

	if err := dbHelpers.MarkPaymentPaid(paymentEntry.ID, reqBody.GatewayPaymentID); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to record payment")
		return
	}
	if err := dbHelpers.UpdateRentalStatus(rental.ID, models.RentalConfirmed, null.String{}); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to confirm rental")
		return
	}

	go firebase.RentalStatusUpdateNotification(int64(rental.RenterID), rental.ID, models.RentalConfirmed)
	go firebase.RentalStatusUpdateNotification(int64(rental.HostID), rental.ID, models.RentalConfirmed)

	utils.RespondJSON(w, http.StatusOK, models.Response{Success: true})
}
