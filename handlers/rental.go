package handlers

import (
	"database/sql"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/volatiletech/null"

	"github.com/rentloop/rentloop-server/dbHelpers"
	"github.com/rentloop/rentloop-server/firebase"
	"github.com/rentloop/rentloop-server/middlewares"
	"github.com/rentloop/rentloop-server/models"
	"github.com/rentloop/rentloop-server/pricing"
	"github.com/rentloop/rentloop-server/utils"
)

// CreateRental books a product for a date range and prices it
func CreateRental(w http.ResponseWriter, r *http.Request) {
	renter := middlewares.UserContext(r)

	reqBody := struct {
		ProductID int    `json:"productID"`
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}{}
	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}

	startDate, err := time.Parse(dateLayout, reqBody.StartDate)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse(dateLayout, reqBody.EndDate)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid end date, expected YYYY-MM-DD")
		return
	}
	if !endDate.After(startDate) {
		utils.RespondError(w, http.StatusBadRequest, nil, "End date must be after start date")
		return
	}

	product, err := dbHelpers.GetProductById(reqBody.ProductID)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusNotFound, err, "Product not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get product")
		return
	}
	if product.OwnerID == renter.ID {
		utils.RespondError(w, http.StatusBadRequest, nil, "You can't rent your own listing")
		return
	}
	if !product.InStock {
		utils.RespondError(w, http.StatusConflict, nil, "Product is currently out of stock")
		return
	}

	quote := pricing.Breakdown(startDate, endDate, product.PricePerDay)
	if quote.Days < product.MinRentalDays {
		utils.RespondError(w, http.StatusBadRequest, nil, "Rental period is below the minimum for this product")
		return
	}
	if product.MaxRentalDays > 0 && quote.Days > product.MaxRentalDays {
		utils.RespondError(w, http.StatusBadRequest, nil, "Rental period exceeds the maximum for this product")
		return
	}

	available, err := dbHelpers.IsProductAvailable(product.ID, startDate, endDate)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to check availability")
		return
	}
	if !available {
		utils.RespondError(w, http.StatusConflict, nil, "Product is already booked for these dates")
		return
	}

	rentalID, err := dbHelpers.InsertRental(models.Rental{
		ProductID:    product.ID,
		RenterID:     renter.ID,
		HostID:       product.OwnerID,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalDays:    quote.Days,
		Subtotal:     quote.Subtotal,
		ServiceFee:   quote.ServiceFee,
		InsuranceFee: quote.InsuranceFee,
		TotalAmount:  quote.Total,
	})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to store rental entry")
		return
	}

	rental, err := dbHelpers.GetRentalById(rentalID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get rental")
		return
	}

	go firebase.RentalStatusUpdateNotification(int64(product.OwnerID), rentalID, models.RentalPending)

	utils.RespondJSON(w, http.StatusCreated, rental)
}

// GetRentals lists the user's rentals as a renter, optionally by status
func GetRentals(w http.ResponseWriter, r *http.Request) {
	renter := middlewares.UserContext(r)
	status := models.RentalStatus(r.URL.Query().Get("status"))

	rentals, err := dbHelpers.GetRentalsAsRenter(renter.ID, status)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get rentals")
		return
	}
	utils.RespondJSON(w, http.StatusOK, rentals)
}

// GetRentalInfo returns one rental to either of its parties
func GetRentalInfo(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserContext(r)
	rentalID, err := utils.StringToInt(chi.URLParam(r, "rentalId"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid rental id")
		return
	}

	rental, err := dbHelpers.GetRentalById(rentalID)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusNotFound, err, "Rental not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get rental")
		return
	}
	if rental.RenterID != user.ID && rental.HostID != user.ID {
		utils.RespondError(w, http.StatusForbidden, nil, "You are not a party to this rental")
		return
	}
	utils.RespondJSON(w, http.StatusOK, rental)
}

// CancelRental cancels a pending or confirmed rental with an optional reason
func CancelRental(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserContext(r)
	rentalID, err := utils.StringToInt(chi.URLParam(r, "rentalId"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid rental id")
		return
	}

	reqBody := struct {
		Reason null.String `json:"reason"`
	}{}
	if err := utils.ParseBody(r.Body, &reqBody); err != nil && err != io.EOF {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}

	rental, err := dbHelpers.GetRentalById(rentalID)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusNotFound, err, "Rental not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get rental")
		return
	}
	if rental.RenterID != user.ID && rental.HostID != user.ID {
		utils.RespondError(w, http.StatusForbidden, nil, "You are not a party to this rental")
		return
	}
	if rental.Status != models.RentalPending && rental.Status != models.RentalConfirmed {
		utils.RespondError(w, http.StatusConflict, nil, "Only pending or confirmed rentals can be cancelled")
		return
	}

	if err := dbHelpers.UpdateRentalStatus(rentalID, models.RentalCancelled, reqBody.Reason); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to cancel rental")
		return
	}

	otherParty := rental.RenterID
	if user.ID == rental.RenterID {
		otherParty = rental.HostID
	}
	go firebase.RentalStatusUpdateNotification(int64(otherParty), rentalID, models.RentalCancelled)

	utils.RespondJSON(w, http.StatusOK, models.Response{Success: true})
}

// GetHostRentals lists the rentals on the host's listings
func GetHostRentals(w http.ResponseWriter, r *http.Request) {
	host := middlewares.UserContext(r)
	status := models.RentalStatus(r.URL.Query().Get("status"))

	rentals, err := dbHelpers.GetRentalsAsHost(host.ID, status)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get rentals")
		return
	}
	utils.RespondJSON(w, http.StatusOK, rentals)
}

// GetHostStats returns the host's rental counts and earnings
func GetHostStats(w http.ResponseWriter, r *http.Request) {
	host := middlewares.UserContext(r)
	stats, err := dbHelpers.GetHostStats(host.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get host stats")
		return
	}
	utils.RespondJSON(w, http.StatusOK, stats)
}
