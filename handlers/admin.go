package handlers

import (
	"database/sql"
	"io"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/volatiletech/null"
	"golang.org/x/sync/errgroup"

	"github.com/rentloop/rentloop-server/dbHelpers"
	"github.com/rentloop/rentloop-server/firebase"
	"github.com/rentloop/rentloop-server/models"
	"github.com/rentloop/rentloop-server/utils"
)

// LoginAdmin validates admin credentials and returns a session JWT
func LoginAdmin(w http.ResponseWriter, r *http.Request) {
	credentials := models.AdminCred{}
	if err := utils.ParseBody(r.Body, &credentials); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}

	admin, err := dbHelpers.GetAdminByEmail(credentials.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusUnauthorized, err, "Invalid email or password")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get admin")
		return
	}

	if admin.Password != utils.HashString(credentials.Password) {
		utils.RespondError(w, http.StatusUnauthorized, nil, "Invalid email or password")
		return
	}

	token, err := utils.GenerateJWT(admin.ID, admin.Email)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to create session token")
		return
	}

	utils.RespondJSON(w, http.StatusOK, struct {
		Token string            `json:"token"`
		Admin *models.AdminUser `json:"admin"`
	}{Token: token, Admin: admin})
}

// GetDashboardStats aggregates the numbers shown on the admin dashboard
func GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	var stats models.DashboardStats
	var eg errgroup.Group

	eg.Go(func() error {
		count, err := dbHelpers.GetUserCount("")
		stats.UserCount = count
		return errors.Wrap(err, "user count")
	})
	eg.Go(func() error {
		count, err := dbHelpers.GetUserCount(models.RoleHost)
		stats.HostCount = count
		return errors.Wrap(err, "host count")
	})
	eg.Go(func() error {
		count, err := dbHelpers.GetVerifiedHostCount()
		stats.VerifiedHosts = count
		return errors.Wrap(err, "verified host count")
	})
	eg.Go(func() error {
		count, err := dbHelpers.GetPendingKYCCount()
		stats.PendingKYC = count
		return errors.Wrap(err, "pending kyc count")
	})
	eg.Go(func() error {
		count, err := dbHelpers.GetProductCount()
		stats.TotalProducts = count
		return errors.Wrap(err, "product count")
	})
	eg.Go(func() error {
		count, err := dbHelpers.GetRentalCountForStatus(models.RentalPending)
		stats.PendingRentals = count
		return errors.Wrap(err, "pending rental count")
	})
	eg.Go(func() error {
		count, err := dbHelpers.GetRentalCountForStatus(models.RentalActive)
		stats.ActiveRentals = count
		return errors.Wrap(err, "active rental count")
	})
	eg.Go(func() error {
		count, err := dbHelpers.GetRentalCountForStatus(models.RentalCompleted)
		stats.CompletedRentals = count
		return errors.Wrap(err, "completed rental count")
	})
	eg.Go(func() error {
		revenue, err := dbHelpers.GetTotalRevenue()
		stats.TotalRevenue = revenue
		return errors.Wrap(err, "total revenue")
	})

	if err := eg.Wait(); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get dashboard stats")
		return
	}
	utils.RespondJSON(w, http.StatusOK, stats)
}

// GetAllUsersForAdmin lists registered users, newest first
func GetAllUsersForAdmin(w http.ResponseWriter, r *http.Request) {
	page, pageSize := utils.GetPageParams(r, 20)

	users, err := dbHelpers.GetAllUsers(pageSize, (page-1)*pageSize)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get users")
		return
	}
	utils.RespondJSON(w, http.StatusOK, users)
}

// GetAllProductsForAdmin lists every listing, archived ones included
func GetAllProductsForAdmin(w http.ResponseWriter, r *http.Request) {
	products, err := dbHelpers.GetProductsForAdmin()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get products")
		return
	}
	utils.RespondJSON(w, http.StatusOK, products)
}

// GetKYCSubmissions lists submissions in a status, pending by default
func GetKYCSubmissions(w http.ResponseWriter, r *http.Request) {
	status := models.KYCStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = models.KYCPending
	}

	submissions, err := dbHelpers.GetKYCSubmissionsByStatus(status)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get kyc submissions")
		return
	}

	for i := range submissions {
		if !submissions[i].DocumentImageID.Valid {
			continue
		}
		imageInfo, err := dbHelpers.GetImageInfoById(submissions[i].DocumentImageID.Int)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get document image")
			return
		}
		link, err := firebase.GetURL(imageInfo)
		if err != nil {
			logrus.Errorf("failed to sign url for image %d with error: %+v", imageInfo.ID, err)
			continue
		}
		submissions[i].DocumentImageLink = link
	}
	utils.RespondJSON(w, http.StatusOK, submissions)
}

// ApproveKYC approves a pending submission and verifies the host
func ApproveKYC(w http.ResponseWriter, r *http.Request) {
	reviewKYC(w, r, models.KYCApproved)
}

// RejectKYC rejects a pending submission
func RejectKYC(w http.ResponseWriter, r *http.Request) {
	reviewKYC(w, r, models.KYCRejected)
}

func reviewKYC(w http.ResponseWriter, r *http.Request, decision models.KYCStatus) {
	submissionID, err := utils.StringToInt(chi.URLParam(r, "submissionId"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid submission id")
		return
	}

	reqBody := struct {
		Note null.String `json:"note"`
	}{}
	if err := utils.ParseBody(r.Body, &reqBody); err != nil && err != io.EOF {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}

	submission, err := dbHelpers.GetKYCSubmissionById(submissionID)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusNotFound, err, "Submission not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get submission")
		return
	}

	if err := dbHelpers.ReviewKYCSubmission(submissionID, decision, reqBody.Note); err != nil {
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusConflict, err, "Submission is not pending review")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to review submission")
		return
	}

	if decision == models.KYCApproved {
		if err := dbHelpers.SetHostVerified(submission.HostID, true); err != nil {
			utils.RespondError(w, http.StatusInternalServerError, err, "Failed to verify host")
			return
		}
	}

	go firebase.KYCDecisionNotification(int64(submission.HostID), submissionID, decision)

	utils.RespondJSON(w, http.StatusOK, models.Response{Success: true})
}
