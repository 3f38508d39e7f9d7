package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/volatiletech/null"

	"github.com/rentloop/rentloop-server/dbHelpers"
	"github.com/rentloop/rentloop-server/firebase"
	"github.com/rentloop/rentloop-server/middlewares"
	"github.com/rentloop/rentloop-server/models"
	"github.com/rentloop/rentloop-server/utils"
)

// SubmitKYC files a host verification request for manual review
func SubmitKYC(w http.ResponseWriter, r *http.Request) {
	host := middlewares.UserContext(r)
	if host.HostVerified {
		utils.RespondError(w, http.StatusConflict, nil, "You are already verified")
		return
	}

	latest, err := dbHelpers.GetLatestKYCSubmissionForHost(host.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to check previous submissions")
		return
	}
	if latest != nil && latest.Status == models.KYCPending {
		utils.RespondError(w, http.StatusConflict, nil, "Your previous submission is still under review")
		return
	}

	reqBody := struct {
		DocumentType    models.KYCDocumentType `json:"documentType"`
		DocumentNumber  string                 `json:"documentNumber"`
		DocumentImageID null.Int               `json:"documentImageId"`
	}{}
	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}

	switch reqBody.DocumentType {
	case models.DocumentPassport, models.DocumentDrivingLicense, models.DocumentNationalID:
	default:
		utils.RespondError(w, http.StatusBadRequest, nil, "Unknown document type")
		return
	}
	if reqBody.DocumentNumber == "" {
		utils.RespondError(w, http.StatusBadRequest, nil, "Document number can't be empty")
		return
	}

	submissionID, err := dbHelpers.InsertKYCSubmission(host.ID, reqBody.DocumentType, reqBody.DocumentNumber, reqBody.DocumentImageID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to store kyc submission")
		return
	}

	submission, err := dbHelpers.GetKYCSubmissionById(submissionID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get kyc submission")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, submission)
}

// GetKYCStatus returns the host's most recent submission, if any
func GetKYCStatus(w http.ResponseWriter, r *http.Request) {
	host := middlewares.UserContext(r)

	submission, err := dbHelpers.GetLatestKYCSubmissionForHost(host.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get kyc submission")
		return
	}
	if submission == nil {
		utils.RespondJSON(w, http.StatusOK, struct {
			Submitted bool `json:"submitted"`
		}{Submitted: false})
		return
	}
	utils.RespondJSON(w, http.StatusOK, submission)
}

// UploadKYCDocument stores a document photo and returns the image id
func UploadKYCDocument(w http.ResponseWriter, r *http.Request) {
	_, fileBytes, fileName, err := utils.ReadFromFile(r, "document")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to read document from request")
		return
	}

	path, err := firebase.UploadToFirebase(fileBytes, fileName)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to upload document")
		return
	}

	imageID, err := dbHelpers.InsertImage(models.BucketLink, path, models.ImageTypeDocument)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to store image entry")
		return
	}

	logrus.Infof("kyc document uploaded as image %d", imageID)
	utils.RespondJSON(w, http.StatusCreated, struct {
		ImageID int `json:"imageId"`
	}{ImageID: imageID})
}
