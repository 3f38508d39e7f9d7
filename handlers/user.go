package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/rentloop/rentloop-server/dbHelpers"
	"github.com/rentloop/rentloop-server/firebase"
	"github.com/rentloop/rentloop-server/middlewares"
	"github.com/rentloop/rentloop-server/models"
	"github.com/rentloop/rentloop-server/utils"
)

// Register creates a user entry for a firebase-authenticated phone number
func Register(w http.ResponseWriter, r *http.Request) {
	reqBody := struct {
		Name  string          `json:"name"`
		Phone string          `json:"phone"`
		Role  models.UserRole `json:"role"`
	}{}
	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}

	if reqBody.Role != models.RoleRenter && reqBody.Role != models.RoleHost {
		utils.RespondError(w, http.StatusBadRequest, nil, "Role must be renter or host")
		return
	}

	jwtToken, err := firebase.FireAuthInstance.VerifyToken(r.Header.Get("Authorization"))
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "Authentication failed!")
		return
	}
	authID, err := firebase.GetAuthId(jwtToken)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to read auth id from token")
		return
	}

	existingID, err := dbHelpers.IsUserExist(authID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to check user existence")
		return
	}
	if existingID != 0 {
		user, err := dbHelpers.GetUserById(existingID)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get user")
			return
		}
		utils.RespondJSON(w, http.StatusOK, user)
		return
	}

	userID, err := dbHelpers.InsertUser(reqBody.Name, reqBody.Phone, authID, reqBody.Role)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to store user entry")
		return
	}

	user, err := dbHelpers.GetUserById(userID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get user")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, user)
}

// GetUserInfo returns the authenticated user's profile
func GetUserInfo(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, middlewares.UserContext(r))
}

// UpdateUserInfo updates the user's name and email
func UpdateUserInfo(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserContext(r)

	reqBody := struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}{}
	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}

	if reqBody.Email != "" {
		takenBy, err := dbHelpers.CheckIfEmailIsRegisteredToSomeoneElse(reqBody.Email, user.ID)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, err, "Failed to check email")
			return
		}
		if takenBy != 0 {
			utils.RespondError(w, http.StatusConflict, nil, "Email is already registered to another account")
			return
		}
	}

	if err := dbHelpers.ModifyUser(reqBody.Name, reqBody.Email, user.ID); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to update user")
		return
	}

	updated, err := dbHelpers.GetUserById(user.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get user")
		return
	}
	utils.RespondJSON(w, http.StatusOK, updated)
}

// UpdateFcmToken stores a device token for push notifications
func UpdateFcmToken(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserContext(r)

	reqBody := struct {
		Token string `json:"token"`
	}{}
	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}
	if reqBody.Token == "" {
		utils.RespondError(w, http.StatusBadRequest, nil, "Token can't be empty")
		return
	}

	if err := dbHelpers.UpdateFcmToken(user.ID, reqBody.Token); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to store fcm token")
		return
	}
	utils.RespondJSON(w, http.StatusOK, models.Response{Success: true})
}

// UploadProfileImage stores a new avatar and links it to the user
func UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserContext(r)

	_, fileBytes, fileName, err := utils.ReadFromFile(r, "image")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to read image from request")
		return
	}

	path, err := firebase.UploadToFirebase(fileBytes, fileName)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to upload image")
		return
	}

	imageID, err := dbHelpers.InsertImage(models.BucketLink, path, models.ImageTypeProfile)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to store image entry")
		return
	}

	if err := dbHelpers.UpdateProfileImage(user.ID, imageID); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to link profile image")
		return
	}

	imageInfo, err := dbHelpers.GetImageInfoById(imageID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get image info")
		return
	}
	imageURL, err := firebase.GetURL(imageInfo)
	if err != nil {
		logrus.Errorf("failed to sign url for image %d with error: %+v", imageID, err)
	}

	utils.RespondJSON(w, http.StatusCreated, struct {
		ImageID          int    `json:"imageId"`
		ProfileImageLink string `json:"profileImageLink"`
	}{ImageID: imageID, ProfileImageLink: imageURL})
}
