package firebase

import (
	"context"
	"fmt"

	"firebase.google.com/go/messaging"
	"github.com/sirupsen/logrus"

	"github.com/rentloop/rentloop-server/database"
	"github.com/rentloop/rentloop-server/models"
)

type MessageType string

const (
	MessageTypeRentalStatusUpdate = "RentalStatusUpdateNotification"
	MessageTypeKYCDecision        = "KYCDecisionNotification"
)

// RentalStatusUpdateNotification pushes a rental status change to the given user
func RentalStatusUpdateNotification(userID int64, rentalID int, status models.RentalStatus) {
	logrus.Infof("sending rental status notification to %d", userID)

	// language=SQL
	SQL := `
	SELECT token
	FROM fcm_token
	WHERE user_id = $1
`
	var registrationTokens []string
	err := database.RentloopDB.Select(&registrationTokens, SQL, userID)
	if err != nil || len(registrationTokens) == 0 {
		logrus.Errorf("no token found for userID %d rentalID = %d err: %v", userID, rentalID, err)
		return
	}

	content := ""
	switch status {
	case models.RentalConfirmed:
		content = "Your rental is confirmed"
	case models.RentalActive:
		content = "Your rental period has started"
	case models.RentalCompleted:
		content = "Your rental is completed"
	case models.RentalCancelled:
		content = "Your rental has been cancelled"
	default:
		content = "Your rental status has been updated"
	}
	message := &messaging.MulticastMessage{
		Data: map[string]string{
			"type":     MessageTypeRentalStatusUpdate,
			"title":    "Rental Status Update",
			"status":   string(status),
			"content":  content,
			"rentalId": fmt.Sprintf("%d", rentalID),
		},
		Tokens: registrationTokens,
	}

	if _, err := FirebaseClient.SendMulticast(context.Background(), message); err != nil {
		logrus.Errorf("RentalStatusUpdateNotification: Error while sending push notifications %v", err)
	}
}

// KYCDecisionNotification tells a host the outcome of a KYC review
func KYCDecisionNotification(hostID int64, submissionID int, status models.KYCStatus) {
	logrus.Infof("sending kyc decision notification to %d", hostID)

	// language=SQL
	SQL := `
	SELECT token
	FROM fcm_token
	WHERE user_id = $1
`
	var registrationTokens []string
	err := database.RentloopDB.Select(&registrationTokens, SQL, hostID)
	if err != nil || len(registrationTokens) == 0 {
		logrus.Errorf("no token found for hostID %d submissionID = %d err: %v", hostID, submissionID, err)
		return
	}

	content := "Your KYC submission has been reviewed"
	if status == models.KYCApproved {
		content = "Your KYC is approved, you can now list products"
	} else if status == models.KYCRejected {
		content = "Your KYC was rejected, please submit again"
	}

	message := &messaging.MulticastMessage{
		Data: map[string]string{
			"type":         MessageTypeKYCDecision,
			"title":        "KYC Verification",
			"status":       string(status),
			"content":      content,
			"submissionId": fmt.Sprintf("%d", submissionID),
		},
		Tokens: registrationTokens,
	}

	if _, err := FirebaseClient.SendMulticast(context.Background(), message); err != nil {
		logrus.Errorf("KYCDecisionNotification: Error while sending push notifications %v", err)
	}
}
