package dbHelpers

import (
	"database/sql"
	"time"

	"github.com/volatiletech/null"

	"github.com/rentloop/rentloop-server/database"
	"github.com/rentloop/rentloop-server/models"
)

// InsertKYCSubmission stores a new host verification request
func InsertKYCSubmission(hostID int, documentType models.KYCDocumentType, documentNumber string, documentImageID null.Int) (int, error) {
	SQL := `INSERT INTO kyc_submissions(host_id, document_type, document_number, document_image)
            VALUES ($1, $2, $3, $4)
            RETURNING id`
	var submissionID int
	err := database.RentloopDB.Get(&submissionID, SQL, hostID, documentType, documentNumber, documentImageID)
	return submissionID, err
}

// GetKYCSubmissionById gets one submission
func GetKYCSubmissionById(submissionID int) (*models.KYCSubmission, error) {
	SQL := `SELECT k.id,
                   k.host_id,
                   u.name AS host_name,
                   k.document_type,
                   k.document_number,
                   k.document_image,
                   k.status,
                   k.review_note,
                   k.created_at,
                   k.reviewed_at
            FROM kyc_submissions k
                     JOIN users u ON u.id = k.host_id
            WHERE k.id = $1`
	var submission models.KYCSubmission
	err := database.RentloopDB.Get(&submission, SQL, submissionID)
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// GetLatestKYCSubmissionForHost returns a host's most recent submission, nil if none
func GetLatestKYCSubmissionForHost(hostID int) (*models.KYCSubmission, error) {
	SQL := `SELECT k.id,
                   k.host_id,
                   u.name AS host_name,
                   k.document_type,
                   k.document_number,
                   k.document_image,
                   k.status,
                   k.review_note,
                   k.created_at,
                   k.reviewed_at
            FROM kyc_submissions k
                     JOIN users u ON u.id = k.host_id
            WHERE k.host_id = $1
            ORDER BY k.created_at DESC
            LIMIT 1`
	var submission models.KYCSubmission
	err := database.RentloopDB.Get(&submission, SQL, hostID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &submission, nil
}

// GetKYCSubmissionsByStatus lists submissions awaiting or past review
func GetKYCSubmissionsByStatus(status models.KYCStatus) ([]models.KYCSubmission, error) {
	SQL := `SELECT k.id,
                   k.host_id,
                   u.name AS host_name,
                   k.document_type,
                   k.document_number,
                   k.document_image,
                   k.status,
                   k.review_note,
                   k.created_at,
                   k.reviewed_at
            FROM kyc_submissions k
                     JOIN users u ON u.id = k.host_id
            WHERE k.status = $1
            ORDER BY k.created_at`
	submissions := make([]models.KYCSubmission, 0)
	err := database.RentloopDB.Select(&submissions, SQL, status)
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

// ReviewKYCSubmission records an admin decision on a pending submission
func ReviewKYCSubmission(submissionID int, status models.KYCStatus, reviewNote null.String) error {
	SQL := `UPDATE kyc_submissions
            SET status      = $1,
                review_note = $2,
                reviewed_at = $3
            WHERE id = $4
              AND status = $5`
	result, err := database.RentloopDB.Exec(SQL, status, reviewNote, time.Now(), submissionID, models.KYCPending)
	if err != nil {
		return err
	}
	affectedCount, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affectedCount == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetPendingKYCCount counts submissions waiting for review
func GetPendingKYCCount() (int, error) {
	SQL := `SELECT count(*)
            FROM kyc_submissions
            WHERE status = $1`
	var count int
	err := database.RentloopDB.Get(&count, SQL, models.KYCPending)
	return count, err
}
