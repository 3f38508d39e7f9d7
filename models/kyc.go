package models

import (
	"time"

	"github.com/volatiletech/null"
)

type KYCStatus string
type KYCDocumentType string

const (
	KYCPending  KYCStatus = "pending"
	KYCApproved KYCStatus = "approved"
	KYCRejected KYCStatus = "rejected"
)

const (
	DocumentPassport       KYCDocumentType = "passport"
	DocumentDrivingLicense KYCDocumentType = "driving-license"
	DocumentNationalID     KYCDocumentType = "national-id"
)

type KYCSubmission struct {
	ID                int             `json:"id" db:"id"`
	HostID            int             `json:"hostID" db:"host_id"`
	HostName          null.String     `json:"hostName" db:"host_name"`
	DocumentType      KYCDocumentType `json:"documentType" db:"document_type"`
	DocumentNumber    string          `json:"documentNumber" db:"document_number"`
	DocumentImageID   null.Int        `json:"-" db:"document_image"`
	DocumentImageLink string          `json:"documentImageLink" db:"-"`
	Status            KYCStatus       `json:"status" db:"status"`
	ReviewNote        null.String     `json:"reviewNote" db:"review_note"`
	CreatedAt         time.Time       `json:"createdAt" db:"created_at"`
	ReviewedAt        null.Time       `json:"reviewedAt" db:"reviewed_at"`
}

type DashboardStats struct {
	UserCount        int     `json:"userCount"`
	HostCount        int     `json:"hostCount"`
	VerifiedHosts    int     `json:"verifiedHosts"`
	PendingKYC       int     `json:"pendingKYC"`
	TotalProducts    int     `json:"totalProducts"`
	PendingRentals   int     `json:"pendingRentals"`
	ActiveRentals    int     `json:"activeRentals"`
	CompletedRentals int     `json:"completedRentals"`
	TotalRevenue     float64 `json:"totalRevenue"`
}
