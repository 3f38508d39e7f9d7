package dbHelpers

import (
	"github.com/rentloop/rentloop-server/database"
	"github.com/rentloop/rentloop-server/models"
)

// GetAdminByEmail gets the admin account for a login attempt
func GetAdminByEmail(email string) (*models.AdminUser, error) {
	SQL := `SELECT id,
                   name,
                   email,
                   password,
                   created_at
            FROM admins
            WHERE email = $1`
	var admin models.AdminUser
	err := database.RentloopDB.Get(&admin, SQL, email)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
