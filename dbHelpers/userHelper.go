package dbHelpers

import (
	"database/sql"

	"github.com/rentloop/rentloop-server/database"
	"github.com/rentloop/rentloop-server/models"
)

// IsUserExist returns the user id for a firebase auth id, 0 if none
func IsUserExist(authID string) (int, error) {
	SQL := `SELECT id
            FROM users
            WHERE auth_id = $1
              AND archived_at IS NULL`
	var userID int
	err := database.RentloopDB.Get(&userID, SQL, authID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return userID, nil
}

// InsertUser creates a new user entry in table
func InsertUser(name, phone, authID string, role models.UserRole) (int, error) {
	SQL := `INSERT INTO users(name, phone, auth_id, role)
            VALUES ($1, $2, $3, $4)
            RETURNING id`
	var userID int
	err := database.RentloopDB.Get(&userID, SQL, name, phone, authID, role)
	return userID, err
}

// GetUserById gets the user details for a given id
func GetUserById(userID int) (*models.User, error) {
	SQL := `SELECT id,
                   name,
                   phone,
                   email,
                   role,
                   host_verified,
                   rating,
                   profile_image,
                   created_at
            FROM users
            WHERE archived_at IS NULL
              AND id = $1`
	var user models.User
	err := database.RentloopDB.Get(&user, SQL, userID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByAuthId gets the user for a firebase auth id
func GetUserByAuthId(authID string) (*models.User, error) {
	SQL := `SELECT id,
                   name,
                   phone,
                   email,
                   role,
                   host_verified,
                   rating,
                   profile_image,
                   created_at
            FROM users
            WHERE archived_at IS NULL
              AND auth_id = $1`
	var user models.User
	err := database.RentloopDB.Get(&user, SQL, authID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckIfEmailIsRegisteredToSomeoneElse returns the owning user id if the email is taken
func CheckIfEmailIsRegisteredToSomeoneElse(email string, userID int) (int, error) {
	SQL := `SELECT id
            FROM users
            WHERE email = $1
              AND id != $2
              AND archived_at IS NULL`
	var existingID int
	err := database.RentloopDB.Get(&existingID, SQL, email, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return existingID, nil
}

// ModifyUser updates name and email for a given user
func ModifyUser(name, email string, userID int) error {
	SQL := `UPDATE users
            SET name  = $1,
                email = $2
            WHERE id = $3
              AND archived_at IS NULL`
	_, err := database.RentloopDB.Exec(SQL, name, email, userID)
	return err
}

// SetHostVerified flips the host verification flag after a KYC decision
func SetHostVerified(userID int, verified bool) error {
	SQL := `UPDATE users
            SET host_verified = $1
            WHERE id = $2
              AND archived_at IS NULL`
	_, err := database.RentloopDB.Exec(SQL, verified, userID)
	return err
}

// UpdateProfileImage links an uploaded image to a user
func UpdateProfileImage(userID, imageID int) error {
	SQL := `UPDATE users
            SET profile_image = $1
            WHERE id = $2
              AND archived_at IS NULL`
	_, err := database.RentloopDB.Exec(SQL, imageID, userID)
	return err
}

// UpdateFcmToken stores a device token for push notifications
func UpdateFcmToken(userID int, token string) error {
	SQL := `INSERT INTO fcm_token(user_id, token)
            VALUES ($1, $2)
            ON CONFLICT (user_id, token) DO NOTHING`
	_, err := database.RentloopDB.Exec(SQL, userID, token)
	return err
}

// GetUserCount returns the number of registered users for a role, all roles if empty
func GetUserCount(role models.UserRole) (int, error) {
	SQL := `SELECT count(*)
            FROM users
            WHERE archived_at IS NULL`
	if role != "" {
		SQL += ` AND role = $1`
		var count int
		err := database.RentloopDB.Get(&count, SQL, role)
		return count, err
	}
	var count int
	err := database.RentloopDB.Get(&count, SQL)
	return count, err
}

// GetVerifiedHostCount returns how many hosts passed KYC
func GetVerifiedHostCount() (int, error) {
	SQL := `SELECT count(*)
            FROM users
            WHERE archived_at IS NULL
              AND role = $1
              AND host_verified = TRUE`
	var count int
	err := database.RentloopDB.Get(&count, SQL, models.RoleHost)
	return count, err
}

// GetAllUsers returns every registered user, newest first
func GetAllUsers(limit, offset int) ([]models.User, error) {
	SQL := `SELECT id,
                   name,
                   phone,
                   email,
                   role,
                   host_verified,
                   rating,
                   profile_image,
                   created_at
            FROM users
            WHERE archived_at IS NULL
            ORDER BY created_at DESC
            LIMIT $1 OFFSET $2`
	users := make([]models.User, 0)
	err := database.RentloopDB.Select(&users, SQL, limit, offset)
	if err != nil {
		return nil, err
	}
	return users, nil
}
