package dbHelpers

import (
	"database/sql"

	"github.com/rentloop/rentloop-server/database"
	"github.com/rentloop/rentloop-server/models"
)

// InsertImage stores the bucket and path of an uploaded file
func InsertImage(bucket, path string, imageType models.ImageType) (int, error) {
	SQL := `INSERT INTO images(bucket, path, type)
            VALUES ($1, $2, $3)
            RETURNING id`
	var imageID int
	err := database.RentloopDB.Get(&imageID, SQL, bucket, path, imageType)
	return imageID, err
}

// GetImageInfoById returns bucket & path for a given image id
func GetImageInfoById(imageID int) (*models.Image, error) {
	SQL := `SELECT id, bucket, path, type
            FROM images
            WHERE id = $1`
	var imageInfo models.Image
	err := database.RentloopDB.Get(&imageInfo, SQL, imageID)
	if err != nil {
		return nil, err
	}
	return &imageInfo, nil
}

// GetImageInfoByUserID returns the profile image info for a user, nil if unset
func GetImageInfoByUserID(userID int) (*models.Image, error) {
	SQL := `SELECT i.id, i.bucket, i.path, i.type
            FROM images i
                     JOIN users u ON u.profile_image = i.id
            WHERE u.id = $1`
	var imageInfo models.Image
	err := database.RentloopDB.Get(&imageInfo, SQL, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &imageInfo, nil
}
