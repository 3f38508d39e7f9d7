package models

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/volatiletech/null"
)

type UserRole string

const (
	RoleRenter UserRole = "renter"
	RoleHost   UserRole = "host"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	ID               int         `json:"id" db:"id"`
	Name             null.String `json:"name" db:"name"`
	Phone            string      `json:"phone" db:"phone"`
	Email            null.String `json:"email" db:"email"`
	Role             UserRole    `json:"role" db:"role"`
	HostVerified     bool        `json:"hostVerified" db:"host_verified"`
	Rating           float64     `json:"rating" db:"rating"`
	ProfileImageID   null.Int    `json:"-" db:"profile_image"`
	ProfileImageLink string      `json:"profileImageLink" db:"-"`
	CreatedAt        time.Time   `json:"-" db:"created_at"`
}

type AdminUser struct {
	ID        int         `json:"id" db:"id"`
	Name      null.String `json:"name" db:"name"`
	Email     string      `json:"email" db:"email"`
	Password  string      `json:"-" db:"password"`
	CreatedAt time.Time   `json:"-" db:"created_at"`
}

type AdminCred struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type JWTClaims struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	jwt.StandardClaims
}

type Response struct {
	Success bool `json:"success"`
}
