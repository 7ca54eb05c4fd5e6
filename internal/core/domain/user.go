package domain

import (
	"errors"
	"time"
)

const (
	// RoleOperator may edit payment status and tracking numbers on any order.
	RoleOperator = "operator"
	// RoleCustomer may submit orders and see only their own.
	RoleCustomer = "customer"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	FullName     string    `json:"full_name,omitempty" bson:"full_name,omitempty"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
