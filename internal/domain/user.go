package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type FullName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Profile is the client-facing view of a user. The password hash never
// leaves the service layer.
type Profile struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	FullName FullName  `json:"fullName"`
	Role     Role      `json:"role"`
	Address  []Address `json:"address"`
}

// Profile builds the public view of u with the given addresses. A nil slice
// is normalized to an empty one so clients always see a JSON array.
func (u *User) Profile(addresses []Address) *Profile {
	if addresses == nil {
		addresses = []Address{}
	}
	return &Profile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: FullName{FirstName: u.FirstName, LastName: u.LastName},
		Role:     u.Role,
		Address:  addresses,
	}
}

type Address struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"-" db:"user_id"`
	Street    string    `json:"street" db:"street"`
	City      string    `json:"city" db:"city"`
	State     string    `json:"state" db:"state"`
	Country   string    `json:"country" db:"country"`
	ZipCode   string    `json:"zipCode" db:"zip_code"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
