package domain

type Role string

const (
	RoleOwner  Role = "owner"
	RoleRenter Role = "renter"
)

// User is the full registered record as held in the users list.
// Password is stored in plain text; see DESIGN.md.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       Role   `json:"role"`
	IsVerified bool   `json:"isVerified"`
	Password   string `json:"password,omitempty"`
}

// PublicUser is the secret-free projection kept as the current session user.
type PublicUser struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       Role   `json:"role"`
	IsVerified bool   `json:"isVerified"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       u.Role,
		IsVerified: u.IsVerified,
	}
}

// SignupRequest carries every User field except the generated ID.
type SignupRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       Role   `json:"role"`
	IsVerified bool   `json:"isVerified"`
	Password   string `json:"password"`
}

// Contact prefers the phone number, else the email.
func (u PublicUser) Contact() string {
	if u.Phone != "" {
		return u.Phone
	}
	return u.Email
}
