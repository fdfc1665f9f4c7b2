package types

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is one investigator account. OEC is the 6-digit personal number
// that doubles as the owner identity on reports.
type User struct {
	OEC          string `json:"oec"`
	Role         string `json:"role"`
	PasswordHash string `json:"password_hash"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Region       string `json:"region"`
	Workplace    string `json:"workplace"`
	Active       bool   `json:"active"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidateOwnerID checks the 6-digit OEC format. Rejected input never
// reaches the store; this is a distinct condition from storage errors.
func ValidateOwnerID(oec string) error {
	if len(oec) != 6 {
		return ErrInvalidOwnerID
	}
	for _, c := range oec {
		if c < '0' || c > '9' {
			return ErrInvalidOwnerID
		}
	}
	return nil
}
