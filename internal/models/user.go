package models

// Role tags a user as one side of the marketplace.
type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleRecruiter
}

// User represents a marketplace participant, either a student or a recruiter.
// Password is stored as given and never serialized.
type User struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Password       string  `json:"-"`
	Role           Role    `json:"role"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Photo          *string `json:"photo"`
	About          *string `json:"about"`
	University     *string `json:"university"`
	Major          *string `json:"major"`
	GraduationYear *string `json:"graduationYear"`
	Company        *string `json:"company"`
	Location       *string `json:"location"`
}

func (u *User) Key() int64         { return u.ID }
func (u *User) AssignKey(id int64) { u.ID = id }

// UserWithSkills is a user decorated with the skills linked to it.
type UserWithSkills struct {
	User
	Skills []Skill `json:"skills"`
}
