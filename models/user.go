package models

// User is an account record. Passwords are stored and compared in
// plaintext against the mock store; this mirrors the data the frontend
// expects and is not an auth design.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

func (u User) GetID() int { return u.ID }
