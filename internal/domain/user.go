package domain

import "time"

type User struct {
	UserID    string
	Role      Role
	Username  string
	Email     string
	CreatedAt time.Time
}
