package domain

import "fmt"

// Privilege is the coarse role of an account.
type Privilege int

const (
	PrivilegeAdmin Privilege = 0
	PrivilegeUser  Privilege = 1
)

func (p Privilege) Valid() bool {
	return p == PrivilegeAdmin || p == PrivilegeUser
}

func (p Privilege) String() string {
	switch p {
	case PrivilegeAdmin:
		return "admin"
	case PrivilegeUser:
		return "user"
	default:
		return fmt.Sprintf("privilege(%d)", int(p))
	}
}

// User is an account. HashPwd is the client-supplied password digest and never leaves the server.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	HashPwd   string    `json:"-"`
	Privilege Privilege `json:"privilege"`
}
