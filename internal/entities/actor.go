package entities

type Role string

const (
	RoleCourier Role = "courier"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleCourier || r == RoleAdmin
}

// Actor - аутентифицированный пользователь, от имени которого выполняется запрос.
type Actor struct {
	UserID string
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
