package courier

import "time"

type CourierDB struct {
	ID        int64
	UserID    string
	Name      string
	Phone     string
	Approved  bool
	Available bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
