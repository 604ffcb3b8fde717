package courier

import (
	"courier-ledger/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	return &entities.Courier{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Phone:     c.Phone,
		Approved:  c.Approved,
		Available: c.Available,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
