package entities

import (
	"time"
)

// Courier - запись реестра курьеров. Профиль ведет внешний модуль, здесь важны связь с пользователем и допуск.
type Courier struct {
	ID        int64
	UserID    string
	Name      string
	Phone     string
	Approved  bool
	Available bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
