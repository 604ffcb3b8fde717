package courier

import (
	"context"
	"fmt"

	"courier-ledger/internal/entities"
)

// Courier дает доступ к реестру курьеров: кто привязан к пользователю и допущен ли он к работе.
type Courier struct {
	repository Repository
}

func New(repository Repository) *Courier {
	return &Courier{
		repository: repository,
	}
}

func (s *Courier) GetCourierByID(ctx context.Context, id int64) (*entities.Courier, error) {
	if id <= 0 {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	return courier, nil
}

func (s *Courier) GetCourierByUserID(ctx context.Context, userID string) (*entities.Courier, error) {
	if !isValidUserID(userID) {
		return nil, ErrInvalidUserID
	}

	courier, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get courier by user: %w", err)
	}
	return courier, nil
}

// GetApprovedCourier возвращает курьера пользователя, только если администратор его одобрил.
// Пользователь без записи курьера получает ErrCourierNotFound.
func (s *Courier) GetApprovedCourier(ctx context.Context, userID string) (*entities.Courier, error) {
	courier, err := s.GetCourierByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !courier.Approved {
		return nil, ErrCourierNotApproved
	}
	return courier, nil
}

// LockCourier берет строку курьера FOR UPDATE. Вызывать только внутри транзакции:
// так сериализуются конкурентные операции одного курьера.
func (s *Courier) LockCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	if id <= 0 {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.LockByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lock courier: %w", err)
	}
	return courier, nil
}
