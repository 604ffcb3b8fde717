package withdrawal

import "courier-ledger/internal/entities"

func ToDomain(w *WithdrawalRequestDB) *entities.WithdrawalRequest {
	if w == nil {
		return nil
	}
	return &entities.WithdrawalRequest{
		ID:         w.ID,
		CourierID:  w.CourierID,
		Amount:     w.Amount,
		Method:     entities.WithdrawalMethod(w.Method),
		AccountRef: w.AccountRef,
		Status:     entities.WithdrawalStatus(w.Status),
		Notes:      w.Notes,
		CreatedAt:  w.CreatedAt,
		ReviewedAt: w.ReviewedAt,
		ReviewedBy: w.ReviewedBy,
	}
}

func ToDomainList(requests []WithdrawalRequestDB) []entities.WithdrawalRequest {
	result := make([]entities.WithdrawalRequest, 0, len(requests))
	for i := range requests {
		result = append(result, *ToDomain(&requests[i]))
	}
	return result
}
