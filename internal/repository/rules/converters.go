package rules

import "courier-ledger/internal/entities"

func ToDomain(r *RuleRecordDB) *entities.RuleRecord {
	if r == nil {
		return nil
	}
	return &entities.RuleRecord{
		ID:        r.ID,
		Key:       entities.RuleKey(r.Key),
		Value:     r.Value,
		UpdatedBy: r.UpdatedBy,
		CreatedAt: r.CreatedAt,
	}
}

func ToDomainList(records []RuleRecordDB) []entities.RuleRecord {
	result := make([]entities.RuleRecord, 0, len(records))
	for i := range records {
		result = append(result, *ToDomain(&records[i]))
	}
	return result
}
