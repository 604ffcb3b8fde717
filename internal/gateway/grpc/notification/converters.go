package notification

import (
	"fmt"

	"courier-ledger/internal/entities"

	"google.golang.org/protobuf/types/known/structpb"
)

func toProto(n entities.Notification) (*structpb.Struct, error) {
	data := make(map[string]any, len(n.Data))
	for k, v := range n.Data {
		data[k] = v
	}

	msg, err := structpb.NewStruct(map[string]any{
		"audience":     n.Audience.String(),
		"recipient_id": n.RecipientID,
		"title":        n.Title,
		"body":         n.Body,
		"data":         data,
	})
	if err != nil {
		return nil, fmt.Errorf("build notification struct: %w", err)
	}
	return msg, nil
}
