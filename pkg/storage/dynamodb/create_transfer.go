package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/horizonfin/banking/pkg/models"
	"github.com/horizonfin/banking/pkg/storage"
)

// CreateTransfer writes the transfer and its transaction legs in a single
// DynamoDB transaction. Either every row lands or none do; a transfer can
// never exist without its ledger legs.
func (s *Store) CreateTransfer(ctx context.Context, transfer *models.Transfer, legs []models.Transaction) (*models.Transfer, error) {
	now := time.Now()
	transfer.CreatedAt = now
	transfer.UpdatedAt = now
	for i := range legs {
		legs[i].CreatedAt = now
		legs[i].UpdatedAt = now
	}

	transferAV, err := attributevalue.MarshalMap(transfer)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transfer: %w", err)
	}

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(s.TransfersTableName),
				Item:                transferAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		},
	}

	for i := range legs {
		legAV, err := attributevalue.MarshalMap(&legs[i])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal transfer leg: %w", err)
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(s.TransactionsTableName),
				Item:                legAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		})
	}

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var txCanceled *types.TransactionCanceledException
		if errors.As(err, &txCanceled) {
			for _, reason := range txCanceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return nil, storage.ErrTransferExists
				}
			}
		}
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	return transfer, nil
}
