package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/horizonfin/banking/pkg/models"
	"github.com/horizonfin/banking/pkg/storage"
)

func (s *Store) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.TransactionsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: transactionID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if result.Item == nil {
		return nil, storage.ErrNotFound
	}

	var transaction models.Transaction
	if err := attributevalue.UnmarshalMap(result.Item, &transaction); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transaction: %w", err)
	}

	return &transaction, nil
}

// ListTransactions queries the connection+date index, newest first. Status
// filtering happens server side via a filter expression; offset is applied
// after the query since DynamoDB has no native skip.
func (s *Store) ListTransactions(ctx context.Context, params storage.ListTransactionsParams) ([]models.Transaction, error) {
	input := &dynamodb.QueryInput{
		TableName:        aws.String(s.TransactionsTableName),
		IndexName:        aws.String(connectionDateIndex),
		ScanIndexForward: aws.Bool(false),
		ExpressionAttributeNames: map[string]string{
			"#date": "date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":conn": &types.AttributeValueMemberS{Value: params.BankConnectionId},
		},
	}

	// Dates are stored as RFC3339 timestamps. The end bound is pushed to
	// the last instant of the end day so the day itself stays inclusive.
	keyCondition := "bank_connection_id = :conn"
	if !params.StartDate.IsZero() {
		startAV, err := attributevalue.Marshal(params.StartDate)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal start date: %w", err)
		}
		input.ExpressionAttributeValues[":start"] = startAV
	}
	if !params.EndDate.IsZero() {
		endAV, err := attributevalue.Marshal(params.EndDate.AddDate(0, 0, 1).Add(-time.Nanosecond))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal end date: %w", err)
		}
		input.ExpressionAttributeValues[":end"] = endAV
	}
	switch {
	case !params.StartDate.IsZero() && !params.EndDate.IsZero():
		keyCondition += " AND #date BETWEEN :start AND :end"
	case !params.StartDate.IsZero():
		keyCondition += " AND #date >= :start"
	case !params.EndDate.IsZero():
		keyCondition += " AND #date <= :end"
	}
	input.KeyConditionExpression = aws.String(keyCondition)

	if params.Status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames["#status"] = "status"
		input.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(params.Status)}
	}

	transactions := []models.Transaction{}
	var lastKey map[string]types.AttributeValue
	for {
		input.ExclusiveStartKey = lastKey

		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query transactions: %w", err)
		}

		var page []models.Transaction
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
		}
		transactions = append(transactions, page...)

		lastKey = result.LastEvaluatedKey
		if lastKey == nil {
			break
		}
		if params.Limit > 0 && len(transactions) >= int(params.Offset+params.Limit) {
			break
		}
	}

	// DynamoDB has no native skip, so the offset is applied in memory.
	if params.Offset > 0 {
		if int(params.Offset) >= len(transactions) {
			return []models.Transaction{}, nil
		}
		transactions = transactions[params.Offset:]
	}
	if params.Limit > 0 && len(transactions) > int(params.Limit) {
		transactions = transactions[:params.Limit]
	}

	return transactions, nil
}

// ListPendingTransferLegs returns the in-flight internal ledger rows for a
// connection. Provider-sourced rows carry an external id and are excluded;
// they already show up in the bank's own balance.
func (s *Store) ListPendingTransferLegs(ctx context.Context, bankConnectionID string) ([]models.Transaction, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.TransactionsTableName),
		IndexName:              aws.String(connectionDateIndex),
		KeyConditionExpression: aws.String("bank_connection_id = :conn"),
		FilterExpression: aws.String(
			"#status IN (:pending, :processing) AND (attribute_not_exists(external_id) OR external_id = :empty)",
		),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":conn":       &types.AttributeValueMemberS{Value: bankConnectionID},
			":pending":    &types.AttributeValueMemberS{Value: string(models.TransactionPending)},
			":processing": &types.AttributeValueMemberS{Value: string(models.TransactionProcessing)},
			":empty":      &types.AttributeValueMemberS{Value: ""},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query pending transfer legs: %w", err)
	}

	var legs []models.Transaction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &legs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transfer legs: %w", err)
	}

	return legs, nil
}
