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

func (s *Store) GetTransfer(ctx context.Context, transferID string) (*models.Transfer, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.TransfersTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: transferID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	if result.Item == nil {
		return nil, storage.ErrNotFound
	}

	var transfer models.Transfer
	if err := attributevalue.UnmarshalMap(result.Item, &transfer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transfer: %w", err)
	}

	return &transfer, nil
}

// GetTransferByRailId resolves the rail's transfer id back to our record.
// Webhooks identify transfers by the rail id, not ours.
func (s *Store) GetTransferByRailId(ctx context.Context, railTransferID string) (*models.Transfer, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.TransfersTableName),
		IndexName:              aws.String(railTransferIDIndex),
		KeyConditionExpression: aws.String("rail_transfer_id = :rail_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rail_id": &types.AttributeValueMemberS{Value: railTransferID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query transfer by rail id: %w", err)
	}
	if len(result.Items) == 0 {
		return nil, storage.ErrNotFound
	}

	var transfer models.Transfer
	if err := attributevalue.UnmarshalMap(result.Items[0], &transfer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transfer: %w", err)
	}

	return &transfer, nil
}

func (s *Store) ListTransfersByUserID(ctx context.Context, userID string) ([]models.Transfer, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.TransfersTableName),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :user_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers by user: %w", err)
	}

	var transfers []models.Transfer
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &transfers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transfers: %w", err)
	}

	return transfers, nil
}

// GetStuckTransfers returns PROCESSING transfers older than maxAge. The
// reconciliation sweep re-queries the rail for these in case the terminal
// webhook was lost.
func (s *Store) GetStuckTransfers(ctx context.Context, maxAge time.Duration) ([]models.Transfer, error) {
	cutoff := time.Now().Add(-maxAge)
	cutoffAV, err := attributevalue.Marshal(cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff timestamp: %w", err)
	}

	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.TransfersTableName),
		IndexName:              aws.String(statusCreatedAtIndex),
		KeyConditionExpression: aws.String("#status = :status AND created_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.TransferProcessing)},
			":cutoff": cutoffAV,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query stuck transfers: %w", err)
	}

	var transfers []models.Transfer
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &transfers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stuck transfers: %w", err)
	}

	return transfers, nil
}
