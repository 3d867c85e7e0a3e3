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

// GetConnection retrieves a bank connection from DynamoDB by its ID.
func (s *Store) GetConnection(ctx context.Context, connectionID string) (*models.BankConnection, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": connectionID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal connection ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.ConnectionsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get connection from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrNotFound
	}

	var conn models.BankConnection
	if err := attributevalue.UnmarshalMap(result.Item, &conn); err != nil {
		return nil, fmt.Errorf("failed to unmarshal connection: %w", err)
	}

	return &conn, nil
}

// ListConnectionsByUserID retrieves all bank connections owned by a user.
func (s *Store) ListConnectionsByUserID(ctx context.Context, userID string) ([]models.BankConnection, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.ConnectionsTableName),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :userID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query connections by user ID: %w", err)
	}

	var connections []models.BankConnection
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &connections); err != nil {
		return nil, fmt.Errorf("failed to unmarshal connections: %w", err)
	}

	return connections, nil
}

// CreateConnection persists a newly linked bank connection.
func (s *Store) CreateConnection(ctx context.Context, conn *models.BankConnection) (*models.BankConnection, error) {
	now := time.Now()
	conn.CreatedAt = now
	conn.UpdatedAt = now
	if conn.Status == "" {
		conn.Status = models.ConnectionActive
	}

	item, err := attributevalue.MarshalMap(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal connection: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.ConnectionsTableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrConnectionExists
		}
		return nil, fmt.Errorf("failed to create connection in DynamoDB: %w", err)
	}

	return conn, nil
}

// UpdateConnectionStatus sets the connection status, e.g. degrading it to
// LOGIN_REQUIRED when the provider demands reauthentication.
func (s *Store) UpdateConnectionStatus(ctx context.Context, connectionID string, status models.ConnectionStatus) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.ConnectionsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: connectionID},
		},
		UpdateExpression:    aws.String("SET #status = :status, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":now":    nowAV,
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("failed to update connection status: %w", err)
	}

	return nil
}
