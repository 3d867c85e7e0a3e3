package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/horizonfin/banking/pkg/storage"
)

// AcquireSyncLock atomically flips the connection's in-flight marker from
// false to true. A second sync trigger while one is in flight fails the
// condition and gets ErrSyncInProgress, which guarantees two sync passes
// never interleave cursor writes for the same connection.
func (s *Store) AcquireSyncLock(ctx context.Context, connectionID string) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.ConnectionsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: connectionID},
		},
		UpdateExpression:    aws.String("SET sync_in_flight = :true"),
		ConditionExpression: aws.String("attribute_exists(id) AND (attribute_not_exists(sync_in_flight) OR sync_in_flight = :false)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":  &types.AttributeValueMemberBOOL{Value: true},
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			// Either the connection does not exist or the lock is held.
			if _, getErr := s.GetConnection(ctx, connectionID); getErr != nil {
				return getErr
			}
			return storage.ErrSyncInProgress
		}
		return fmt.Errorf("failed to acquire sync lock: %w", err)
	}

	return nil
}

// ReleaseSyncLock clears the in-flight marker. It is unconditional so a
// release after a failed sync always succeeds.
func (s *Store) ReleaseSyncLock(ctx context.Context, connectionID string) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.ConnectionsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: connectionID},
		},
		UpdateExpression: aws.String("SET sync_in_flight = :false"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to release sync lock: %w", err)
	}

	return nil
}
