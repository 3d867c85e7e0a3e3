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

// ApplySyncPage writes one page of provider deltas and then advances the
// connection's cursor. Upserts are keyed by the provider transaction id so
// re-applying the same page after a partial failure converges on the same
// rows. The cursor write is conditional on the sync lock still being held;
// a crash before it leaves the cursor unchanged and the page is reprocessed
// on the next attempt.
func (s *Store) ApplySyncPage(ctx context.Context, bankConnectionID string, page storage.SyncPage) error {
	now := time.Now()

	for i := range page.Upserts {
		if err := s.upsertProviderTransaction(ctx, &page.Upserts[i], now); err != nil {
			return fmt.Errorf("failed to upsert transaction %s: %w", page.Upserts[i].Id, err)
		}
	}

	for _, removedID := range page.RemovedIds {
		if err := s.deleteProviderTransaction(ctx, removedID); err != nil {
			return fmt.Errorf("failed to remove transaction %s: %w", removedID, err)
		}
	}

	return s.commitCursor(ctx, bankConnectionID, page.NextCursor, now)
}

// upsertProviderTransaction inserts or updates a provider-sourced row in
// place. created_at survives re-ingestion via if_not_exists.
func (s *Store) upsertProviderTransaction(ctx context.Context, tx *models.Transaction, now time.Time) error {
	amountAV, err := attributevalue.Marshal(tx.AmountCents)
	if err != nil {
		return fmt.Errorf("failed to marshal amount: %w", err)
	}
	dateAV, err := attributevalue.Marshal(tx.Date)
	if err != nil {
		return fmt.Errorf("failed to marshal date: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TransactionsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: tx.Id},
		},
		UpdateExpression: aws.String(
			"SET bank_connection_id = :conn, account_id = :account, amount_cents = :amount, " +
				"currency = :currency, #name = :name, merchant_name = :merchant, #date = :date, " +
				"#status = :status, category = :category, channel = :channel, pending = :pending, " +
				"#type = :type, external_id = :external, " +
				"created_at = if_not_exists(created_at, :now), updated_at = :now",
		),
		ExpressionAttributeNames: map[string]string{
			"#name":   "name",
			"#date":   "date",
			"#status": "status",
			"#type":   "type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":conn":     &types.AttributeValueMemberS{Value: tx.BankConnectionId},
			":account":  &types.AttributeValueMemberS{Value: tx.AccountId},
			":amount":   amountAV,
			":currency": &types.AttributeValueMemberS{Value: tx.Currency},
			":name":     &types.AttributeValueMemberS{Value: tx.Name},
			":merchant": &types.AttributeValueMemberS{Value: tx.MerchantName},
			":date":     dateAV,
			":status":   &types.AttributeValueMemberS{Value: string(tx.Status)},
			":category": &types.AttributeValueMemberS{Value: tx.Category},
			":channel":  &types.AttributeValueMemberS{Value: tx.Channel},
			":pending":  &types.AttributeValueMemberBOOL{Value: tx.Pending},
			":type":     &types.AttributeValueMemberS{Value: string(tx.Type)},
			":external": &types.AttributeValueMemberS{Value: tx.ExternalId},
			":now":      nowAV,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert item: %w", err)
	}

	return nil
}

// deleteProviderTransaction removes a row the provider disavowed. Deleting
// an id that was already removed is a no-op, keeping page replay idempotent.
func (s *Store) deleteProviderTransaction(ctx context.Context, txID string) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.TransactionsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: txID},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}

// commitCursor persists the new cursor and last-synced timestamp, only if
// this sync still holds the lock.
func (s *Store) commitCursor(ctx context.Context, connectionID, cursor string, now time.Time) error {
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.ConnectionsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: connectionID},
		},
		UpdateExpression:    aws.String("SET sync_cursor = :cursor, last_synced_at = :now, updated_at = :now"),
		ConditionExpression: aws.String("sync_in_flight = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cursor": &types.AttributeValueMemberS{Value: cursor},
			":now":    nowAV,
			":true":   &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrSyncInProgress
		}
		return fmt.Errorf("failed to commit sync cursor: %w", err)
	}

	return nil
}
