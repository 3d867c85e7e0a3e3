package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/horizonfin/banking/pkg/models"
	"github.com/horizonfin/banking/pkg/storage"
	"github.com/horizonfin/banking/pkg/storage/dynamodb/mocks"
)

func TestApplySyncPage(t *testing.T) {
	page := storage.SyncPage{
		Upserts: []models.Transaction{
			{
				Id:               "plaid-tx-1",
				BankConnectionId: "conn-1",
				AccountId:        "acc-1",
				AmountCents:      1250,
				Currency:         "USD",
				Name:             "Coffee Shop",
				Date:             time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
				Status:           models.TransactionSuccess,
				Type:             models.TypeDebit,
				ExternalId:       "plaid-tx-1",
			},
		},
		RemovedIds: []string{"plaid-tx-gone"},
		NextCursor: "cursor-2",
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ConnectionsTableName: "connections", TransactionsTableName: "transactions"}

		// Upsert keeps the original created_at on replay.
		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return *input.TableName == "transactions" &&
				assert.ObjectsAreEqual(&types.AttributeValueMemberS{Value: "plaid-tx-1"}, input.Key["id"])
		})).Return(&dynamodb.UpdateItemOutput{}, nil).Once()

		mockClient.On("DeleteItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.DeleteItemInput) bool {
			return assert.ObjectsAreEqual(&types.AttributeValueMemberS{Value: "plaid-tx-gone"}, input.Key["id"])
		})).Return(&dynamodb.DeleteItemOutput{}, nil).Once()

		// Cursor commit only lands while the lock is held.
		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return *input.TableName == "connections" &&
				*input.ConditionExpression == "sync_in_flight = :true"
		})).Return(&dynamodb.UpdateItemOutput{}, nil).Once()

		err := store.ApplySyncPage(context.Background(), "conn-1", page)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Lock Lost Before Cursor Commit", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ConnectionsTableName: "connections", TransactionsTableName: "transactions"}

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return *input.TableName == "transactions"
		})).Return(&dynamodb.UpdateItemOutput{}, nil).Once()
		mockClient.On("DeleteItem", mock.Anything, mock.Anything).Return(&dynamodb.DeleteItemOutput{}, nil).Once()
		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return *input.TableName == "connections"
		})).Return(nil, &types.ConditionalCheckFailedException{}).Once()

		err := store.ApplySyncPage(context.Background(), "conn-1", page)

		assert.ErrorIs(t, err, storage.ErrSyncInProgress)
		mockClient.AssertExpectations(t)
	})

	t.Run("Upsert Failure Stops The Page", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ConnectionsTableName: "connections", TransactionsTableName: "transactions"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, errors.New("update failed")).Once()

		err := store.ApplySyncPage(context.Background(), "conn-1", page)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upsert transaction")
		mockClient.AssertExpectations(t)
	})
}
