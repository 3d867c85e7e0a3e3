package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/horizonfin/banking/pkg/models"
	"github.com/horizonfin/banking/pkg/storage"
	"github.com/horizonfin/banking/pkg/storage/dynamodb/mocks"
)

func TestAcquireSyncLock(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ConnectionsTableName: "connections"}

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return *input.ConditionExpression == "attribute_exists(id) AND (attribute_not_exists(sync_in_flight) OR sync_in_flight = :false)"
		})).Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.AcquireSyncLock(context.Background(), "conn-1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already In Flight", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ConnectionsTableName: "connections"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		connAV, _ := attributevalue.MarshalMap(models.BankConnection{Id: "conn-1", SyncInFlight: true})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: connAV}, nil)

		err := store.AcquireSyncLock(context.Background(), "conn-1")

		assert.ErrorIs(t, err, storage.ErrSyncInProgress)
		mockClient.AssertExpectations(t)
	})

	t.Run("Connection Missing", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ConnectionsTableName: "connections"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		err := store.AcquireSyncLock(context.Background(), "missing")

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ConnectionsTableName: "connections"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, errors.New("update failed"))

		err := store.AcquireSyncLock(context.Background(), "conn-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to acquire sync lock")
		mockClient.AssertExpectations(t)
	})
}

func TestReleaseSyncLock(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ConnectionsTableName: "connections"}

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			// The release is unconditional so a failed sync can always clean up.
			return input.ConditionExpression == nil
		})).Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.ReleaseSyncLock(context.Background(), "conn-1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})
}
