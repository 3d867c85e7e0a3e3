package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/horizonfin/banking/pkg/models"
	"github.com/horizonfin/banking/pkg/storage"
	"github.com/horizonfin/banking/pkg/storage/dynamodb/mocks"
)

func TestGetTransferByRailId(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TransfersTableName: "transfers"}

		transfer := models.Transfer{Id: "tf-1", RailTransferId: "dwolla-tf-9", Status: models.TransferProcessing}
		transferAV, _ := attributevalue.MarshalMap(&transfer)
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return *input.IndexName == railTransferIDIndex
		})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{transferAV}}, nil)

		result, err := store.GetTransferByRailId(context.Background(), "dwolla-tf-9")

		assert.NoError(t, err)
		assert.Equal(t, "tf-1", result.Id)
		mockClient.AssertExpectations(t)
	})

	t.Run("Unknown Rail Id", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TransfersTableName: "transfers"}

		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{Items: nil}, nil)

		_, err := store.GetTransferByRailId(context.Background(), "unknown")

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})
}

func TestListTransfersByUserID(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, TransfersTableName: "transfers"}

	transfers := []models.Transfer{
		{Id: "tf-2", UserId: "user1"},
		{Id: "tf-1", UserId: "user1"},
	}
	items := make([]map[string]types.AttributeValue, len(transfers))
	for i := range transfers {
		items[i], _ = attributevalue.MarshalMap(&transfers[i])
	}
	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		return *input.IndexName == userIDIndex && !*input.ScanIndexForward
	})).Return(&dynamodb.QueryOutput{Items: items}, nil)

	result, err := store.ListTransfersByUserID(context.Background(), "user1")

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "tf-2", result[0].Id)
	mockClient.AssertExpectations(t)
}

func TestGetStuckTransfers(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, TransfersTableName: "transfers"}

	stuck := models.Transfer{Id: "tf-old", Status: models.TransferProcessing, CreatedAt: time.Now().Add(-2 * time.Hour)}
	stuckAV, _ := attributevalue.MarshalMap(&stuck)
	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		status, ok := input.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS)
		return ok && status.Value == string(models.TransferProcessing) &&
			*input.IndexName == statusCreatedAtIndex
	})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{stuckAV}}, nil)

	result, err := store.GetStuckTransfers(context.Background(), time.Hour)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "tf-old", result[0].Id)
	mockClient.AssertExpectations(t)
}
