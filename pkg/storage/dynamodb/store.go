package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/horizonfin/banking/pkg/storage"
)

// DynamoDBAPI defines the subset of the DynamoDB client used by the Store.
// Tests substitute a mock for this interface.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client                        DynamoDBAPI
	ConnectionsTableName          string
	TransactionsTableName         string
	TransfersTableName            string
	WebsocketConnectionsTableName string
}

// New creates a new Store.
func New(client DynamoDBAPI, connectionsTable, transactionsTable, transfersTable, websocketsTable string) *Store {
	return &Store{
		Client:                        client,
		ConnectionsTableName:          connectionsTable,
		TransactionsTableName:         transactionsTable,
		TransfersTableName:            transfersTable,
		WebsocketConnectionsTableName: websocketsTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// Global secondary index names.
const (
	userIDIndex          = "user_id-index"
	connectionDateIndex  = "bank_connection_id-date-index"
	railTransferIDIndex  = "rail_transfer_id-index"
	statusCreatedAtIndex = "status-created_at-index"
)
