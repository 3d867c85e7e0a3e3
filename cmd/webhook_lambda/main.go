package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/horizonfin/banking/pkg/notify"
	"github.com/horizonfin/banking/pkg/rail"
	"github.com/horizonfin/banking/pkg/rail/dwollaapi"
	dydbstore "github.com/horizonfin/banking/pkg/storage/dynamodb"
	"github.com/horizonfin/banking/pkg/transfer"
)

var engine *transfer.Engine

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")
	transfersTable := os.Getenv("DYNAMODB_TRANSFERS_TABLE_NAME")
	websocketsTable := os.Getenv("DYNAMODB_WEBSOCKETS_TABLE_NAME")

	if connectionsTable == "" || transactionsTable == "" || transfersTable == "" || websocketsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	store := dydbstore.New(dbClient, connectionsTable, transactionsTable, transfersTable, websocketsTable)

	railClient := dwollaapi.New(
		os.Getenv("RAIL_API_URL"),
		os.Getenv("RAIL_API_TOKEN"),
	)

	var publisher notify.Publisher = &notify.NoOpPublisher{}
	if endpoint := os.Getenv("WEBSOCKET_API_ENDPOINT"); endpoint != "" {
		publisher, err = notify.NewPublisher(store, store, endpoint)
		if err != nil {
			log.Fatalf("failed to create websocket publisher: %v", err)
		}
	}

	engine = transfer.NewEngine(store, railClient, publisher, logger)
}

// HandleRequest applies queued rail webhook events to their transfers.
// Events are idempotent to apply, so SQS redelivery is harmless.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var event rail.WebhookEvent
		if err := json.Unmarshal([]byte(message.Body), &event); err != nil {
			log.Printf("ERROR: failed to unmarshal webhook event from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		if err := engine.HandleWebhook(ctx, event); err != nil {
			log.Printf("ERROR: failed to handle webhook event %s: %v", event.Id, err)
			return err
		}

		log.Printf("Successfully handled webhook event %s", event.Id)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
