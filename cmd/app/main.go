package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"

	"github.com/horizonfin/banking/pkg/balance"
	"github.com/horizonfin/banking/pkg/handlers"
	"github.com/horizonfin/banking/pkg/ledger/plaidapi"
	"github.com/horizonfin/banking/pkg/notify"
	"github.com/horizonfin/banking/pkg/rail/dwollaapi"
	"github.com/horizonfin/banking/pkg/scheduler"
	"github.com/horizonfin/banking/pkg/secrets"
	dydbstore "github.com/horizonfin/banking/pkg/storage/dynamodb"
	"github.com/horizonfin/banking/pkg/sync"
	"github.com/horizonfin/banking/pkg/transfer"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// AWS Session
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

	keeper, err := secrets.NewKeeper(os.Getenv("CREDENTIAL_KEY"))
	if err != nil {
		log.Fatalf("invalid CREDENTIAL_KEY: %v", err)
	}

	provider := plaidapi.New(
		os.Getenv("LEDGER_API_URL"),
		os.Getenv("LEDGER_CLIENT_ID"),
		os.Getenv("LEDGER_SECRET"),
	)
	railClient := dwollaapi.New(
		os.Getenv("RAIL_API_URL"),
		os.Getenv("RAIL_API_TOKEN"),
	)

	// Push transfer and sync updates over the API Gateway WebSocket API
	// when one is configured; otherwise updates are dropped.
	var publisher notify.Publisher = &notify.NoOpPublisher{}
	if endpoint := os.Getenv("WEBSOCKET_API_ENDPOINT"); endpoint != "" {
		publisher, err = notify.NewPublisher(store, store, endpoint)
		if err != nil {
			log.Fatalf("failed to create websocket publisher: %v", err)
		}
	}

	// Webhook events go through SQS when a queue is configured; without
	// one they are applied inline on the request path.
	var queue scheduler.EventQueue
	if queueURL := os.Getenv("SQS_QUEUE_URL"); queueURL != "" {
		queue = scheduler.NewSQSEventQueue(sqs.NewFromConfig(cfg), queueURL)
	}

	syncEngine := sync.NewEngine(store, provider, keeper, publisher, logger)
	balanceCalculator := balance.NewCalculator(store, store, provider, keeper, logger)
	transferEngine := transfer.NewEngine(store, railClient, publisher, logger)

	router := handlers.NewRouter(handlers.Deps{
		Store:         store,
		Keeper:        keeper,
		Syncer:        syncEngine,
		Balances:      balanceCalculator,
		Transfers:     transferEngine,
		Queue:         queue,
		WebhookSecret: os.Getenv("RAIL_WEBHOOK_SECRET"),
		Logger:        logger,
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
