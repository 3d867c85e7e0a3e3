package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/horizonfin/banking/pkg/notify"
	"github.com/horizonfin/banking/pkg/rail/dwollaapi"
	dydbstore "github.com/horizonfin/banking/pkg/storage/dynamodb"
	"github.com/horizonfin/banking/pkg/transfer"
)

var engine *transfer.Engine

// stuckTransferThreshold is how long a transfer may sit in PROCESSING
// before the sweep asks the rail for its actual status.
const stuckTransferThreshold = 30 * time.Minute

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

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

	store := dydbstore.New(dbClient, connectionsTable, transactionsTable, transfersTable, websocketsTable)

	railClient := dwollaapi.New(
		os.Getenv("RAIL_API_URL"),
		os.Getenv("RAIL_API_TOKEN"),
	)

	engine = transfer.NewEngine(store, railClient, &notify.NoOpPublisher{}, logger)
}

// HandleRequest is triggered by an EventBridge Schedule. It sweeps
// transfers stuck in PROCESSING whose webhook never arrived and settles
// them from the rail's authoritative status.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting reconciliation sweep for stuck transfers...")

	settled, err := engine.Reconcile(ctx, stuckTransferThreshold)
	if err != nil {
		log.Printf("ERROR: reconciliation sweep failed: %v", err)
		return err
	}

	log.Printf("Reconciliation sweep finished, settled %d transfers", settled)
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
