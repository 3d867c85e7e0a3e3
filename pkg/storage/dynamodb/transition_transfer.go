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

// TransitionTransfer moves a transfer into target and mirrors the new status
// onto its transaction legs, all in one DynamoDB transaction. The transfer
// update is conditional on the current status being a valid predecessor of
// target, which makes webhook replays and racing writers safe: whoever loses
// the race gets ErrInvalidTransition and the row is untouched.
func (s *Store) TransitionTransfer(ctx context.Context, transferID string, target models.TransferStatus, railTransferID string) (*models.Transfer, error) {
	transfer, err := s.GetTransfer(ctx, transferID)
	if err != nil {
		return nil, err
	}

	predecessors := models.ValidPredecessors(target)
	if len(predecessors) == 0 {
		return nil, fmt.Errorf("%w: no status may move to %s", storage.ErrInvalidTransition, target)
	}

	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	updateExpr := "SET #status = :target, updated_at = :now"
	values := map[string]types.AttributeValue{
		":target": &types.AttributeValueMemberS{Value: string(target)},
		":now":    nowAV,
	}
	condition := "#status IN ("
	for i, p := range predecessors {
		name := fmt.Sprintf(":prev%d", i)
		if i > 0 {
			condition += ", "
		}
		condition += name
		values[name] = &types.AttributeValueMemberS{Value: string(p)}
	}
	condition += ")"

	if railTransferID != "" {
		updateExpr += ", rail_transfer_id = :rail_id"
		values[":rail_id"] = &types.AttributeValueMemberS{Value: railTransferID}
	}

	items := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(s.TransfersTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: transferID},
				},
				UpdateExpression:    aws.String(updateExpr),
				ConditionExpression: aws.String(condition),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: values,
			},
		},
	}

	legStatus := target.LegStatus()
	legPending := legStatus == models.TransactionPending || legStatus == models.TransactionProcessing
	for _, legID := range []string{transfer.SenderTransactionId, transfer.RecipientTransactionId} {
		if legID == "" {
			continue
		}
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(s.TransactionsTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: legID},
				},
				UpdateExpression:    aws.String("SET #status = :leg_status, pending = :pending, updated_at = :now"),
				ConditionExpression: aws.String("attribute_exists(id)"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":leg_status": &types.AttributeValueMemberS{Value: string(legStatus)},
					":pending":    &types.AttributeValueMemberBOOL{Value: legPending},
					":now":        nowAV,
				},
			},
		})
	}

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var txCanceled *types.TransactionCanceledException
		if errors.As(err, &txCanceled) {
			for _, reason := range txCanceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return nil, storage.ErrInvalidTransition
				}
			}
		}
		return nil, fmt.Errorf("failed to transition transfer: %w", err)
	}

	transfer.Status = target
	transfer.UpdatedAt = now
	if railTransferID != "" {
		transfer.RailTransferId = railTransferID
	}

	return transfer, nil
}
