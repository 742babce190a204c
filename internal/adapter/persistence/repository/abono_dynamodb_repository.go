package repository

import (
	"context"
	"strconv"
	"time"

	"logistica_iac/internal/domain/entities"
	"logistica_iac/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAbonosTableName = "abonos"
	abonosTrackingIDIndex  = "tracking_id-index"
)

type abonoItem struct {
	ID         string `dynamodbav:"id"`
	TrackingID string `dynamodbav:"tracking_id"`
	Amount     string `dynamodbav:"amount"`
	Source     string `dynamodbav:"source"`
	Reference  string `dynamodbav:"reference,omitempty"`
	Date       string `dynamodbav:"date"`
}

// AbonoDynamoRepository persists Abono entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tracking_id-index (PK: tracking_id)

type AbonoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAbonoRepository = (*AbonoDynamoRepository)(nil)

func NewAbonoDynamoRepository(ddb *dynamodb.Client) *AbonoDynamoRepository {
	return &AbonoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ABONOS_TABLE", defaultAbonosTableName),
	}
}

func (r *AbonoDynamoRepository) Create(ctx context.Context, a entities.Abono) (entities.Abono, error) {
	av, err := attributevalue.MarshalMap(toAbonoItem(a))
	if err != nil {
		return entities.Abono{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Abono{}, err
	}
	return a, nil
}

func (r *AbonoDynamoRepository) ListByTrackingID(ctx context.Context, trackingID string) ([]entities.Abono, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(abonosTrackingIDIndex),
		KeyConditionExpression: aws.String("tracking_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: trackingID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Abono, 0, len(out.Items))
	for _, raw := range out.Items {
		var it abonoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAbonoItem(it))
	}
	return items, nil
}

func toAbonoItem(a entities.Abono) abonoItem {
	return abonoItem{
		ID:         a.ID,
		TrackingID: a.TrackingID,
		Amount:     strconv.FormatFloat(a.Amount, 'f', -1, 64),
		Source:     string(a.Source),
		Reference:  a.Reference,
		Date:       a.Date.UTC().Format(time.RFC3339Nano),
	}
}

func fromAbonoItem(it abonoItem) entities.Abono {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Abono{
		ID:         it.ID,
		TrackingID: it.TrackingID,
		Amount:     amount,
		Source:     entities.AbonoSource(it.Source),
		Reference:  it.Reference,
		Date:       date,
	}
}
