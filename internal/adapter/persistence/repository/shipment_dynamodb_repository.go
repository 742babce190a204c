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
	defaultShipmentsTableName = "shipments"
	defaultTrashTableName     = "shipments_trash"
	shipmentsCustomerIndex    = "customer_email-index"
)

type shipmentItem struct {
	TrackingID    string `dynamodbav:"tracking_id"`
	CustomerName  string `dynamodbav:"customer_name"`
	CustomerEmail string `dynamodbav:"customer_email"`
	Description   string `dynamodbav:"description,omitempty"`
	TransportMode string `dynamodbav:"transport_mode"`
	DeclaredValue string `dynamodbav:"declared_value"`
	VerifiedValue string `dynamodbav:"verified_value"`
	IsVerified    bool   `dynamodbav:"is_verified"`
	AmountDue     string `dynamodbav:"amount_due"`
	AmountPaid    string `dynamodbav:"amount_paid"`
	PaymentState  string `dynamodbav:"payment_state"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// ShipmentDynamoRepository persists Shipment records in DynamoDB, the
// alternate backend for deployments that outgrow the flat files.
//
// Table requirements:
//   - active table PK: tracking_id (string), GSI customer_email-index
//   - trash table PK: tracking_id (string)
//
// Soft delete moves the item between the two tables; the item payload is
// carried over unchanged.

type ShipmentDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	trashTable string
}

var _ interfaces.IShipmentRepository = (*ShipmentDynamoRepository)(nil)

func NewShipmentDynamoRepository(ddb *dynamodb.Client) *ShipmentDynamoRepository {
	return &ShipmentDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("SHIPMENTS_TABLE", defaultShipmentsTableName),
		trashTable: getenvDefault("SHIPMENTS_TRASH_TABLE", defaultTrashTableName),
	}
}

func (r *ShipmentDynamoRepository) Create(ctx context.Context, s entities.Shipment) (entities.Shipment, error) {
	if err := r.put(ctx, r.tableName, s, true); err != nil {
		return entities.Shipment{}, err
	}
	return s, nil
}

func (r *ShipmentDynamoRepository) GetByTrackingID(ctx context.Context, trackingID string) (entities.Shipment, error) {
	return r.get(ctx, r.tableName, trackingID)
}

func (r *ShipmentDynamoRepository) ListAll(ctx context.Context) ([]entities.Shipment, error) {
	return r.scan(ctx, r.tableName)
}

func (r *ShipmentDynamoRepository) ListByCustomerEmail(ctx context.Context, email string) ([]entities.Shipment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(shipmentsCustomerIndex),
		KeyConditionExpression: aws.String("customer_email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalShipments(out.Items)
}

func (r *ShipmentDynamoRepository) Update(ctx context.Context, s entities.Shipment) (entities.Shipment, error) {
	existing, err := r.get(ctx, r.tableName, s.TrackingID)
	if err != nil {
		return entities.Shipment{}, err
	}
	if existing.TrackingID == "" {
		return entities.Shipment{}, nil
	}
	if err := r.put(ctx, r.tableName, s, false); err != nil {
		return entities.Shipment{}, err
	}
	return s, nil
}

func (r *ShipmentDynamoRepository) MoveToTrash(ctx context.Context, trackingID string) (entities.Shipment, error) {
	return r.move(ctx, r.tableName, r.trashTable, trackingID)
}

func (r *ShipmentDynamoRepository) RestoreFromTrash(ctx context.Context, trackingID string) (entities.Shipment, error) {
	return r.move(ctx, r.trashTable, r.tableName, trackingID)
}

func (r *ShipmentDynamoRepository) ListTrash(ctx context.Context) ([]entities.Shipment, error) {
	return r.scan(ctx, r.trashTable)
}

func (r *ShipmentDynamoRepository) move(ctx context.Context, from, to, trackingID string) (entities.Shipment, error) {
	s, err := r.get(ctx, from, trackingID)
	if err != nil {
		return entities.Shipment{}, err
	}
	if s.TrackingID == "" {
		return entities.Shipment{}, nil
	}

	if err := r.put(ctx, to, s, false); err != nil {
		return entities.Shipment{}, err
	}
	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(from),
		Key: map[string]types.AttributeValue{
			"tracking_id": &types.AttributeValueMemberS{Value: trackingID},
		},
	})
	if err != nil {
		return entities.Shipment{}, err
	}
	return s, nil
}

func (r *ShipmentDynamoRepository) put(ctx context.Context, table string, s entities.Shipment, mustNotExist bool) error {
	av, err := attributevalue.MarshalMap(toShipmentItem(s))
	if err != nil {
		return err
	}

	in := &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	}
	if mustNotExist {
		in.ConditionExpression = aws.String("attribute_not_exists(#tid)")
		in.ExpressionAttributeNames = map[string]string{"#tid": "tracking_id"}
	}
	_, err = r.ddb.PutItem(ctx, in)
	return err
}

func (r *ShipmentDynamoRepository) get(ctx context.Context, table, trackingID string) (entities.Shipment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"tracking_id": &types.AttributeValueMemberS{Value: trackingID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Shipment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Shipment{}, nil
	}

	var it shipmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Shipment{}, err
	}
	return fromShipmentItem(it), nil
}

func (r *ShipmentDynamoRepository) scan(ctx context.Context, table string) ([]entities.Shipment, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(table)})
	if err != nil {
		return nil, err
	}
	return unmarshalShipments(out.Items)
}

func unmarshalShipments(raw []map[string]types.AttributeValue) ([]entities.Shipment, error) {
	items := make([]entities.Shipment, 0, len(raw))
	for _, m := range raw {
		var it shipmentItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromShipmentItem(it))
	}
	return items, nil
}

func toShipmentItem(s entities.Shipment) shipmentItem {
	return shipmentItem{
		TrackingID:    s.TrackingID,
		CustomerName:  s.CustomerName,
		CustomerEmail: s.CustomerEmail,
		Description:   s.Description,
		TransportMode: string(s.TransportMode),
		DeclaredValue: strconv.FormatFloat(s.DeclaredValue, 'f', -1, 64),
		VerifiedValue: strconv.FormatFloat(s.VerifiedValue, 'f', -1, 64),
		IsVerified:    s.IsVerified,
		AmountDue:     strconv.FormatFloat(s.AmountDue, 'f', -1, 64),
		AmountPaid:    strconv.FormatFloat(s.AmountPaid, 'f', -1, 64),
		PaymentState:  string(s.PaymentState),
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromShipmentItem(it shipmentItem) entities.Shipment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	declared, _ := strconv.ParseFloat(it.DeclaredValue, 64)
	verified, _ := strconv.ParseFloat(it.VerifiedValue, 64)
	due, _ := strconv.ParseFloat(it.AmountDue, 64)
	paid, _ := strconv.ParseFloat(it.AmountPaid, 64)
	return entities.Shipment{
		TrackingID:    it.TrackingID,
		CustomerName:  it.CustomerName,
		CustomerEmail: it.CustomerEmail,
		Description:   it.Description,
		TransportMode: entities.TransportMode(it.TransportMode),
		DeclaredValue: declared,
		VerifiedValue: verified,
		IsVerified:    it.IsVerified,
		AmountDue:     due,
		AmountPaid:    paid,
		PaymentState:  entities.PaymentState(it.PaymentState),
		Status:        entities.ShipmentStatus(it.Status),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
