package repository

import (
	"context"
	"sort"

	"athwela/internal/domain/entities"
	"athwela/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const defaultServiceRequestsTableName = "service_requests"

type serviceRequestItem struct {
	ID       string                   `dynamodbav:"id"`
	Category string                   `dynamodbav:"category"`
	Details  map[string]interface{}   `dynamodbav:"details,omitempty"`
	Location entities.ServiceLocation `dynamodbav:"location"`
	Contact  entities.ServiceContact  `dynamodbav:"contact"`
	Status   string                   `dynamodbav:"status"`

	SecretPinHash string `dynamodbav:"secret_pin_hash"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
	Version       int64  `dynamodbav:"version"`
}

// ServiceRequestDynamoRepository persists ServiceRequest entities in DynamoDB (PK: id).

type ServiceRequestDynamoRepository struct {
	versionedTable
}

var (
	_ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)
	_ interfaces.ISecuredRecordStore       = (*ServiceRequestDynamoRepository)(nil)
)

func NewServiceRequestDynamoRepository(ddb DynamoAPI, tableName string) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{versionedTable{
		ddb:        ddb,
		tableName:  tableNameOrDefault(tableName, defaultServiceRequestsTableName),
		collection: entities.CollectionServiceRequests,
	}}
}

func (r *ServiceRequestDynamoRepository) Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	if sr.Version == 0 {
		sr.Version = 1
	}
	if err := r.putNew(ctx, toServiceRequestItem(sr)); err != nil {
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	raw, err := r.get(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(raw) == 0 {
		return entities.ServiceRequest{}, nil
	}
	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) List(ctx context.Context) ([]entities.ServiceRequest, error) {
	raw, err := r.scan(ctx)
	if err != nil {
		return nil, err
	}
	requests := make([]entities.ServiceRequest, 0, len(raw))
	for _, av := range raw {
		var it serviceRequestItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		requests = append(requests, fromServiceRequestItem(it))
	}
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

func toServiceRequestItem(sr entities.ServiceRequest) serviceRequestItem {
	return serviceRequestItem{
		ID:            sr.ID,
		Category:      string(sr.Category),
		Details:       sr.Details,
		Location:      sr.Location,
		Contact:       sr.Contact,
		Status:        string(sr.Status),
		SecretPinHash: sr.SecretPinHash,
		CreatedAt:     formatTime(sr.CreatedAt),
		UpdatedAt:     formatTime(sr.UpdatedAt),
		Version:       sr.Version,
	}
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	return entities.ServiceRequest{
		ID:            it.ID,
		Category:      entities.ServiceCategory(it.Category),
		Details:       it.Details,
		Location:      it.Location,
		Contact:       it.Contact,
		Status:        entities.ServiceRequestStatus(it.Status),
		SecretPinHash: it.SecretPinHash,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
		Version:       it.Version,
	}
}
