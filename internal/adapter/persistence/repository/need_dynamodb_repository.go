package repository

import (
	"context"
	"sort"

	"athwela/internal/domain/entities"
	"athwela/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const defaultNeedsTableName = "needs"

type pledgeItem struct {
	ID        string `dynamodbav:"id"`
	Amount    int    `dynamodbav:"amount"`
	PinHash   string `dynamodbav:"pin_hash"`
	PledgedAt string `dynamodbav:"pledged_at"`
}

type needItem struct {
	ID            string                 `dynamodbav:"id"`
	Type          string                 `dynamodbav:"type"`
	Item          string                 `dynamodbav:"item"`
	Category      string                 `dynamodbav:"category"`
	Urgency       string                 `dynamodbav:"urgency"`
	AffectedCount int                    `dynamodbav:"affected_count"`
	Demographics  *entities.Demographics `dynamodbav:"demographics,omitempty"`
	Quantity      int                    `dynamodbav:"quantity"`
	Unit          string                 `dynamodbav:"unit,omitempty"`
	District      string                 `dynamodbav:"district"`
	Location      string                 `dynamodbav:"location"`
	Coordinates   *entities.Coordinates  `dynamodbav:"coordinates,omitempty"`
	ContactName   string                 `dynamodbav:"contact_name"`
	ContactNumber string                 `dynamodbav:"contact_number"`
	Description   string                 `dynamodbav:"description,omitempty"`
	PeopleNeeded  int                    `dynamodbav:"people_needed,omitempty"`

	Pledges        []pledgeItem `dynamodbav:"pledges"`
	ReceivedAmount int          `dynamodbav:"received_amount"`
	Closed         bool         `dynamodbav:"closed"`

	SecretPinHash string `dynamodbav:"secret_pin_hash"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
	Version       int64  `dynamodbav:"version"`
}

// NeedDynamoRepository persists Need entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Pledges are stored inline as a list so the whole lifecycle state of a need lives in
// one item and a single conditional put keeps it consistent.

type NeedDynamoRepository struct {
	versionedTable
}

var (
	_ interfaces.INeedRepository      = (*NeedDynamoRepository)(nil)
	_ interfaces.ISecuredRecordStore = (*NeedDynamoRepository)(nil)
)

func NewNeedDynamoRepository(ddb DynamoAPI, tableName string) *NeedDynamoRepository {
	return &NeedDynamoRepository{versionedTable{
		ddb:        ddb,
		tableName:  tableNameOrDefault(tableName, defaultNeedsTableName),
		collection: entities.CollectionNeeds,
	}}
}

func (r *NeedDynamoRepository) Create(ctx context.Context, n entities.Need) (entities.Need, error) {
	if n.Version == 0 {
		n.Version = 1
	}
	if err := r.putNew(ctx, toNeedItem(n)); err != nil {
		return entities.Need{}, err
	}
	return n, nil
}

func (r *NeedDynamoRepository) GetByID(ctx context.Context, id string) (entities.Need, error) {
	raw, err := r.get(ctx, id)
	if err != nil {
		return entities.Need{}, err
	}
	if len(raw) == 0 {
		return entities.Need{}, nil
	}
	var it needItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Need{}, err
	}
	return fromNeedItem(it), nil
}

func (r *NeedDynamoRepository) List(ctx context.Context) ([]entities.Need, error) {
	raw, err := r.scan(ctx)
	if err != nil {
		return nil, err
	}
	needs := make([]entities.Need, 0, len(raw))
	for _, av := range raw {
		var it needItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		needs = append(needs, fromNeedItem(it))
	}
	sort.SliceStable(needs, func(i, j int) bool {
		return needs[i].CreatedAt.After(needs[j].CreatedAt)
	})
	return needs, nil
}

func (r *NeedDynamoRepository) Transact(
	ctx context.Context,
	id string,
	fn func(current entities.Need) (entities.Need, error),
) (entities.Need, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Need{}, err
	}
	if current.ID == "" {
		return entities.Need{}, nil
	}

	next, err := fn(current)
	if err != nil {
		return entities.Need{}, err
	}
	next.ID = current.ID
	next.SecretPinHash = current.SecretPinHash
	next.CreatedAt = current.CreatedAt
	next.Version = current.Version + 1

	if err := r.putVersioned(ctx, toNeedItem(next), current.Version); err != nil {
		return entities.Need{}, err
	}
	return next, nil
}

func toNeedItem(n entities.Need) needItem {
	pledges := make([]pledgeItem, 0, len(n.Pledges))
	for _, p := range n.Pledges {
		pledges = append(pledges, pledgeItem{
			ID:        p.ID,
			Amount:    p.Amount,
			PinHash:   p.PinHash,
			PledgedAt: formatTime(p.PledgedAt),
		})
	}
	return needItem{
		ID:             n.ID,
		Type:           string(n.Type),
		Item:           n.Item,
		Category:       n.Category,
		Urgency:        string(n.Urgency),
		AffectedCount:  n.AffectedCount,
		Demographics:   n.Demographics,
		Quantity:       n.Quantity,
		Unit:           n.Unit,
		District:       n.District,
		Location:       n.Location,
		Coordinates:    n.Coordinates,
		ContactName:    n.ContactName,
		ContactNumber:  n.ContactNumber,
		Description:    n.Description,
		PeopleNeeded:   n.PeopleNeeded,
		Pledges:        pledges,
		ReceivedAmount: n.ReceivedAmount,
		Closed:         n.Closed,
		SecretPinHash:  n.SecretPinHash,
		CreatedAt:      formatTime(n.CreatedAt),
		UpdatedAt:      formatTime(n.UpdatedAt),
		Version:        n.Version,
	}
}

func fromNeedItem(it needItem) entities.Need {
	pledges := make([]entities.Pledge, 0, len(it.Pledges))
	for _, p := range it.Pledges {
		pledges = append(pledges, entities.Pledge{
			ID:        p.ID,
			Amount:    p.Amount,
			PinHash:   p.PinHash,
			PledgedAt: parseTime(p.PledgedAt),
		})
	}
	return entities.Need{
		ID:             it.ID,
		Type:           entities.NeedType(it.Type),
		Item:           it.Item,
		Category:       it.Category,
		Urgency:        entities.UrgencyLevel(it.Urgency),
		AffectedCount:  it.AffectedCount,
		Demographics:   it.Demographics,
		Quantity:       it.Quantity,
		Unit:           it.Unit,
		District:       it.District,
		Location:       it.Location,
		Coordinates:    it.Coordinates,
		ContactName:    it.ContactName,
		ContactNumber:  it.ContactNumber,
		Description:    it.Description,
		PeopleNeeded:   it.PeopleNeeded,
		Pledges:        pledges,
		ReceivedAmount: it.ReceivedAmount,
		Closed:         it.Closed,
		SecretPinHash:  it.SecretPinHash,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
		Version:        it.Version,
	}
}
