package repository

import (
	"context"
	"sort"

	"athwela/internal/domain/entities"
	"athwela/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const defaultVolunteersTableName = "volunteers"

type volunteerItem struct {
	ID            string                `dynamodbav:"id"`
	Name          string                `dynamodbav:"name"`
	ContactNumber string                `dynamodbav:"contact_number"`
	District      string                `dynamodbav:"district"`
	Location      string                `dynamodbav:"location"`
	Coordinates   *entities.Coordinates `dynamodbav:"coordinates,omitempty"`
	Skills        []string              `dynamodbav:"skills"`
	CoverageArea  string                `dynamodbav:"coverage_area"`
	Status        string                `dynamodbav:"status"`

	SecretPinHash string `dynamodbav:"secret_pin_hash"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
	Version       int64  `dynamodbav:"version"`
}

// VolunteerDynamoRepository persists Volunteer registrations in DynamoDB (PK: id).

type VolunteerDynamoRepository struct {
	versionedTable
}

var (
	_ interfaces.IVolunteerRepository = (*VolunteerDynamoRepository)(nil)
	_ interfaces.ISecuredRecordStore  = (*VolunteerDynamoRepository)(nil)
)

func NewVolunteerDynamoRepository(ddb DynamoAPI, tableName string) *VolunteerDynamoRepository {
	return &VolunteerDynamoRepository{versionedTable{
		ddb:        ddb,
		tableName:  tableNameOrDefault(tableName, defaultVolunteersTableName),
		collection: entities.CollectionVolunteers,
	}}
}

func (r *VolunteerDynamoRepository) Create(ctx context.Context, v entities.Volunteer) (entities.Volunteer, error) {
	if v.Version == 0 {
		v.Version = 1
	}
	if err := r.putNew(ctx, toVolunteerItem(v)); err != nil {
		return entities.Volunteer{}, err
	}
	return v, nil
}

func (r *VolunteerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Volunteer, error) {
	raw, err := r.get(ctx, id)
	if err != nil {
		return entities.Volunteer{}, err
	}
	if len(raw) == 0 {
		return entities.Volunteer{}, nil
	}
	var it volunteerItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Volunteer{}, err
	}
	return fromVolunteerItem(it), nil
}

func (r *VolunteerDynamoRepository) List(ctx context.Context) ([]entities.Volunteer, error) {
	raw, err := r.scan(ctx)
	if err != nil {
		return nil, err
	}
	volunteers := make([]entities.Volunteer, 0, len(raw))
	for _, av := range raw {
		var it volunteerItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		volunteers = append(volunteers, fromVolunteerItem(it))
	}
	sort.SliceStable(volunteers, func(i, j int) bool {
		return volunteers[i].CreatedAt.After(volunteers[j].CreatedAt)
	})
	return volunteers, nil
}

func toVolunteerItem(v entities.Volunteer) volunteerItem {
	return volunteerItem{
		ID:            v.ID,
		Name:          v.Name,
		ContactNumber: v.ContactNumber,
		District:      v.District,
		Location:      v.Location,
		Coordinates:   v.Coordinates,
		Skills:        v.Skills,
		CoverageArea:  v.CoverageArea,
		Status:        string(v.Status),
		SecretPinHash: v.SecretPinHash,
		CreatedAt:     formatTime(v.CreatedAt),
		UpdatedAt:     formatTime(v.UpdatedAt),
		Version:       v.Version,
	}
}

func fromVolunteerItem(it volunteerItem) entities.Volunteer {
	return entities.Volunteer{
		ID:            it.ID,
		Name:          it.Name,
		ContactNumber: it.ContactNumber,
		District:      it.District,
		Location:      it.Location,
		Coordinates:   it.Coordinates,
		Skills:        it.Skills,
		CoverageArea:  it.CoverageArea,
		Status:        entities.VolunteerStatus(it.Status),
		SecretPinHash: it.SecretPinHash,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
		Version:       it.Version,
	}
}
