package repository

import (
	"context"
	"sort"

	"athwela/internal/domain/entities"
	"athwela/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const defaultPeopleTableName = "people"

type personItem struct {
	ID                  string                `dynamodbav:"id"`
	Name                string                `dynamodbav:"name"`
	NIC                 string                `dynamodbav:"nic,omitempty"`
	District            string                `dynamodbav:"district"`
	Status              string                `dynamodbav:"status"`
	LastSeenLocation    string                `dynamodbav:"last_seen_location"`
	LastSeenDate        string                `dynamodbav:"last_seen_date,omitempty"`
	Age                 int                   `dynamodbav:"age,omitempty"`
	Gender              string                `dynamodbav:"gender,omitempty"`
	PhysicalDescription string                `dynamodbav:"physical_description,omitempty"`
	Coordinates         *entities.Coordinates `dynamodbav:"coordinates,omitempty"`
	ContactNumber       string                `dynamodbav:"contact_number,omitempty"`
	ReporterName        string                `dynamodbav:"reporter_name,omitempty"`
	ReporterContact     string                `dynamodbav:"reporter_contact,omitempty"`
	Message             string                `dynamodbav:"message,omitempty"`

	SecretPinHash string `dynamodbav:"secret_pin_hash"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
	Version       int64  `dynamodbav:"version"`
}

// PersonDynamoRepository persists Person reports in DynamoDB (PK: id).

type PersonDynamoRepository struct {
	versionedTable
}

var (
	_ interfaces.IPersonRepository    = (*PersonDynamoRepository)(nil)
	_ interfaces.ISecuredRecordStore = (*PersonDynamoRepository)(nil)
)

func NewPersonDynamoRepository(ddb DynamoAPI, tableName string) *PersonDynamoRepository {
	return &PersonDynamoRepository{versionedTable{
		ddb:        ddb,
		tableName:  tableNameOrDefault(tableName, defaultPeopleTableName),
		collection: entities.CollectionPeople,
	}}
}

func (r *PersonDynamoRepository) Create(ctx context.Context, p entities.Person) (entities.Person, error) {
	if p.Version == 0 {
		p.Version = 1
	}
	if err := r.putNew(ctx, toPersonItem(p)); err != nil {
		return entities.Person{}, err
	}
	return p, nil
}

func (r *PersonDynamoRepository) GetByID(ctx context.Context, id string) (entities.Person, error) {
	raw, err := r.get(ctx, id)
	if err != nil {
		return entities.Person{}, err
	}
	if len(raw) == 0 {
		return entities.Person{}, nil
	}
	var it personItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Person{}, err
	}
	return fromPersonItem(it), nil
}

func (r *PersonDynamoRepository) List(ctx context.Context) ([]entities.Person, error) {
	raw, err := r.scan(ctx)
	if err != nil {
		return nil, err
	}
	people := make([]entities.Person, 0, len(raw))
	for _, av := range raw {
		var it personItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		people = append(people, fromPersonItem(it))
	}
	sort.SliceStable(people, func(i, j int) bool {
		return people[i].CreatedAt.After(people[j].CreatedAt)
	})
	return people, nil
}

func toPersonItem(p entities.Person) personItem {
	return personItem{
		ID:                  p.ID,
		Name:                p.Name,
		NIC:                 p.NIC,
		District:            p.District,
		Status:              string(p.Status),
		LastSeenLocation:    p.LastSeenLocation,
		LastSeenDate:        p.LastSeenDate,
		Age:                 p.Age,
		Gender:              p.Gender,
		PhysicalDescription: p.PhysicalDescription,
		Coordinates:         p.Coordinates,
		ContactNumber:       p.ContactNumber,
		ReporterName:        p.ReporterName,
		ReporterContact:     p.ReporterContact,
		Message:             p.Message,
		SecretPinHash:       p.SecretPinHash,
		CreatedAt:           formatTime(p.CreatedAt),
		UpdatedAt:           formatTime(p.UpdatedAt),
		Version:             p.Version,
	}
}

func fromPersonItem(it personItem) entities.Person {
	return entities.Person{
		ID:                  it.ID,
		Name:                it.Name,
		NIC:                 it.NIC,
		District:            it.District,
		Status:              entities.PersonStatus(it.Status),
		LastSeenLocation:    it.LastSeenLocation,
		LastSeenDate:        it.LastSeenDate,
		Age:                 it.Age,
		Gender:              it.Gender,
		PhysicalDescription: it.PhysicalDescription,
		Coordinates:         it.Coordinates,
		ContactNumber:       it.ContactNumber,
		ReporterName:        it.ReporterName,
		ReporterContact:     it.ReporterContact,
		Message:             it.Message,
		SecretPinHash:       it.SecretPinHash,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
		Version:             it.Version,
	}
}
