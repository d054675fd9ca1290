package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	appconfig "athwela/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// TableCreator is the slice of the DynamoDB client used to bootstrap tables.
type TableCreator interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// TableNames lists every table the service reads and writes.
func TableNames(cfg appconfig.Config) []string {
	return []string{
		valueOrDefault(cfg.NeedsTable, "needs"),
		valueOrDefault(cfg.PeopleTable, "people"),
		valueOrDefault(cfg.VolunteersTable, "volunteers"),
		valueOrDefault(cfg.ServiceRequestsTable, "service_requests"),
		valueOrDefault(cfg.VolunteerEventsTable, "volunteer_events"),
	}
}

// EnsureTables creates any missing table with a string `id` hash key and on-demand
// billing. Tables that already exist are left alone. It returns the names it created.
func EnsureTables(ctx context.Context, ddb TableCreator, names []string) ([]string, error) {
	var created []string
	for _, name := range names {
		_, err := ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName: aws.String(name),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		})
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				log.Printf("[database] table exists table=%s", name)
				continue
			}
			var apiErr smithy.APIError
			if errors.As(err, &apiErr) {
				log.Printf("[database] create table failed table=%s code=%s", name, apiErr.ErrorCode())
			}
			return created, fmt.Errorf("create table %s: %w", name, err)
		}
		log.Printf("[database] table created table=%s", name)
		created = append(created, name)
	}
	return created, nil
}
