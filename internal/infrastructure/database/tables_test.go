package database

import (
	"context"
	"errors"
	"testing"

	appconfig "athwela/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	existing map[string]bool
	fail     string
	inputs   []*dynamodb.CreateTableInput
}

func (f *fakeCreator) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.inputs = append(f.inputs, in)
	name := aws.ToString(in.TableName)
	if name == f.fail {
		return nil, errors.New("access denied")
	}
	if f.existing[name] {
		return nil, &types.ResourceInUseException{Message: aws.String("table exists")}
	}
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureTables_SkipsExisting(t *testing.T) {
	ddb := &fakeCreator{existing: map[string]bool{"people": true}}

	created, err := EnsureTables(context.Background(), ddb, TableNames(appconfig.Config{}))
	require.NoError(t, err)
	assert.Equal(t, []string{"needs", "volunteers", "service_requests", "volunteer_events"}, created)

	require.Len(t, ddb.inputs, 5)
	in := ddb.inputs[0]
	assert.Equal(t, types.BillingModePayPerRequest, in.BillingMode)
	assert.Equal(t, "id", aws.ToString(in.KeySchema[0].AttributeName))
	assert.Equal(t, types.KeyTypeHash, in.KeySchema[0].KeyType)
}

func TestEnsureTables_StopsOnError(t *testing.T) {
	ddb := &fakeCreator{fail: "volunteers"}

	created, err := EnsureTables(context.Background(), ddb, []string{"needs", "volunteers", "people"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volunteers")
	assert.Equal(t, []string{"needs"}, created)
	assert.Len(t, ddb.inputs, 2)
}

func TestTableNames_UsesConfig(t *testing.T) {
	names := TableNames(appconfig.Config{NeedsTable: "n", ServiceRequestsTable: "s", VolunteerEventsTable: "e"})
	assert.Equal(t, []string{"n", "people", "volunteers", "s", "e"}, names)
}

type throttlingCreator struct{}

func (throttlingCreator) CreateTable(context.Context, *dynamodb.CreateTableInput, ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	return nil, &smithy.GenericAPIError{Code: "ThrottlingException", Message: "slow down"}
}

func TestEnsureTables_WrapsAPIError(t *testing.T) {
	_, err := EnsureTables(context.Background(), throttlingCreator{}, []string{"needs"})
	require.Error(t, err)

	var apiErr smithy.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "ThrottlingException", apiErr.ErrorCode())
}
