package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"athwela/internal/adapter/persistence/registry"
	appconfig "athwela/internal/config"
	"athwela/internal/domain/entities"
	"athwela/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTables struct {
	existing map[string]bool
	endpoint string
}

func (f *fakeTables) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	if f.existing[aws.ToString(in.TableName)] {
		return nil, &types.ResourceInUseException{Message: aws.String("exists")}
	}
	return &dynamodb.CreateTableOutput{}, nil
}

func (f *fakeTables) connector() TableConnector {
	return func(_ context.Context, cfg appconfig.Config) (database.TableCreator, error) {
		f.endpoint = cfg.DynamoDBEndpoint
		return f, nil
	}
}

func execute(t *testing.T, connect TableConnector, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand(connect)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func seedRegistry(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "registry.db")
	st, err := registry.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, st.Record(ctx, entities.RegistryEntry{ClientID: "c-1", RecordID: "n-1", Role: entities.RegistryRoleOwner, RecordedAt: at}))
	require.NoError(t, st.Record(ctx, entities.RegistryEntry{ClientID: "c-1", RecordID: "n-2", Role: entities.RegistryRolePledger, RecordedAt: at.Add(time.Minute)}))
	require.NoError(t, st.Record(ctx, entities.RegistryEntry{ClientID: "c-2", RecordID: "p-1", Role: entities.RegistryRoleOwner, RecordedAt: at}))
	return dbPath
}

func TestRootRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, (&fakeTables{}).connector(), "registry", "clients", "--db", "x.db", "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestTablesCreate(t *testing.T) {
	fake := &fakeTables{existing: map[string]bool{"needs": true}}

	out, err := execute(t, fake.connector(), "tables", "create", "--endpoint", "http://localhost:8000", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", fake.endpoint)

	var res tablesResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Tables, 4)
	assert.NotContains(t, res.Created, "needs")
	assert.Len(t, res.Created, 3)
}

func TestTablesCreateConnectFailure(t *testing.T) {
	failing := func(context.Context, appconfig.Config) (database.TableCreator, error) {
		return nil, errors.New("no credentials")
	}

	_, err := execute(t, failing, "tables", "create")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRegistryList(t *testing.T) {
	dbPath := seedRegistry(t)

	out, err := execute(t, nil, "registry", "list", "--db", dbPath, "--client", "c-1", "--format", "json")
	require.NoError(t, err)

	var entries []entities.RegistryEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "n-1", entries[0].RecordID)

	out, err = execute(t, nil, "registry", "list", "--db", dbPath, "--client", "c-1", "--role", "pledger")
	require.NoError(t, err)
	assert.Contains(t, out, "n-2")
}

func TestRegistryListRejectsRole(t *testing.T) {
	dbPath := seedRegistry(t)

	_, err := execute(t, nil, "registry", "list", "--db", dbPath, "--client", "c-1", "--role", "admin")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRegistryListMissingClient(t *testing.T) {
	_, err := execute(t, nil, "registry", "list", "--db", "x.db")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestRegistryClientsAndForget(t *testing.T) {
	dbPath := seedRegistry(t)

	out, err := execute(t, nil, "registry", "clients", "--db", dbPath, "--format", "json")
	require.NoError(t, err)
	var clients []string
	require.NoError(t, json.Unmarshal([]byte(out), &clients))
	assert.ElementsMatch(t, []string{"c-1", "c-2"}, clients)

	_, err = execute(t, nil, "registry", "forget", "--db", dbPath, "--client", "c-2", "--record", "p-1")
	require.NoError(t, err)

	out, err = execute(t, nil, "registry", "list", "--db", dbPath, "--client", "c-2")
	require.NoError(t, err)
	assert.Contains(t, out, "No owner entries")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "bad", nil)))
}
