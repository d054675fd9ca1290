package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"athwela/internal/domain/entities"
	"athwela/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// versionedTable holds the table-level operations shared by every PIN-protected
// collection. Every item carries:
//   - id (PK, string)
//   - secret_pin_hash (string)
//   - version (number, starts at 1, bumped on each write)
//   - updated_at (RFC3339Nano)
type versionedTable struct {
	ddb        DynamoAPI
	tableName  string
	collection string
}

func (t versionedTable) Collection() string {
	return t.collection
}

func (t versionedTable) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func (t versionedTable) get(ctx context.Context, id string) (map[string]types.AttributeValue, error) {
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.tableName),
		Key:            t.key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}

func (t versionedTable) putNew(ctx context.Context, item interface{}) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(t.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// putVersioned replaces the item only if its stored version still equals expected.
func (t versionedTable) putVersioned(ctx context.Context, item interface{}, expected int64) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(t.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": versionValue(expected),
		},
	})
	return translateConditionFailure(err)
}

func (t versionedTable) scan(ctx context.Context) ([]map[string]types.AttributeValue, error) {
	var (
		items []map[string]types.AttributeValue
		start map[string]types.AttributeValue
	)
	for {
		out, err := t.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(t.tableName),
			ExclusiveStartKey: start,
			ConsistentRead:    aws.Bool(true),
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		start = out.LastEvaluatedKey
	}
}

type lockItem struct {
	ID            string `dynamodbav:"id"`
	SecretPinHash string `dynamodbav:"secret_pin_hash"`
	Version       int64  `dynamodbav:"version"`
}

func (t versionedTable) Lock(ctx context.Context, id string) (entities.RecordLock, error) {
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(t.tableName),
		Key:                  t.key(id),
		ConsistentRead:       aws.Bool(true),
		ProjectionExpression: aws.String("#id, #pin, #version"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#pin":     "secret_pin_hash",
			"#version": "version",
		},
	})
	if err != nil {
		return entities.RecordLock{}, err
	}
	if len(out.Item) == 0 {
		return entities.RecordLock{}, nil
	}
	var it lockItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RecordLock{}, err
	}
	return entities.RecordLock{ID: it.ID, SecretPinHash: it.SecretPinHash, Version: it.Version}, nil
}

func (t versionedTable) ApplyPatch(ctx context.Context, id string, version int64, patch entities.Patch) error {
	updateExpr, values, names, err := buildPatchExpression(patch, time.Now().UTC(), version)
	if err != nil {
		return err
	}
	_, err = t.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(t.tableName),
		Key:                       t.key(id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
	})
	return translateConditionFailure(err)
}

func (t versionedTable) Delete(ctx context.Context, id string, version int64) error {
	_, err := t.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(t.tableName),
		Key:                 t.key(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": versionValue(version),
		},
	})
	return translateConditionFailure(err)
}

// buildPatchExpression turns a patch into a SET expression that also bumps the version
// and refreshes updated_at. Keys are sorted so the expression is deterministic.
func buildPatchExpression(patch entities.Patch, now time.Time, expected int64) (string, map[string]types.AttributeValue, map[string]string, error) {
	keys := make([]string, 0, len(patch))
	for k := range patch {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	names := map[string]string{
		"#version":    "version",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":expected":   versionValue(expected),
		":next":       versionValue(expected + 1),
		":updated_at": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
	}
	expr := "SET #version = :next, #updated_at = :updated_at"
	for i, k := range keys {
		av, err := attributevalue.Marshal(patch[k])
		if err != nil {
			return "", nil, nil, fmt.Errorf("marshal patch field %s: %w", k, err)
		}
		n := fmt.Sprintf("#f%d", i)
		v := fmt.Sprintf(":f%d", i)
		names[n] = k
		values[v] = av
		expr += fmt.Sprintf(", %s = %s", n, v)
	}
	return expr, values, names, nil
}

func translateConditionFailure(err error) error {
	if err == nil {
		return nil
	}
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return interfaces.ErrConflict
	}
	return err
}

func versionValue(v int64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", v)}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func tableNameOrDefault(name, def string) string {
	if name != "" {
		return name
	}
	return def
}
