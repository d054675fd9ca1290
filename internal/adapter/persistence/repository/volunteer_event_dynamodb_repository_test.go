package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"athwela/internal/domain/entities"
	"athwela/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func storedEvent(t *testing.T, e entities.VolunteerEvent) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toVolunteerEventItem(e))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestVolunteerEventDynamoRepository_Transact(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	base := entities.VolunteerEvent{ID: "ev-1", Title: "Cleanup", RequiredVolunteers: 4, RegisteredVolunteers: 2, Version: 3, CreatedAt: created}

	t.Run("increments on the read version", func(t *testing.T) {
		ddb := &fakeDynamo{item: storedEvent(t, base)}
		repo := NewVolunteerEventDynamoRepository(ddb, "")
		got, err := repo.Transact(ctx, "ev-1", func(e entities.VolunteerEvent) (entities.VolunteerEvent, error) {
			e.RegisteredVolunteers++
			e.CreatedAt = time.Time{}
			return e, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.RegisteredVolunteers != 3 || got.Version != 4 || !got.CreatedAt.Equal(created) {
			t.Fatalf("unexpected result: %+v", got)
		}
		if aws.ToString(ddb.lastPut.TableName) != "volunteer_events" {
			t.Fatalf("unexpected table %s", aws.ToString(ddb.lastPut.TableName))
		}
		expected := ddb.lastPut.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN)
		if expected.Value != "3" {
			t.Fatalf("expected condition on version 3, got %s", expected.Value)
		}
	})

	t.Run("missing event skips fn", func(t *testing.T) {
		repo := NewVolunteerEventDynamoRepository(&fakeDynamo{}, "")
		got, err := repo.Transact(ctx, "ev-1", func(e entities.VolunteerEvent) (entities.VolunteerEvent, error) {
			t.Fatalf("fn must not run")
			return e, nil
		})
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero event, got %+v err=%v", got, err)
		}
	})

	t.Run("lost race maps to ErrConflict", func(t *testing.T) {
		ddb := &fakeDynamo{item: storedEvent(t, base), putErr: &types.ConditionalCheckFailedException{Message: aws.String("x")}}
		repo := NewVolunteerEventDynamoRepository(ddb, "")
		_, err := repo.Transact(ctx, "ev-1", func(e entities.VolunteerEvent) (entities.VolunteerEvent, error) { return e, nil })
		if !errors.Is(err, interfaces.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func TestVolunteerEventDynamoRepository_ListSoonestFirst(t *testing.T) {
	later := entities.VolunteerEvent{ID: "later", Date: "2026-06-10", Time: "08:00"}
	morning := entities.VolunteerEvent{ID: "morning", Date: "2026-06-01", Time: "08:00"}
	evening := entities.VolunteerEvent{ID: "evening", Date: "2026-06-01", Time: "17:30"}
	ddb := &fakeDynamo{pages: [][]map[string]types.AttributeValue{
		{storedEvent(t, later), storedEvent(t, evening)},
		{storedEvent(t, morning)},
	}}

	events, err := NewVolunteerEventDynamoRepository(ddb, "").List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 3 || events[0].ID != "morning" || events[1].ID != "evening" || events[2].ID != "later" {
		t.Fatalf("unexpected order: %+v", events)
	}
}

func TestVolunteerEventDynamoRepository_LockWithoutPin(t *testing.T) {
	ddb := &fakeDynamo{item: storedEvent(t, entities.VolunteerEvent{ID: "ev-1", Version: 2})}
	repo := NewVolunteerEventDynamoRepository(ddb, "")

	lock, err := repo.Lock(context.Background(), "ev-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lock.ID != "ev-1" || lock.Version != 2 || lock.SecretPinHash != "" {
		t.Fatalf("unexpected lock %+v", lock)
	}
	if repo.Collection() != entities.CollectionEvents {
		t.Fatalf("unexpected collection %s", repo.Collection())
	}
}
