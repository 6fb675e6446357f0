package journal_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/jt0/errkit/_test/assert"
	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/families"
	"github.com/jt0/errkit/journal"
	"github.com/jt0/errkit/typetag"
)

type fakeDynamoDb struct {
	inputs []*dynamodb.PutItemInput
	err    error
}

func (f *fakeDynamoDb) PutItem(_ context.Context, input *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

var recordedAt = time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

func newJournal(t *testing.T, client journal.PutItemAPI, maxDepth int) *journal.DynamoDB {
	t.Helper()

	j, ge := journal.NewDynamoDB(journal.Configuration{
		DynamoDb:  client,
		TableName: "errors",
		MaxDepth:  maxDepth,
		Now:       func() time.Time { return recordedAt },
		NewId:     func() string { return "rec-1" },
	})
	assert.Success(t, ge)

	return j
}

func sampleChain() envelope.Opaque {
	root := envelope.Wrap(errors.New("socket closed"))
	dep := families.Dependency("inventory", nil).Because(root)
	return envelope.From[families.NotFoundFamily](families.NotFound("Sku", "A-1").Because(envelope.From[families.DependencyFamily](dep)))
}

func TestRecord_WritesEveryLink(t *testing.T) {
	t.Parallel()

	client := &fakeDynamoDb{}
	j := newJournal(t, client, 0)

	id, ge := j.Record(context.Background(), sampleChain())
	assert.Success(t, ge)
	assert.Equals(t, "rec-1", id)
	assert.Equals(t, 1, len(client.inputs))

	input := client.inputs[0]
	assert.Equals(t, "errors", *input.TableName)
	assert.Equals(t, "attribute_not_exists(RecordId)", *input.ConditionExpression)

	entry, ge := journal.Decode(input.Item)
	assert.Success(t, ge)
	assert.Equals(t, journal.Entry{
		RecordId:   "rec-1",
		RecordedAt: recordedAt,
		Links: []journal.Link{
			{Tag: typetag.Of[families.NotFoundFamily]().String(), Description: "Not Found", Details: `Sku "A-1"`},
			{Tag: typetag.Of[families.DependencyFamily]().String(), Description: "Dependency Failure", Details: "inventory"},
			{Tag: typetag.Of[envelope.Foreign]().String(), Description: "socket closed"},
		},
	}, entry)
}

func TestRecord_TruncatesDeepChains(t *testing.T) {
	t.Parallel()

	var o envelope.Opaque
	for i := 0; i < 10; i++ {
		o = envelope.New[journal.Recorded](fmt.Sprint("link ", i), envelope.WithCause(o))
	}

	client := &fakeDynamoDb{}
	j := newJournal(t, client, 4)

	_, ge := j.Record(context.Background(), o)
	assert.Success(t, ge)

	entry, ge := journal.Decode(client.inputs[0].Item)
	assert.Success(t, ge)
	assert.Equals(t, 4, len(entry.Links))
	assert.Assert(t, entry.Truncated)
	assert.Equals(t, "link 9", entry.Links[0].Description)
}

func TestRecord_ClassifiesAwsFailures(t *testing.T) {
	t.Parallel()

	client := &fakeDynamoDb{err: &smithy.OperationError{
		ServiceID:     "DynamoDB",
		OperationName: "PutItem",
		Err:           &types.ConditionalCheckFailedException{},
	}}
	j := newJournal(t, client, 0)

	id, ge := j.Record(context.Background(), sampleChain())
	assert.Equals(t, "", id)
	assert.Family(t, ge, typetag.Of[families.ConflictFamily]())

	var ccf *types.ConditionalCheckFailedException
	assert.Assert(t, errors.As(ge, &ccf))
}

func TestRecord_RejectsNil(t *testing.T) {
	t.Parallel()

	j := newJournal(t, &fakeDynamoDb{}, 0)
	_, ge := j.Record(context.Background(), nil)
	assert.Family(t, ge, typetag.Of[families.BadValueFamily]())
}

func TestNewDynamoDB_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config journal.Configuration
		family typetag.Tag
	}{
		{"no client", journal.Configuration{TableName: "errors"}, typetag.Of[families.ConfigurationFamily]()},
		{"no table", journal.Configuration{DynamoDb: &fakeDynamoDb{}}, typetag.Of[families.ConfigurationFamily]()},
		{"negative depth", journal.Configuration{DynamoDb: &fakeDynamoDb{}, TableName: "errors", MaxDepth: -1}, typetag.Of[families.BadValueFamily]()},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			j, ge := journal.NewDynamoDB(tt.config)
			assert.Nil(t, j)
			assert.Family(t, ge, tt.family)
		})
	}
}

func TestEntry_Opaque(t *testing.T) {
	t.Parallel()

	entry := journal.NewEntry("id", recordedAt, sampleChain(), 0)
	o := entry.Opaque()

	assert.Equals(t, 3, envelope.Depth(o))
	assert.Assert(t, envelope.HasTag[journal.Recorded](o))
	assert.Equals(t, typetag.Of[families.NotFoundFamily]().String(), o.Extensions())
	assert.Equals(t, sampleChain().Error(), o.Error())

	assert.Nil(t, journal.Entry{}.Opaque())
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	_, ge := journal.Decode(map[string]types.AttributeValue{
		"Links": &types.AttributeValueMemberS{Value: "not a list"},
	})
	assert.Family(t, ge, typetag.Of[families.UnmarshalFamily]())
}
