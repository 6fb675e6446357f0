package journal

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/jt0/errkit/awserr"
	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/families"
)

const DefaultMaxDepth = 32

type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type Configuration struct {
	DynamoDb  PutItemAPI
	TableName string
	MaxDepth  int              // links stored per record; 0 uses DefaultMaxDepth
	Now       func() time.Time // defaults to time.Now
	NewId     func() string    // defaults to uuid.NewString
}

type DynamoDB struct {
	client    PutItemAPI
	tableName string
	maxDepth  int
	now       func() time.Time
	newId     func() string
}

var _ Journal = (*DynamoDB)(nil)

// NewDynamoDB validates config and returns a journal writing one item per
// record to config.TableName, keyed by RecordId.
func NewDynamoDB(config Configuration) (*DynamoDB, envelope.Opaque) {
	if config.DynamoDb == nil {
		return nil, envelope.From[families.ConfigurationFamily](families.Configuration("journal requires a DynamoDB client"))
	}
	if config.TableName == "" {
		return nil, envelope.From[families.ConfigurationFamily](families.Configuration("journal requires a table name"))
	}
	if config.MaxDepth < 0 {
		return nil, envelope.From[families.BadValueFamily](families.Invalid("MaxDepth", config.MaxDepth).WithReason("must not be negative"))
	}

	d := &DynamoDB{
		client:    config.DynamoDb,
		tableName: config.TableName,
		maxDepth:  config.MaxDepth,
		now:       config.Now,
		newId:     config.NewId,
	}
	if d.maxDepth == 0 {
		d.maxDepth = DefaultMaxDepth
	}
	if d.now == nil {
		d.now = time.Now
	}
	if d.newId == nil {
		d.newId = uuid.NewString
	}

	return d, nil
}

func (d *DynamoDB) Record(ctx context.Context, o envelope.Opaque) (string, envelope.Opaque) {
	if o == nil {
		return "", envelope.From[families.BadValueFamily](families.Invalid("error", nil).WithReason("nothing to record"))
	}

	entry := NewEntry(d.newId(), d.now(), o, d.maxDepth)

	item, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return "", envelope.From[families.InternalFamily](families.Internal("unable to marshal journal entry").Because(err))
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(d.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(RecordId)"),
	})
	if err != nil {
		return "", awserr.Classify(err, d.tableName)
	}

	return entry.RecordId, nil
}

// Decode unmarshals an item written by Record.
func Decode(item map[string]types.AttributeValue) (Entry, envelope.Opaque) {
	var entry Entry
	if err := attributevalue.UnmarshalMap(item, &entry); err != nil {
		return Entry{}, envelope.From[families.UnmarshalFamily](families.Unmarshal("journal.Entry", item).Because(err))
	}

	return entry, nil
}
