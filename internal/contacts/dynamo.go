package contacts

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoStore is the DynamoDB-backed contact index. The table is keyed
// by Email (S) with a TimeStamp (S) attribute.
type DynamoStore struct {
	client    *dynamodb.Client
	tableName string
}

// NewDynamoStore creates a store backed by the given table.
func NewDynamoStore(client *dynamodb.Client, tableName string) *DynamoStore {
	return &DynamoStore{client: client, tableName: tableName}
}

type contactItem struct {
	Email     string `dynamodbav:"Email"`
	TimeStamp string `dynamodbav:"TimeStamp"`
}

// Lookup performs a GetItem by canonical email. A missing item is a
// normal not-found result; transport errors wrap ErrUnavailable.
func (s *DynamoStore) Lookup(ctx context.Context, email string) (LookupResult, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"Email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return LookupResult{}, fmt.Errorf("%w: getting contact from DynamoDB: %v", ErrUnavailable, err)
	}
	if result.Item == nil {
		log.Printf("[contacts] email not found: %q", email)
		return LookupResult{}, nil
	}

	var item contactItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return LookupResult{}, fmt.Errorf("unmarshaling contact item: %w", err)
	}
	log.Printf("[contacts] email found: %q (first seen %s)", item.Email, item.TimeStamp)
	return LookupResult{Found: true, FirstSeen: item.TimeStamp}, nil
}

// Record writes the email → first-accepted timestamp entry. No
// conditional write: the dedup race window is an accepted property of
// the design.
func (s *DynamoStore) Record(ctx context.Context, email, timestamp string) error {
	av, err := attributevalue.MarshalMap(contactItem{Email: email, TimeStamp: timestamp})
	if err != nil {
		return fmt.Errorf("marshaling contact item: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("%w: putting contact to DynamoDB: %v", ErrUnavailable, err)
	}
	log.Printf("[contacts] recorded %q at %s", email, timestamp)
	return nil
}
