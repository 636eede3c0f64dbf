package campaign

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoProvider reads campaign records from a DynamoDB table keyed by
// CampaignToken.
type DynamoProvider struct {
	client    *dynamodb.Client
	tableName string
}

// NewDynamoProvider creates a provider backed by the given table.
func NewDynamoProvider(client *dynamodb.Client, tableName string) *DynamoProvider {
	return &DynamoProvider{client: client, tableName: tableName}
}

// Resolve performs a point read by token. A missing item maps to
// ErrNotFound; transport errors map to ErrUnavailable.
func (p *DynamoProvider) Resolve(ctx context.Context, token string) (Campaign, error) {
	result, err := p.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(p.tableName),
		Key: map[string]types.AttributeValue{
			"CampaignToken": &types.AttributeValueMemberS{Value: token},
		},
	})
	if err != nil {
		return Campaign{}, fmt.Errorf("%w: getting campaign from DynamoDB: %v", ErrUnavailable, err)
	}
	if result.Item == nil {
		return Campaign{}, fmt.Errorf("%w: token %q", ErrNotFound, token)
	}

	var c Campaign
	if err := attributevalue.UnmarshalMap(result.Item, &c); err != nil {
		return Campaign{}, fmt.Errorf("unmarshaling campaign item: %w", err)
	}
	return c, nil
}
