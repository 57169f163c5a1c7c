package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"movie-awards/internal/domain"
)

const (
	attrMovieID   = "movieId"
	attrAwardBody = "awardBody"
)

// dynamodbAPI is the minimal DynamoDB interface required by Client.
// *dynamodb.Client from aws-sdk-go-v2 satisfies this interface.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// Client wraps a DynamoDB table of movie awards keyed by (movieId, awardBody).
type Client struct {
	api       dynamodbAPI
	tableName string
}

// New creates a new repository Client.
func New(api dynamodbAPI, tableName string) (*Client, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &Client{api: api, tableName: tableName}, nil
}

// TableName returns the table the client reads from.
func (c *Client) TableName() string {
	return c.tableName
}

// awardItem is the typed view of the key and counter attributes.
// Everything else on the item stays opaque.
type awardItem struct {
	MovieID   int    `dynamodbav:"movieId"`
	AwardBody string `dynamodbav:"awardBody"`
	NumAwards int    `dynamodbav:"numAwards"`
}

// awardKey returns the DynamoDB primary key for an award record.
func awardKey(key domain.AwardKey) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrMovieID:   &types.AttributeValueMemberN{Value: strconv.Itoa(key.MovieID)},
		attrAwardBody: &types.AttributeValueMemberS{Value: key.AwardBody},
	}
}

// GetAward fetches the record stored under key. A missing item is reported
// through the boolean, not as an error.
func (c *Client) GetAward(ctx context.Context, key domain.AwardKey) (domain.AwardRecord, bool, error) {
	out, err := c.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.tableName),
		Key:       awardKey(key),
	})
	if err != nil {
		return domain.AwardRecord{}, false, fmt.Errorf("repository: GetAward get item: %w", err)
	}
	if out == nil || len(out.Item) == 0 {
		return domain.AwardRecord{}, false, nil
	}

	rec, err := itemToAward(out.Item)
	if err != nil {
		return domain.AwardRecord{}, false, fmt.Errorf("repository: GetAward decode: %w", err)
	}
	return rec, true, nil
}

// itemToAward converts a DynamoDB attribute map to an AwardRecord.
func itemToAward(item map[string]types.AttributeValue) (domain.AwardRecord, error) {
	var typed awardItem
	if err := attributevalue.UnmarshalMap(item, &typed); err != nil {
		return domain.AwardRecord{}, err
	}
	attrs := make(map[string]any, len(item))
	if err := attributevalue.UnmarshalMap(item, &attrs); err != nil {
		return domain.AwardRecord{}, err
	}
	return domain.AwardRecord{
		MovieID:    typed.MovieID,
		AwardBody:  typed.AwardBody,
		NumAwards:  typed.NumAwards,
		Attributes: attrs,
	}, nil
}
