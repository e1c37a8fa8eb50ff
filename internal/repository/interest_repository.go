// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for the Interests table. The table
// key is (userId, movieId); the MovieInterestsIndex GSI inverts it so
// lookups by movie are a query, not a scan. Both mutations are written to
// be safely retried: adding an interest twice leaves one record, removing
// an absent one succeeds.
package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/iliyamo/movie-wishlist/internal/model"
)

// InterestRepo encapsulates all Interests table access.
type InterestRepo struct {
	db    DynamoAPI
	table string
}

// NewInterestRepo constructs an InterestRepo with the shared DynamoDB
// client and the Interests table name.
func NewInterestRepo(db DynamoAPI, table string) *InterestRepo {
	return &InterestRepo{db: db, table: table}
}

func interestKey(userID, movieID string) map[string]ddbtypes.AttributeValue {
	return map[string]ddbtypes.AttributeValue{
		"userId":  &ddbtypes.AttributeValueMemberS{Value: userID},
		"movieId": &ddbtypes.AttributeValueMemberS{Value: movieID},
	}
}

// Put records an interest. The insert is conditional on the pair not
// existing and a failed condition is swallowed, which makes the operation
// idempotent: the second put for the same pair leaves the original record
// (and its createdAt) in place and reports success.
func (r *InterestRepo) Put(ctx context.Context, in *model.Interest) error {
	item, err := attributevalue.MarshalMap(in)
	if err != nil {
		return fmt.Errorf("marshal interest: %w", err)
	}
	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(userId) AND attribute_not_exists(movieId)"),
	})
	if isConditionalCheckFailed(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("put interest: %w", err)
	}
	return nil
}

// Delete removes an interest. The delete is unconditional: removing a
// pair that does not exist is a no-op, not an error, which keeps client
// retries trivial.
func (r *InterestRepo) Delete(ctx context.Context, userID, movieID string) error {
	_, err := r.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       interestKey(userID, movieID),
	})
	if err != nil {
		return fmt.Errorf("delete interest: %w", err)
	}
	return nil
}

// ListByMovie returns every interest referencing the given movie via the
// MovieInterestsIndex GSI, following pagination keys until exhausted.
// A movie with no interests yields an empty slice, indistinguishable here
// from a movie that does not exist; existence checks belong to the caller.
func (r *InterestRepo) ListByMovie(ctx context.Context, movieID string) ([]*model.Interest, error) {
	var out []*model.Interest
	var startKey map[string]ddbtypes.AttributeValue
	for {
		resp, err := r.db.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.table),
			IndexName:              aws.String(model.MovieInterestsIndex),
			KeyConditionExpression: aws.String("movieId = :movieId"),
			ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
				":movieId": &ddbtypes.AttributeValueMemberS{Value: movieID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("query interests: %w", err)
		}
		for _, item := range resp.Items {
			in := new(model.Interest)
			if err := attributevalue.UnmarshalMap(item, in); err != nil {
				return nil, fmt.Errorf("unmarshal interest: %w", err)
			}
			out = append(out, in)
		}
		if len(resp.LastEvaluatedKey) == 0 {
			break
		}
		startKey = resp.LastEvaluatedKey
	}
	return out, nil
}
