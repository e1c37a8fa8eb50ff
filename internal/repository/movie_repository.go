// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for the Movies table: conditional
// creation, point lookup, full listing, conditional status updates and the
// transactional cascade delete that removes a movie together with every
// interest that references it.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/iliyamo/movie-wishlist/internal/model"
)

// maxTransactItems is the DynamoDB limit on items in one TransactWriteItems
// call. One slot is always taken by the movie row itself.
const maxTransactItems = 100

// ErrMovieNotFound is returned when a movie cannot be found in the table.
var ErrMovieNotFound = errors.New("movie not found")

// MovieRepo encapsulates all Movies table access. It also knows the
// Interests table name because the cascade delete must write both tables
// in a single transaction.
type MovieRepo struct {
	db             DynamoAPI
	table          string
	interestsTable string
}

// NewMovieRepo constructs a MovieRepo with the shared DynamoDB client and
// the two table names. This function allows dependency injection of the
// client in tests and at startup.
func NewMovieRepo(db DynamoAPI, table, interestsTable string) *MovieRepo {
	return &MovieRepo{db: db, table: table, interestsTable: interestsTable}
}

func movieKey(id string) map[string]ddbtypes.AttributeValue {
	return map[string]ddbtypes.AttributeValue{
		"movieId": &ddbtypes.AttributeValueMemberS{Value: id},
	}
}

// Create inserts a new movie. The write is conditional on the id not
// existing so that an id collision fails with ErrConflict instead of
// replacing someone else's movie.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	item, err := attributevalue.MarshalMap(m)
	if err != nil {
		return fmt.Errorf("marshal movie: %w", err)
	}
	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(movieId)"),
	})
	if isConditionalCheckFailed(err) {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("put movie: %w", err)
	}
	return nil
}

// GetByID fetches a movie by its id. It returns ErrMovieNotFound if no
// item exists under that key.
func (r *MovieRepo) GetByID(ctx context.Context, id string) (*model.Movie, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       movieKey(id),
	})
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, ErrMovieNotFound
	}
	var m model.Movie
	if err := attributevalue.UnmarshalMap(out.Item, &m); err != nil {
		return nil, fmt.Errorf("unmarshal movie: %w", err)
	}
	return &m, nil
}

// ListAll returns every movie in the table. The scan follows pagination
// keys until the table is exhausted; ordering is left to the caller.
func (r *MovieRepo) ListAll(ctx context.Context) ([]*model.Movie, error) {
	var out []*model.Movie
	var startKey map[string]ddbtypes.AttributeValue
	for {
		resp, err := r.db.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan movies: %w", err)
		}
		for _, item := range resp.Items {
			m := new(model.Movie)
			if err := attributevalue.UnmarshalMap(item, m); err != nil {
				return nil, fmt.Errorf("unmarshal movie: %w", err)
			}
			out = append(out, m)
		}
		if len(resp.LastEvaluatedKey) == 0 {
			break
		}
		startKey = resp.LastEvaluatedKey
	}
	return out, nil
}

// UpdateStatus sets the movie's status and bumps updatedAt. The update is
// conditional on the movie existing, so a status write can never create a
// phantom row; a missing movie yields ErrMovieNotFound. Writing the
// current status again succeeds and is a no-op apart from updatedAt.
// The fully updated movie is returned.
func (r *MovieRepo) UpdateStatus(ctx context.Context, id, status string, now int64) (*model.Movie, error) {
	out, err := r.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.table),
		Key:                 movieKey(id),
		UpdateExpression:    aws.String("SET #status = :status, updatedAt = :updatedAt"),
		ConditionExpression: aws.String("attribute_exists(movieId)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
			":status":    &ddbtypes.AttributeValueMemberS{Value: status},
			":updatedAt": &ddbtypes.AttributeValueMemberN{Value: fmt.Sprintf("%d", now)},
		},
		ReturnValues: ddbtypes.ReturnValueAllNew,
	})
	if isConditionalCheckFailed(err) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update movie status: %w", err)
	}
	var m model.Movie
	if err := attributevalue.UnmarshalMap(out.Attributes, &m); err != nil {
		return nil, fmt.Errorf("unmarshal movie: %w", err)
	}
	return &m, nil
}

// DeleteCascade removes the movie and every supplied interest in a single
// TransactWriteItems call, so readers never observe the movie gone while
// interests remain or the reverse. The movie delete carries an
// attribute_exists condition; a missing movie cancels the whole
// transaction and yields ErrMovieNotFound with interests untouched. When
// the batch would exceed the transaction item limit the delete fails
// closed with ErrTooManyInterests instead of splitting the write.
func (r *MovieRepo) DeleteCascade(ctx context.Context, id string, interests []*model.Interest) error {
	if len(interests)+1 > maxTransactItems {
		return ErrTooManyInterests
	}

	items := make([]ddbtypes.TransactWriteItem, 0, len(interests)+1)
	items = append(items, ddbtypes.TransactWriteItem{
		Delete: &ddbtypes.Delete{
			TableName:           aws.String(r.table),
			Key:                 movieKey(id),
			ConditionExpression: aws.String("attribute_exists(movieId)"),
		},
	})
	for _, in := range interests {
		items = append(items, ddbtypes.TransactWriteItem{
			Delete: &ddbtypes.Delete{
				TableName: aws.String(r.interestsTable),
				Key: map[string]ddbtypes.AttributeValue{
					"userId":  &ddbtypes.AttributeValueMemberS{Value: in.UserID},
					"movieId": &ddbtypes.AttributeValueMemberS{Value: in.MovieID},
				},
			},
		})
	}

	_, err := r.db.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if isConditionalCheckFailed(err) || isTransactionCanceledOnCondition(err) {
		return ErrMovieNotFound
	}
	if err != nil {
		return fmt.Errorf("delete movie cascade: %w", err)
	}
	return nil
}
