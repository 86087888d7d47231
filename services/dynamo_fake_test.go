package services

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoAPI for exercising the check-then-insert
// flows without a real table. Lookups match on every key attribute; only
// the operations the tested paths touch are meaningfully implemented.
type fakeDynamo struct {
	tables map[string][]map[string]types.AttributeValue
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string][]map[string]types.AttributeValue{}}
}

func keyMatches(item, key map[string]types.AttributeValue) bool {
	for name, want := range key {
		wantS, ok := want.(*types.AttributeValueMemberS)
		if !ok {
			return false
		}
		haveS, ok := item[name].(*types.AttributeValueMemberS)
		if !ok || haveS.Value != wantS.Value {
			return false
		}
	}
	return true
}

func (f *fakeDynamo) PutItem(ctx context.Context, tableName string, item interface{}) error {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	f.tables[tableName] = append(f.tables[tableName], marshaled)
	return nil
}

func (f *fakeDynamo) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	for _, item := range f.tables[tableName] {
		if keyMatches(item, key) {
			return item, nil
		}
	}
	return nil, ErrItemNotFound
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) error {
	items := f.tables[tableName]
	for i, item := range items {
		if keyMatches(item, key) {
			f.tables[tableName] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeDynamo) QueryItems(ctx context.Context, tableName string, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
	return f.tables[tableName], nil
}

func (f *fakeDynamo) QueryItemsWithOptions(ctx context.Context, tableName string, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32, latestFirst bool) ([]map[string]types.AttributeValue, error) {
	return f.tables[tableName], nil
}

func (f *fakeDynamo) UpdateItem(ctx context.Context, tableName string, updateExpression string, key map[string]types.AttributeValue, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) (map[string]types.AttributeValue, error) {
	return map[string]types.AttributeValue{}, nil
}

func (f *fakeDynamo) ScanWithFilter(ctx context.Context, tableName string, filterFunc func(map[string]types.AttributeValue) bool, excludeFields map[string]string, result interface{}) error {
	return attributevalue.UnmarshalListOfMaps(f.tables[tableName], result)
}
