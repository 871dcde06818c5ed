/*
 * Copyright © 2026 Jake Folio, All rights reserved.
 */

package ddb

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jakefolio/Aura.Marshal/record"
)

// RecordFromItem converts one already-fetched DynamoDB item into a
// Record. Scalar attributes (S, N, BOOL, NULL) map onto the record
// value kinds; nested or set-typed attributes have no record
// representation and fail with the attribute named.
func RecordFromItem(item map[string]types.AttributeValue) (*record.Record, error) {
	var fields map[string]any
	if err := attributevalue.UnmarshalMap(item, &fields); err != nil {
		return nil, fmt.Errorf("unmarshaling item: %w", err)
	}
	rec, err := record.FromMap(fields)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// RecordsFromItems converts a page of items in order, failing on the
// first item that does not convert.
func RecordsFromItems(items []map[string]types.AttributeValue) ([]*record.Record, error) {
	recs := make([]*record.Record, 0, len(items))
	for i, item := range items {
		rec, err := RecordFromItem(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
