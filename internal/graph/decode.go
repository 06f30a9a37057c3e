// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package graph

import (
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Record decoding helpers. Decoding is fail-fast: a missing key or an
// unexpected type is a bug in the query or the data model, so it surfaces
// as an error instead of a silent zero value. Null properties are the one
// exception and decode to the zero value, since optional item properties
// (rating, duration) may legitimately be absent.

// stringField extracts a string value from a record.
func stringField(rec *neo4j.Record, key string) (string, error) {
	raw, ok := rec.Get(key)
	if !ok {
		return "", fmt.Errorf("record missing key %q", key)
	}
	if raw == nil {
		return "", nil
	}
	v, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("key %q: expected string, got %T", key, raw)
	}
	return v, nil
}

// intField extracts an integer value from a record. Neo4j returns all
// integers as int64; floats are rejected.
func intField(rec *neo4j.Record, key string) (int64, error) {
	raw, ok := rec.Get(key)
	if !ok {
		return 0, fmt.Errorf("record missing key %q", key)
	}
	if raw == nil {
		return 0, nil
	}
	v, ok := raw.(int64)
	if !ok {
		return 0, fmt.Errorf("key %q: expected int64, got %T", key, raw)
	}
	return v, nil
}

// floatField extracts a float value, accepting integer values as well
// since Cypher arithmetic over integers yields integers.
func floatField(rec *neo4j.Record, key string) (float64, error) {
	raw, ok := rec.Get(key)
	if !ok {
		return 0, fmt.Errorf("record missing key %q", key)
	}
	switch v := raw.(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("key %q: expected number, got %T", key, raw)
	}
}

// stringSliceField extracts a list of strings from a record. Null list
// elements (from collect over an OPTIONAL MATCH with no matches) are
// dropped.
func stringSliceField(rec *neo4j.Record, key string) ([]string, error) {
	raw, ok := rec.Get(key)
	if !ok {
		return nil, fmt.Errorf("record missing key %q", key)
	}
	if raw == nil {
		return []string{}, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("key %q: expected list, got %T", key, raw)
	}

	out := make([]string, 0, len(list))
	for i, item := range list {
		if item == nil {
			continue
		}
		v, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("key %q[%d]: expected string, got %T", key, i, item)
		}
		out = append(out, v)
	}
	return out, nil
}

// labelsField extracts node labels from a record key holding labels(n).
func labelsField(rec *neo4j.Record, key string) ([]string, error) {
	return stringSliceField(rec, key)
}
