// Package store contains the document store adapters
package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrUnavailable is returned when no connection to the document store was established
	ErrUnavailable = errors.New("store_unavailable")
	// ErrWrite is returned when a document could not be persisted
	ErrWrite = errors.New("store_write_error")
	// ErrNotFound is returned when the document to update does not exist
	ErrNotFound = errors.New("document_not_found")
)

// Filter matches documents whose fields equal the given values
type Filter map[string]interface{}

// Query describes which documents to fetch from a collection
type Query struct {
	Filter Filter
	// Newest orders the documents by creation time, newest first
	Newest bool
	// Limit caps the number of documents returned, zero means no limit
	Limit int64
}

// Store is a document store that keeps schemaless documents in named collections
type Store interface {
	// CreateDocument inserts the document and returns the store assigned id
	CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error)
	// GetDocuments decodes the matching documents into out, a pointer to a slice
	GetDocuments(ctx context.Context, collection string, query Query, out interface{}) error
	// UpdateDocument sets the given fields on the document with the given id
	UpdateDocument(ctx context.Context, collection, id string, fields map[string]interface{}) error
	// ListCollections returns the names of the collections in the store
	ListCollections(ctx context.Context) ([]string, error)
	// Ping checks the connection with the store
	Ping(ctx context.Context) error
}

func writeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrWrite, err)
}

// toFields encodes a typed document into a field map stamped with the creation time
func toFields(doc interface{}, now time.Time) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	delete(fields, "_id")
	fields["created_at"] = now
	fields["updated_at"] = now
	return fields, nil
}

// sliceOf validates that out is a pointer to a slice and returns the slice value
func sliceOf(out interface{}) (reflect.Value, error) {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return reflect.Value{}, fmt.Errorf("out must be a pointer to a slice, got %T", out)
	}
	return v.Elem(), nil
}

// Unavailable is used in place of a store when the connection could not be established
type Unavailable struct{}

// CreateDocument always fails with ErrUnavailable
func (Unavailable) CreateDocument(context.Context, string, interface{}) (string, error) {
	return "", ErrUnavailable
}

// GetDocuments always fails with ErrUnavailable
func (Unavailable) GetDocuments(context.Context, string, Query, interface{}) error {
	return ErrUnavailable
}

// UpdateDocument always fails with ErrUnavailable
func (Unavailable) UpdateDocument(context.Context, string, string, map[string]interface{}) error {
	return ErrUnavailable
}

// ListCollections always fails with ErrUnavailable
func (Unavailable) ListCollections(context.Context) ([]string, error) {
	return nil, ErrUnavailable
}

// Ping always fails with ErrUnavailable
func (Unavailable) Ping(context.Context) error {
	return ErrUnavailable
}

// IsUnavailable reports wether the store is the unavailable stand in
func IsUnavailable(s Store) bool {
	if s == nil {
		return true
	}
	_, ok := s.(Unavailable)
	return ok
}
