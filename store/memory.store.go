package store

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type memoryDocument struct {
	seq    int64
	fields bson.M
}

// Memory is an in process store, documents are kept bson encoded so that they decode
// exactly like the ones read from mongo
type Memory struct {
	mu          sync.RWMutex
	seq         int64
	collections map[string]map[string]*memoryDocument
	now         func() time.Time
}

// NewMemory creates an empty in memory store
func NewMemory() *Memory {
	return &Memory{
		collections: make(map[string]map[string]*memoryDocument),
		now:         time.Now,
	}
}

// CreateDocument inserts the document and returns a generated uuid
func (m *Memory) CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error) {
	fields, err := toFields(doc, m.now().UTC())
	if err != nil {
		return "", writeErr(err)
	}

	id := uuid.NewString()
	fields["_id"] = id

	m.mu.Lock()
	defer m.mu.Unlock()

	docs, ok := m.collections[collection]
	if !ok {
		docs = make(map[string]*memoryDocument)
		m.collections[collection] = docs
	}
	m.seq++
	docs[id] = &memoryDocument{seq: m.seq, fields: fields}

	return id, nil
}

// GetDocuments decodes the matching documents into out
func (m *Memory) GetDocuments(ctx context.Context, collection string, query Query, out interface{}) error {
	slice, err := sliceOf(out)
	if err != nil {
		return err
	}

	m.mu.RLock()
	var matched []*memoryDocument
	for _, doc := range m.collections[collection] {
		if matches(doc.fields, query.Filter) {
			matched = append(matched, doc)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if query.Newest {
			return matched[i].seq > matched[j].seq
		}
		return matched[i].seq < matched[j].seq
	})
	if query.Limit > 0 && int64(len(matched)) > query.Limit {
		matched = matched[:query.Limit]
	}

	// fields are encoded under the lock, UpdateDocument mutates them in place
	raws := make([][]byte, 0, len(matched))
	for _, doc := range matched {
		raw, err := bson.Marshal(doc.fields)
		if err != nil {
			m.mu.RUnlock()
			return err
		}
		raws = append(raws, raw)
	}
	m.mu.RUnlock()

	result := reflect.MakeSlice(slice.Type(), 0, len(raws))
	for _, raw := range raws {
		elem := reflect.New(slice.Type().Elem())
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, elem.Elem())
	}
	slice.Set(result)

	return nil
}

// UpdateDocument sets the given fields on the document
func (m *Memory) UpdateDocument(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	for key, value := range fields {
		doc.fields[key] = value
	}
	doc.fields["updated_at"] = m.now().UTC()

	return nil
}

// ListCollections returns the collections that hold at least one document
func (m *Memory) ListCollections(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// Ping always succeeds
func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

func matches(fields bson.M, filter Filter) bool {
	for key, want := range filter {
		got, ok := fields[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
