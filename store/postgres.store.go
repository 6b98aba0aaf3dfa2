package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/VinukaThejana/immerzo/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Postgres is a document store that keeps every collection in a single table with a
// JSONB payload column
type Postgres struct {
	DB  *gorm.DB
	now func() time.Time
}

// NewPostgres creates a store on the given connection
func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{DB: db, now: time.Now}
}

// CreateDocument inserts the document and returns the generated uuid
func (p *Postgres) CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error) {
	now := p.now().UTC()

	data, err := json.Marshal(doc)
	if err != nil {
		return "", writeErr(err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return "", writeErr(err)
	}
	delete(fields, "id")
	fields["created_at"] = now
	fields["updated_at"] = now

	data, err = json.Marshal(fields)
	if err != nil {
		return "", writeErr(err)
	}

	id := uuid.New()
	err = p.DB.WithContext(ctx).Create(&models.Document{
		ID:         &id,
		Collection: collection,
		Data:       string(data),
		CreatedAt:  now,
		UpdatedAt:  now,
	}).Error
	if err != nil {
		return "", writeErr(err)
	}

	return id.String(), nil
}

// GetDocuments decodes the matching documents into out
func (p *Postgres) GetDocuments(ctx context.Context, collection string, query Query, out interface{}) error {
	if _, err := sliceOf(out); err != nil {
		return err
	}

	tx := p.DB.WithContext(ctx).Where(&models.Document{Collection: collection})
	if len(query.Filter) > 0 {
		filter, err := json.Marshal(query.Filter)
		if err != nil {
			return err
		}
		tx = tx.Where("data @> ?::jsonb", string(filter))
	}
	// seq orders documents created within the same timestamp
	if query.Newest {
		tx = tx.Order("created_at desc").Order("seq desc")
	} else {
		tx = tx.Order("created_at asc").Order("seq asc")
	}
	if query.Limit > 0 {
		tx = tx.Limit(int(query.Limit))
	}

	var docs []models.Document
	if err := tx.Find(&docs).Error; err != nil {
		return err
	}

	payloads := make([]json.RawMessage, 0, len(docs))
	for _, doc := range docs {
		var fields map[string]interface{}
		if err := json.Unmarshal([]byte(doc.Data), &fields); err != nil {
			return err
		}
		fields["id"] = doc.ID.String()

		payload, err := json.Marshal(fields)
		if err != nil {
			return err
		}
		payloads = append(payloads, payload)
	}

	all, err := json.Marshal(payloads)
	if err != nil {
		return err
	}
	return json.Unmarshal(all, out)
}

// UpdateDocument merges the given fields into the document payload
func (p *Postgres) UpdateDocument(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	docID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	now := p.now().UTC()
	patch := map[string]interface{}{"updated_at": now}
	for key, value := range fields {
		patch[key] = value
	}
	data, err := json.Marshal(patch)
	if err != nil {
		return writeErr(err)
	}

	res := p.DB.WithContext(ctx).Model(&models.Document{}).
		Where(&models.Document{ID: &docID, Collection: collection}).
		Updates(map[string]interface{}{
			"data":       gorm.Expr("data || ?::jsonb", string(data)),
			"updated_at": now,
		})
	if res.Error != nil {
		return writeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// ListCollections returns the distinct collections that hold documents
func (p *Postgres) ListCollections(ctx context.Context) ([]string, error) {
	var names []string
	err := p.DB.WithContext(ctx).Model(&models.Document{}).
		Distinct("collection").
		Order("collection").
		Pluck("collection", &names).Error
	return names, err
}

// Ping checks the connection with the database
func (p *Postgres) Ping(ctx context.Context) error {
	db, err := p.DB.DB()
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}
