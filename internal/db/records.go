package db

import (
	"encoding/json"
	"fmt"
	"log"
)

// DatabaseKey is the KV key holding the serialized Database.
const DatabaseKey = "webtools.database"

// RecordStore keeps the whole Database as one JSON value under DatabaseKey.
type RecordStore struct {
	kv KV
}

// NewRecordStore returns a RecordStore writing to kv.
func NewRecordStore(kv KV) *RecordStore {
	return &RecordStore{kv: kv}
}

// Load returns the persisted Database. A missing, unreadable or malformed
// value yields an empty Database.
func (r *RecordStore) Load() Database {
	raw, ok, err := r.kv.Get(DatabaseKey)
	if err != nil {
		log.Printf("load records: %v", err)
		return Database{Probes: []Record{}}
	}
	if !ok {
		return Database{Probes: []Record{}}
	}
	var d Database
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		log.Printf("load records: discarding unreadable value: %v", err)
		return Database{Probes: []Record{}}
	}
	if d.Probes == nil {
		d.Probes = []Record{}
	}
	return d
}

// Save overwrites the persisted Database with d.
func (r *RecordStore) Save(d Database) error {
	if d.Probes == nil {
		d.Probes = []Record{}
	}
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if err := r.kv.Set(DatabaseKey, string(data)); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	return nil
}

// Clear deletes the persisted Database. It does not touch any in-memory copy.
func (r *RecordStore) Clear() error {
	if err := r.kv.Delete(DatabaseKey); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	return nil
}
