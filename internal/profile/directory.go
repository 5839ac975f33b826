// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Directory is the users blob: identity -> record, in storage order.
//
// Storage order is insertion order. A renamed record moves to the end, the
// same as deleting the old key and inserting the new one. Login by contact
// resolves duplicates by this order.
type Directory struct {
	order   []string
	records map[string]*Record
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{records: map[string]*Record{}}
}

// Len returns the number of records.
func (directory *Directory) Len() int {
	return len(directory.order)
}

// Get returns the stored record for identity.
func (directory *Directory) Get(identity string) (*Record, bool) {
	record, ok := directory.records[identity]
	return record, ok
}

// Has reports whether identity is allocated.
func (directory *Directory) Has(identity string) bool {
	_, ok := directory.records[identity]
	return ok
}

// Put stores record under record.Identity. New identities are appended;
// existing ones keep their position.
func (directory *Directory) Put(record *Record) {
	if _, exists := directory.records[record.Identity]; !exists {
		directory.order = append(directory.order, record.Identity)
	}
	directory.records[record.Identity] = record
}

// Rekey moves the record at oldIdentity to newIdentity in one step.
// The caller checks that newIdentity is free.
func (directory *Directory) Rekey(oldIdentity, newIdentity string) {
	record, ok := directory.records[oldIdentity]
	if !ok {
		return
	}
	directory.remove(oldIdentity)
	record.Identity = newIdentity
	directory.Put(record)
}

func (directory *Directory) remove(identity string) {
	delete(directory.records, identity)
	for i, key := range directory.order {
		if key == identity {
			directory.order = append(directory.order[:i], directory.order[i+1:]...)
			return
		}
	}
}

// Records returns the records in storage order.
func (directory *Directory) Records() []*Record {
	out := make([]*Record, 0, len(directory.order))
	for _, identity := range directory.order {
		out = append(out, directory.records[identity])
	}
	return out
}

// MaxSequentialID returns the largest sequential ID in the directory, or 0.
func (directory *Directory) MaxSequentialID() int {
	highest := 0
	for _, record := range directory.records {
		highest = max(highest, record.SequentialID)
	}
	return highest
}

// MarshalJSON encodes the directory as a JSON object whose key order is the
// storage order.
func (directory *Directory) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')

	for i, identity := range directory.order {
		if i > 0 {
			buffer.WriteByte(',')
		}

		key, err := json.Marshal(identity)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(directory.records[identity])
		if err != nil {
			return nil, err
		}

		buffer.Write(key)
		buffer.WriteByte(':')
		buffer.Write(value)
	}

	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the key order. The object key
// is authoritative for the record identity.
func (directory *Directory) UnmarshalJSON(data []byte) error {
	*directory = *NewDirectory()

	decoder := json.NewDecoder(bytes.NewReader(data))

	token, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("profile_directory_decode_failed: %w", err)
	}
	if token == nil {
		return nil
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("profile_directory_decode_failed: expected object, got %v", token)
	}

	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return fmt.Errorf("profile_directory_decode_failed: %w", err)
		}
		identity, _ := keyToken.(string)

		record := &Record{}
		if err := decoder.Decode(record); err != nil {
			return fmt.Errorf("profile_directory_decode_failed: %s: %w", identity, err)
		}

		record.Identity = identity
		directory.Put(record)
	}

	return nil
}
