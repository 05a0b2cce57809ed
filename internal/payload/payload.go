// Package payload serializes snapshots for the host process.
package payload

import (
	"encoding/json"
	"fmt"

	"github.com/Guliveer/vitalis/snapshot/internal/models"
)

// Empty is returned in place of a payload that could not be encoded.
const Empty = "{}"

// Encode returns the compact JSON encoding of a snapshot.
func Encode(m models.SystemMetrics) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// EncodePretty returns the snapshot as indented JSON for terminals.
func EncodePretty(m models.SystemMetrics) ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// EncodeOrEmpty never fails: any encoding error yields Empty.
func EncodeOrEmpty(m models.SystemMetrics) []byte {
	data, err := Encode(m)
	if err != nil {
		return []byte(Empty)
	}
	return data
}

// Decode parses a payload produced by Encode.
func Decode(data []byte) (models.SystemMetrics, error) {
	var m models.SystemMetrics
	if err := json.Unmarshal(data, &m); err != nil {
		return models.SystemMetrics{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return m, nil
}
