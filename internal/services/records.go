package services

import (
  "encoding/json"
)

// Collection records travel as map[string]interface{} because callers may
// attach arbitrary fields; ids decoded from JSON arrive as float64.

func recordID(rec map[string]interface{}) (int, bool) {
  switch v := rec["id"].(type) {
  case float64:
    return int(v), true
  case int:
    return v, true
  case json.Number:
    i, err := v.Int64()
    if err != nil {
      return 0, false
    }
    return int(i), true
  }
  return 0, false
}

func findRecordByID(records []map[string]interface{}, id int) int {
  for i, rec := range records {
    if recID, ok := recordID(rec); ok && recID == id {
      return i
    }
  }
  return -1
}

// nextRecordID assigns max existing id + 1, or 1 for an empty collection.
func nextRecordID(records []map[string]interface{}) int {
  maxID := 0
  for _, rec := range records {
    if id, ok := recordID(rec); ok && id > maxID {
      maxID = id
    }
  }
  return maxID + 1
}

// decodeRecord copies a raw record into a typed struct via JSON.
func decodeRecord(rec map[string]interface{}, out interface{}) error {
  raw, err := json.Marshal(rec)
  if err != nil {
    return err
  }
  return json.Unmarshal(raw, out)
}

// encodeRecord turns a typed struct back into a raw record.
func encodeRecord(in interface{}) (map[string]interface{}, error) {
  raw, err := json.Marshal(in)
  if err != nil {
    return nil, err
  }
  var rec map[string]interface{}
  if err := json.Unmarshal(raw, &rec); err != nil {
    return nil, err
  }
  return rec, nil
}

// mergeRecord lays the fields of src over dst, keeping anything dst has that
// src does not mention.
func mergeRecord(dst, src map[string]interface{}) map[string]interface{} {
  if dst == nil {
    dst = map[string]interface{}{}
  }
  for k, v := range src {
    dst[k] = v
  }
  return dst
}
