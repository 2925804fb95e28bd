package services

import (
  "context"
  "encoding/json"
  "fmt"
)

// fakeCollections is an in-memory CollectionRepo. Records round-trip through
// JSON on every Load/Save so tests observe the same aliasing behavior the
// real document store has.
type fakeCollections struct {
  data      map[string][]map[string]interface{}
  failSaves bool
  saves     int
}

func newFakeCollections() *fakeCollections {
  return &fakeCollections{data: map[string][]map[string]interface{}{}}
}

func (f *fakeCollections) seed(name string, records ...map[string]interface{}) {
  copied, err := copyRecords(records)
  if err != nil {
    panic(err)
  }
  f.data[name] = copied
}

func (f *fakeCollections) Load(ctx context.Context, name string) []map[string]interface{} {
  records, ok := f.data[name]
  if !ok {
    return []map[string]interface{}{}
  }
  copied, err := copyRecords(records)
  if err != nil {
    return []map[string]interface{}{}
  }
  return copied
}

func (f *fakeCollections) Save(ctx context.Context, name string, records []map[string]interface{}) error {
  f.saves++
  if f.failSaves {
    return fmt.Errorf("save disabled")
  }
  copied, err := copyRecords(records)
  if err != nil {
    return err
  }
  f.data[name] = copied
  return nil
}

func copyRecords(records []map[string]interface{}) ([]map[string]interface{}, error) {
  raw, err := json.Marshal(records)
  if err != nil {
    return nil, err
  }
  var out []map[string]interface{}
  if err := json.Unmarshal(raw, &out); err != nil {
    return nil, err
  }
  if out == nil {
    out = []map[string]interface{}{}
  }
  return out, nil
}
