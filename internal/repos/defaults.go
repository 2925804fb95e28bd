package repos

import (
  _ "embed"
  "encoding/json"
  "sync"
  "gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var (
  defaultsOnce sync.Once
  defaultsData map[string][]map[string]interface{}
)

// DefaultRecords returns a fresh copy of the seed rows for a collection, or
// an empty slice for unknown names. Copies go through JSON so callers can
// mutate what they get back without corrupting the seed.
func DefaultRecords(name string) []map[string]interface{} {
  defaultsOnce.Do(func() {
    defaultsData = map[string][]map[string]interface{}{}
    // The file ships inside the binary; a parse failure here is a build
    // defect, and the empty map keeps Load degrading to empty slices.
    _ = yaml.Unmarshal(defaultsYAML, &defaultsData)
  })
  seed, ok := defaultsData[name]
  if !ok || len(seed) == 0 {
    return []map[string]interface{}{}
  }
  raw, err := json.Marshal(seed)
  if err != nil {
    return []map[string]interface{}{}
  }
  var out []map[string]interface{}
  if err := json.Unmarshal(raw, &out); err != nil {
    return []map[string]interface{}{}
  }
  return out
}
