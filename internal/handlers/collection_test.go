package handlers

import (
  "encoding/json"
  "net/http"
  "net/http/httptest"
  "strings"
  "testing"
  "github.com/gin-gonic/gin"
  "github.com/avenlabs/marketops-backend/internal/logger"
  "github.com/avenlabs/marketops-backend/internal/services"
)

func newCRUDRouter() (*memCollections, *gin.Engine) {
  gin.SetMode(gin.TestMode)
  store := &memCollections{data: map[string][]map[string]interface{}{
    "campaigns": {
      {"id": 1, "name": "Summer Launch", "status": "Active"},
    },
  }}
  log := logger.NewNop()
  h := NewCollectionHandler(log, services.NewCollectionService(log, store))

  router := gin.New()
  router.GET("/:collection", h.List)
  router.POST("/:collection", h.Create)
  router.GET("/:collection/:id", h.Get)
  router.PUT("/:collection/:id", h.Update)
  router.DELETE("/:collection/:id", h.Delete)
  return store, router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
  rec := httptest.NewRecorder()
  var reader *strings.Reader
  if body == "" {
    reader = strings.NewReader("")
  } else {
    reader = strings.NewReader(body)
  }
  req := httptest.NewRequest(method, path, reader)
  req.Header.Set("Content-Type", "application/json")
  router.ServeHTTP(rec, req)
  return rec
}

func TestCollectionCRUDRoundTrip(t *testing.T) {
  store, router := newCRUDRouter()

  // Create assigns next id.
  rec := doJSON(router, http.MethodPost, "/campaigns", `{"name":"Brand Refresh"}`)
  if rec.Code != http.StatusCreated {
    t.Fatalf("create status = %d", rec.Code)
  }
  var created struct {
    Data map[string]interface{} `json:"data"`
  }
  if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
    t.Fatalf("create response unreadable: %v", err)
  }
  if created.Data["id"] != float64(2) {
    t.Fatalf("created id = %v, want 2", created.Data["id"])
  }

  // Update merges fields.
  rec = doJSON(router, http.MethodPut, "/campaigns/1", `{"status":"Completed"}`)
  if rec.Code != http.StatusOK {
    t.Fatalf("update status = %d", rec.Code)
  }

  // Get returns the merged record.
  rec = doJSON(router, http.MethodGet, "/campaigns/1", "")
  if rec.Code != http.StatusOK {
    t.Fatalf("get status = %d", rec.Code)
  }
  var fetched struct {
    Data map[string]interface{} `json:"data"`
  }
  if err := json.Unmarshal(rec.Body.Bytes(), &fetched); err != nil {
    t.Fatalf("get response unreadable: %v", err)
  }
  if fetched.Data["status"] != "Completed" || fetched.Data["name"] != "Summer Launch" {
    t.Fatalf("merged record = %v", fetched.Data)
  }

  // Delete filters the record out.
  rec = doJSON(router, http.MethodDelete, "/campaigns/1", "")
  if rec.Code != http.StatusOK {
    t.Fatalf("delete status = %d", rec.Code)
  }
  if len(store.data["campaigns"]) != 1 {
    t.Fatalf("store after delete = %v", store.data["campaigns"])
  }

  // Get-by-id 404s once gone.
  rec = doJSON(router, http.MethodGet, "/campaigns/1", "")
  if rec.Code != http.StatusNotFound {
    t.Fatalf("get after delete status = %d, want 404", rec.Code)
  }
}

func TestCollectionListUnknownNameIsEmpty(t *testing.T) {
  _, router := newCRUDRouter()
  rec := doJSON(router, http.MethodGet, "/widgets", "")
  if rec.Code != http.StatusOK {
    t.Fatalf("status = %d", rec.Code)
  }
  var resp struct {
    Data []map[string]interface{} `json:"data"`
  }
  if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
    t.Fatalf("response unreadable: %v", err)
  }
  if len(resp.Data) != 0 {
    t.Fatalf("data = %v, want empty", resp.Data)
  }
}
