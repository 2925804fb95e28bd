package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNotificationMarshalEmitsLegacyFields(t *testing.T) {
	userID := 2
	created := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	n := Notification{
		ID:        7,
		UserID:    &userID,
		Title:     "QC Review",
		Message:   `Asset "Blog Post" approved!`,
		Type:      NotificationSuccess,
		Read:      true,
		CreatedAt: created,
	}

	raw, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var wire map[string]interface{}
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if wire["message"] != wire["text"] {
		t.Fatalf("message %v != text %v", wire["message"], wire["text"])
	}
	if wire["read"] != true {
		t.Fatalf("read = %v", wire["read"])
	}
	if wire["is_read"] != float64(1) {
		t.Fatalf("is_read = %v, want 1", wire["is_read"])
	}
	if wire["created_at"] != wire["time"] {
		t.Fatalf("created_at %v != time %v", wire["created_at"], wire["time"])
	}
}

func TestNotificationUnmarshalAcceptsEitherSpelling(t *testing.T) {
	cases := []struct {
		name string
		json string
		want Notification
	}{
		{
			name: "canonical_fields",
			json: `{"id":1,"message":"hello","read":true,"created_at":"2026-03-14T10:00:00Z","type":"info"}`,
			want: Notification{ID: 1, Message: "hello", Read: true, Type: NotificationInfo},
		},
		{
			name: "legacy_fields",
			json: `{"id":2,"text":"hello","is_read":1,"time":"2026-03-14T10:00:00Z","type":"warning"}`,
			want: Notification{ID: 2, Message: "hello", Read: true, Type: NotificationWarning},
		},
		{
			name: "legacy_unread",
			json: `{"id":3,"text":"hi","is_read":0,"time":"2026-03-14T10:00:00Z","type":"error"}`,
			want: Notification{ID: 3, Message: "hi", Read: false, Type: NotificationError},
		},
		{
			name: "canonical_wins_over_legacy",
			json: `{"id":4,"message":"new","text":"old","read":false,"is_read":1,"type":"info"}`,
			want: Notification{ID: 4, Message: "new", Read: false, Type: NotificationInfo},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Notification
			if err := json.Unmarshal([]byte(tc.json), &got); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if got.ID != tc.want.ID || got.Message != tc.want.Message || got.Read != tc.want.Read || got.Type != tc.want.Type {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestNotificationRoundTripStaysInSync(t *testing.T) {
	n := Notification{ID: 1, Message: "ping", Type: NotificationInfo, CreatedAt: time.Now().UTC()}
	raw, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var back Notification
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.Message != n.Message || back.Read != n.Read || back.ID != n.ID {
		t.Fatalf("round trip changed record: %+v", back)
	}
}
