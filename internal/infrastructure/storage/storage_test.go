package storage

import (
	"bytes"
	"encoding/json"
	"testing"

	"crawl-server/internal/domain"
)

func TestReplayRoundTrip(t *testing.T) {
	session := &domain.ReplaySession{
		Seed:      12345,
		Timestamp: 1756339200,
		Actions: []domain.ReplayAction{
			{Turn: 0, Action: "MOVE", Payload: json.RawMessage(`{"dx":1,"dy":0}`)},
			{Turn: 1, Action: "PASS"},
			{Turn: 2, Action: "THROW", Payload: json.RawMessage(`{"x":4,"y":9}`)},
		},
	}

	var buf bytes.Buffer
	if err := writeBinary(&buf, session); err != nil {
		t.Fatalf("writeBinary: %v", err)
	}

	got, err := readBinary(&buf)
	if err != nil {
		t.Fatalf("readBinary: %v", err)
	}

	if got.Seed != session.Seed {
		t.Errorf("seed = %d, want %d", got.Seed, session.Seed)
	}
	if got.Timestamp != session.Timestamp {
		t.Errorf("timestamp = %d, want %d", got.Timestamp, session.Timestamp)
	}
	if len(got.Actions) != len(session.Actions) {
		t.Fatalf("got %d actions, want %d", len(got.Actions), len(session.Actions))
	}
	for i, act := range got.Actions {
		want := session.Actions[i]
		if act.Turn != want.Turn || act.Action != want.Action {
			t.Errorf("action %d = %d %s, want %d %s", i, act.Turn, act.Action, want.Turn, want.Action)
		}
		if string(act.Payload) != string(want.Payload) {
			t.Errorf("action %d payload = %s, want %s", i, act.Payload, want.Payload)
		}
	}
}

func TestReplayRejectsBadFiles(t *testing.T) {
	t.Run("Wrong magic", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeBinary(&buf, &domain.ReplaySession{Seed: 1}); err != nil {
			t.Fatalf("writeBinary: %v", err)
		}
		raw := buf.Bytes()
		copy(raw[:4], "NOPE")

		if _, err := readBinary(bytes.NewReader(raw)); err == nil {
			t.Error("expected error for wrong magic")
		}
	})

	t.Run("Truncated file", func(t *testing.T) {
		var buf bytes.Buffer
		session := &domain.ReplaySession{
			Seed:    1,
			Actions: []domain.ReplayAction{{Turn: 0, Action: "PASS"}},
		}
		if err := writeBinary(&buf, session); err != nil {
			t.Fatalf("writeBinary: %v", err)
		}
		raw := buf.Bytes()

		if _, err := readBinary(bytes.NewReader(raw[:len(raw)-2])); err == nil {
			t.Error("expected error for truncated file")
		}
	})
}

func TestSaveAndLoadFile(t *testing.T) {
	svc := NewReplayService(t.TempDir())

	session := &domain.ReplaySession{
		Seed:      99,
		Timestamp: 1756339200,
		Actions:   []domain.ReplayAction{{Turn: 0, Action: "YELL"}},
	}

	path, err := svc.Save(session)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := svc.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Seed != 99 || len(got.Actions) != 1 {
		t.Errorf("loaded session = seed %d, %d actions", got.Seed, len(got.Actions))
	}
}
