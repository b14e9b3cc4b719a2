package domain

import "testing"

func TestMsgLogDrain(t *testing.T) {
	log := NewMsgLog()

	if _, ok := log.Pop(); ok {
		t.Error("expected Pop on empty log to report nothing")
	}

	log.Log(YellMsg(Position{X: 3, Y: 3}))
	log.Log(ChangeLevelMsg())

	if log.Pending() != 2 {
		t.Fatalf("expected 2 pending, got %d", log.Pending())
	}

	first, ok := log.Pop()
	if !ok || first.Kind != MsgYell {
		t.Errorf("expected yell first, got %v ok=%v", first.Kind, ok)
	}
	second, ok := log.Pop()
	if !ok || second.Kind != MsgChangeLevel {
		t.Errorf("expected change level second, got %v ok=%v", second.Kind, ok)
	}
	if _, ok := log.Pop(); ok {
		t.Error("expected drained log")
	}
}

func TestMsgLogTurnRecord(t *testing.T) {
	log := NewMsgLog()
	log.Resolved(YellMsg(Position{X: 1, Y: 1}))
	log.Resolved(AttackMsg(1, 2, 3))

	turn := log.Turn()
	if len(turn) != 2 {
		t.Fatalf("expected 2 resolved messages, got %d", len(turn))
	}
	if turn[0].Kind != MsgYell || turn[1].Kind != MsgAttack {
		t.Errorf("unexpected turn order: %v, %v", turn[0].Kind, turn[1].Kind)
	}

	log.ClearTurn()
	if len(log.Turn()) != 0 {
		t.Error("expected turn record cleared")
	}
	// Clearing the turn record must not touch pending messages.
	log.Log(ChangeLevelMsg())
	log.ClearTurn()
	if log.Pending() != 1 {
		t.Errorf("expected 1 pending after ClearTurn, got %d", log.Pending())
	}
}
