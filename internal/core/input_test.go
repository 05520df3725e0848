package core

import "testing"

func TestKeyStateConsumeIsEdgeTriggered(t *testing.T) {
	var s KeyState
	s.Press(KeyConfirm)

	if !s.Consume(KeyConfirm) {
		t.Fatal("first Consume() of a fresh press should succeed")
	}
	if s.Consume(KeyConfirm) {
		t.Error("second Consume() of the same press should fail")
	}
	if !s.IsDown(KeyConfirm) {
		t.Error("key should still be held after Consume()")
	}

	s.Release(KeyConfirm)
	s.Press(KeyConfirm)
	if !s.Consume(KeyConfirm) {
		t.Error("Consume() after release and re-press should succeed")
	}
}

func TestKeyStateIgnoresInvalidKeys(t *testing.T) {
	var s KeyState
	s.Press(KeyNone)
	s.Press(KeyCount)
	s.Press(Key(-3))

	if s.IsDown(KeyNone) || s.IsDown(KeyCount) {
		t.Error("invalid keys should never report down")
	}
}

func TestKeyStateReleaseAll(t *testing.T) {
	var s KeyState
	s.Press(KeyLeft)
	s.Press(KeyNext)
	s.Consume(KeyNext)

	s.ReleaseAll()

	if s.IsDown(KeyLeft) || s.IsDown(KeyNext) {
		t.Error("ReleaseAll() should release every key")
	}
	if s.Processed[KeyNext] {
		t.Error("ReleaseAll() should clear processed flags")
	}
}

func TestKeyString(t *testing.T) {
	if KeyLaunch.String() != "Launch" {
		t.Errorf("KeyLaunch.String() = %q", KeyLaunch.String())
	}
	if Key(99).String() != "Unknown" {
		t.Errorf("Key(99).String() = %q", Key(99).String())
	}
}
