package main

import "testing"

func TestConnectionLimiter(t *testing.T) {
	l := newConnectionLimiter(2)

	for i := 1; i <= 2; i++ {
		count, ok := l.acquire("10.0.0.1")
		if !ok || count != i {
			t.Fatalf("connection %d: count=%d ok=%v", i, count, ok)
		}
	}
	if _, ok := l.acquire("10.0.0.1"); ok {
		t.Error("third connection accepted")
	}
	if _, ok := l.acquire("10.0.0.2"); !ok {
		t.Error("other ip refused")
	}

	if left := l.release("10.0.0.1"); left != 1 {
		t.Errorf("count after release = %d", left)
	}
	if _, ok := l.acquire("10.0.0.1"); !ok {
		t.Error("connection refused after a release")
	}

	l.release("10.0.0.2")
	if _, ok := l.ipCounter["10.0.0.2"]; ok {
		t.Error("idle ip not forgotten")
	}
}
