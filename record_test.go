package xiangqi

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestRecordRoundTrip(t *testing.T) {
	g := NewGame()
	g.AddTagPair("Event", "casual")
	for _, text := range []string{"h2e2", "h9g7", "h0g2"} {
		if err := g.MoveStr(text); err != nil {
			t.Fatal(err)
		}
	}

	record := g.String()
	parsed, err := decodeRecord(record)
	if err != nil {
		t.Fatal(err)
	}
	if len(parsed.Moves()) != 3 {
		t.Fatalf("expected 3 moves, got %v", parsed.Moves())
	}
	if parsed.Moves()[0] != (Move{From: H2, To: E2}) {
		t.Fatalf("first move mismatch: %s", parsed.Moves()[0])
	}
	if tp := parsed.GetTagPair("Event"); tp == nil || tp.Value != "casual" {
		t.Fatal("tag pair lost in round trip")
	}
	if parsed.FEN() != g.FEN() {
		t.Fatalf("position mismatch: %s vs %s", parsed.FEN(), g.FEN())
	}
}

func TestRecordWithFENTag(t *testing.T) {
	record := `[FEN "4k4/9/9/9/9/9/9/9/4R4/5K3 b - - 0 1"]

1. e9d9 e1d1 *`
	g, err := decodeRecord(record)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Moves()) != 2 {
		t.Fatalf("expected 2 moves, got %v", g.Moves())
	}
}

func TestRecordInvalidMove(t *testing.T) {
	record := `[Event "x"]

1. e3e5 *`
	if _, err := decodeRecord(record); err == nil {
		t.Fatal("expected error for an illegal record move")
	}
}

const twoRecords = `[Event "first"]

1. h2e2 h9g7 *

[Event "second"]

1. b2e2 b9c7 *
`

func TestScanner(t *testing.T) {
	s := NewScanner(strings.NewReader(twoRecords))
	var events []string
	for s.Scan() {
		events = append(events, s.Next().GetTagPair("Event").Value)
	}
	if s.Err() != io.EOF {
		t.Fatal(s.Err())
	}
	if len(events) != 2 || events[0] != "first" || events[1] != "second" {
		t.Fatalf("expected both records, got %v", events)
	}
}

func TestParallelScanner(t *testing.T) {
	s := NewParallelScanner(strings.NewReader(twoRecords))
	output := make(chan *Game)
	done := make(chan struct{})
	games := 0
	go func() {
		for range output {
			games++
		}
		close(done)
	}()
	if err := s.Begin(context.Background(), output); err != nil {
		t.Fatal(err)
	}
	<-done
	if games != 2 {
		t.Fatalf("expected 2 games, got %d", games)
	}
}
