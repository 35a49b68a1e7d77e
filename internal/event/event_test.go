package event

import "testing"

func TestDispatchOrderAndFiltering(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.SubscribeFunc(WaveEnded, func(e Event) { got = append(got, "first") })
	d.SubscribeFunc(WaveEnded, func(e Event) { got = append(got, "second") })
	d.SubscribeFunc(WaveStarted, func(e Event) { got = append(got, "wrong") })

	d.Dispatch(Event{Type: WaveEnded, Data: WaveData{Number: 1}})

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("unexpected delivery %v", got)
	}
}

func TestDispatchWithoutListeners(t *testing.T) {
	d := NewDispatcher()
	d.Dispatch(Event{Type: GameOver}) // must not panic
}
