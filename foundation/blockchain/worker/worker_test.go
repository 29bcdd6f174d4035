package worker_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
	"github.com/ardanlabs/ledger/foundation/blockchain/state"
	"github.com/ardanlabs/ledger/foundation/blockchain/storage/memory"
	"github.com/ardanlabs/ledger/foundation/blockchain/worker"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func newState(t *testing.T, gen genesis.Genesis, ev state.EventHandler) *state.State {
	st, err := state.New(state.Config{
		HostID:    "Satoshi",
		Genesis:   gen,
		Storage:   memory.New(),
		EvHandler: ev,
	})
	if err != nil {
		t.Fatalf("unable to construct state: %v", err)
	}

	return st
}

// =============================================================================

func Test_Mining(t *testing.T) {
	t.Log("Given the need to mine blocks in the background.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen mining is signaled.", testID)
		{
			st := newState(t, genesis.Default(), nil)
			w := worker.Run(st, func(v string, args ...any) { t.Logf(v, args...) })
			defer w.Shutdown()

			st.AddTransaction("Bob", "Satoshi", 0)
			w.SignalStartMining()

			deadline := time.Now().Add(10 * time.Second)
			for len(st.Chain()) < 2 {
				if time.Now().After(deadline) {
					t.Fatalf("\t%s\tTest %d:\tShould mine a block.", failed, testID)
				}
				time.Sleep(10 * time.Millisecond)
			}
			t.Logf("\t%s\tTest %d:\tShould mine a block.", success, testID)

			if len(st.Pending()) != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould clear the pool.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould clear the pool.", success, testID)

			if !st.VerifyChainWork() {
				t.Fatalf("\t%s\tTest %d:\tShould have a valid chain.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould have a valid chain.", success, testID)
		}
	}
}

func Test_Shutdown(t *testing.T) {
	t.Log("Given the need to stop a mining operation that can't finish.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen shutting down during mining.", testID)
		{
			gen := genesis.Default()
			gen.Difficulty = 64

			started := make(chan struct{}, 1)
			ev := func(v string, args ...any) {
				if strings.Contains(v, "perform POW") {
					select {
					case started <- struct{}{}:
					default:
					}
				}
			}

			st := newState(t, gen, ev)
			w := worker.Run(st, nil)
			w.SignalStartMining()

			select {
			case <-started:
			case <-time.After(10 * time.Second):
				t.Fatalf("\t%s\tTest %d:\tShould start mining.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould start mining.", success, testID)

			done := make(chan struct{})
			go func() {
				w.Shutdown()
				close(done)
			}()

			select {
			case <-done:
			case <-time.After(10 * time.Second):
				t.Fatalf("\t%s\tTest %d:\tShould shut down.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould shut down.", success, testID)

			if len(st.Chain()) != 1 {
				t.Fatalf("\t%s\tTest %d:\tShould leave the chain unchanged.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould leave the chain unchanged.", success, testID)
		}
	}
}
