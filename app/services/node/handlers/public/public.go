// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ardanlabs/ledger/business/web/errs"
	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/state"
	"github.com/ardanlabs/ledger/foundation/blockchain/worker"
	"github.com/ardanlabs/ledger/foundation/events"
	"github.com/ardanlabs/ledger/foundation/validate"
	"github.com/ardanlabs/ledger/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ErrInsufficientBalance is returned when a transaction is rejected.
var ErrInsufficientBalance = errors.New("insufficient balance")

// Handlers manages the set of ledger endpoints.
type Handlers struct {
	Log    *zap.SugaredLogger
	State  *state.State
	Worker *worker.Worker
	WS     websocket.Upgrader
	Evts   *events.Events
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	id, ch := h.Evts.Acquire()
	defer h.Evts.Release(id)

	h.Log.Infow("events", "traceid", web.GetTraceID(ctx), "subscriber", id)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return nil
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// Genesis returns the genesis information.
func (h Handlers) Genesis(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.State.Genesis(), http.StatusOK)
}

// Participants returns every participant known to the ledger.
func (h Handlers) Participants(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.State.Participants(), http.StatusOK)
}

// Balances returns the balance for one participant or for every participant
// known to the ledger.
func (h Handlers) Balances(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var bals []balance

	switch participant := web.Param(r, "participant"); participant {
	case "":
		all := h.State.Balances()
		for _, p := range h.State.Participants() {
			if bal, exists := all[p]; exists {
				bals = append(bals, balance{Participant: p, Balance: bal})
			}
		}

	default:
		bals = []balance{{Participant: participant, Balance: h.State.Balance(participant)}}
	}

	resp := balances{
		LatestBlock: h.State.LatestBlock().Hash(),
		Uncommitted: len(h.State.Pending()),
		Balances:    bals,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Blocks returns the full chain.
func (h Handlers) Blocks(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	chain := h.State.Chain()

	blocks := make([]block, len(chain))
	for i, blk := range chain {
		blocks[i] = toBlock(blk)
	}

	return web.Respond(ctx, w, blocks, http.StatusOK)
}

// VerifyChain reports the integrity of the chain.
func (h Handlers) VerifyChain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	resp := chainVerification{
		Linked: h.State.VerifyChain(),
		Work:   h.State.VerifyChainWork(),
		Blocks: len(h.State.Chain()),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Mempool returns the set of uncommitted transactions.
func (h Handlers) Mempool(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, toTxs(h.State.Pending()), http.StatusOK)
}

// VerifyTransactions reports if every pending transaction is covered by the
// balance of its sender.
func (h Handlers) VerifyTransactions(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, verification{Valid: h.State.VerifyTransactions()}, http.StatusOK)
}

// AddTransaction adds a new transaction to the pending pool.
func (h Handlers) AddTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var ntx NewTx
	if err := web.Decode(r, &ntx); err != nil {
		return errs.NewTrusted(fmt.Errorf("unable to decode payload: %w", err), http.StatusBadRequest)
	}

	if err := validate.Check(ntx); err != nil {
		return fmt.Errorf("validating data: %w", err)
	}

	h.Log.Infow("add tran", "traceid", web.GetTraceID(ctx), "sender", ntx.Sender, "recipient", ntx.Recipient, "amount", ntx.Amount)

	if !h.State.AddTransaction(ntx.Recipient, ntx.Sender, ntx.Amount) {
		return errs.NewTrusted(ErrInsufficientBalance, http.StatusBadRequest)
	}

	return web.Respond(ctx, w, status{Status: "transaction added to pending pool"}, http.StatusOK)
}

// Mine mines a new block with the pending transactions and waits for it.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	blk, err := h.State.MineBlock(ctx)
	if err != nil {
		if errors.Is(err, database.ErrMiningCancelled) {
			return errs.NewTrusted(err, http.StatusServiceUnavailable)
		}
		return fmt.Errorf("mining block: %w", err)
	}

	return web.Respond(ctx, w, toBlock(blk), http.StatusOK)
}

// SignalMining asks the background worker to mine a new block.
func (h Handlers) SignalMining(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	h.Worker.SignalStartMining()

	return web.Respond(ctx, w, status{Status: "mining signalled"}, http.StatusOK)
}
