package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"paperdesk/internal/errors"
	"paperdesk/internal/fees"
	"paperdesk/internal/id"
	"paperdesk/internal/logging"
	"paperdesk/internal/models"
	"paperdesk/internal/store"
	"paperdesk/internal/stream"
)

// DefaultInitialCapital is the starting cash for a fresh account.
const DefaultInitialCapital = 1000000

// DefaultCurrency is the currency for a fresh account.
const DefaultCurrency = "CNY"

// Account is the authoritative record of cash, holdings, and trade history
// for one simulated account. All mutations flow through ExecuteOrder,
// UpdateMarketPrice, Reset, DeletePosition, and PurgeZeroPositions; each
// mutation recomputes the total asset in full, persists the ledger, and
// publishes a change event.
type Account struct {
	mu sync.RWMutex

	cash           float64
	totalAsset     float64
	initialCapital float64
	currency       string
	positions      map[string]models.Position
	history        []models.Trade // most recent first
	lastUpdated    time.Time

	fees   fees.Schedule
	store  store.LedgerStore
	hub    *stream.Hub
	logger zerolog.Logger
}

// Config holds the dependencies and defaults for opening an account.
type Config struct {
	InitialCapital float64        // DefaultInitialCapital when zero
	Currency       string         // DefaultCurrency when empty
	Fees           *fees.Schedule // DefaultSchedule when nil
	Store          store.LedgerStore
	Hub            *stream.Hub
	Logger         zerolog.Logger
}

// Open restores an account from the store, or starts a fresh one when
// nothing usable is persisted (absent, unparsable, or stale). A store
// read error degrades to a fresh account as well: the simulation keeps
// working in memory even when the disk does not.
func Open(ctx context.Context, cfg Config) *Account {
	a := &Account{
		fees:   fees.DefaultSchedule(),
		store:  cfg.Store,
		hub:    cfg.Hub,
		logger: cfg.Logger,
	}
	if cfg.Fees != nil {
		a.fees = *cfg.Fees
	}

	initialCapital := cfg.InitialCapital
	if initialCapital == 0 {
		initialCapital = DefaultInitialCapital
	}
	currency := cfg.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	if a.store != nil {
		rec, ok, err := a.store.Load(ctx)
		if err != nil {
			a.logger.Warn().Err(err).Msg("Ledger load failed, starting fresh")
		}
		if ok {
			a.restore(rec)
			a.publish(stream.EventLoad, "")
			return a
		}
	}

	a.fresh(initialCapital, currency)
	a.publish(stream.EventLoad, "")
	return a
}

// fresh initializes zero-history state. Caller holds no locks yet or the
// write lock.
func (a *Account) fresh(initialCapital float64, currency string) {
	a.cash = initialCapital
	a.totalAsset = initialCapital
	a.initialCapital = initialCapital
	a.currency = currency
	a.positions = make(map[string]models.Position)
	a.history = nil
	a.lastUpdated = time.Now()
}

func (a *Account) restore(rec *store.Record) {
	a.cash = rec.Cash
	a.initialCapital = rec.InitialCapital
	a.currency = rec.Currency
	a.positions = rec.Positions
	if a.positions == nil {
		a.positions = make(map[string]models.Position)
	}
	a.history = rec.History
	a.lastUpdated = rec.LastUpdated
	// Trust the parts, not the persisted sum.
	a.recomputeTotalAsset()
}

// Result reports a successful fill.
type Result struct {
	Trade     models.Trade
	Fees      fees.Breakdown
	CashAfter float64

	// SaveErr is non-nil when the fill succeeded but persisting it did
	// not. The in-memory ledger remains authoritative; the caller should
	// warn that state is not being saved.
	SaveErr error
}

// ExecuteOrder fills a simulated order atomically: on any rejection the
// ledger is unchanged. Buys require cash covering value plus fees; sells
// require sufficient held quantity.
func (a *Account) ExecuteOrder(ctx context.Context, symbol string, side models.Side, price float64, quantity int) (*Result, error) {
	if err := validateOrder(symbol, side, price, quantity); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	amount := price * float64(quantity)
	breakdown := a.fees.Calculate(side, amount)
	fee := breakdown.Total()

	trade := models.Trade{
		ID:        id.New(),
		Timestamp: time.Now(),
		Symbol:    symbol,
		Side:      side,
		Price:     price,
		Quantity:  quantity,
		Fee:       fee,
	}

	switch side {
	case models.SideBuy:
		required := amount + fee
		if a.cash < required {
			return nil, errors.NewInsufficientFundsError(required, a.cash)
		}
		a.cash -= required
		a.positions[symbol] = applyBuy(a.positions[symbol], symbol, price, quantity, fee)

	case models.SideSell:
		pos, held := a.positions[symbol]
		if !held || pos.Quantity < quantity {
			return nil, errors.NewInsufficientPositionError(symbol, quantity, pos.Quantity)
		}
		// Realized P&L is captured here because the average cost is
		// erased once the position closes.
		trade.RealizedPnL = (price-pos.AverageCost)*float64(quantity) - fee
		a.cash += amount - fee
		next, closed := applySell(pos, price, quantity)
		if closed {
			delete(a.positions, symbol)
		} else {
			a.positions[symbol] = next
		}
	}

	a.history = append([]models.Trade{trade}, a.history...)
	a.recomputeTotalAsset()
	saveErr := a.persist(ctx)
	a.publish(stream.EventTrade, symbol)

	logging.LogTrade(a.logger, trade.ID, symbol, string(side), quantity, price, fee)

	return &Result{
		Trade:     trade,
		Fees:      breakdown,
		CashAfter: a.cash,
		SaveErr:   saveErr,
	}, nil
}

// UpdateMarketPrice revalues a held symbol at the latest price. Symbols
// not held are ignored without persisting. The returned error reports a
// failed persistence write, never a business failure.
func (a *Account) UpdateMarketPrice(ctx context.Context, symbol string, price float64) error {
	if price <= 0 {
		return errors.NewValidationError("price", price, "must be positive")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	pos, held := a.positions[symbol]
	if !held {
		return nil
	}

	a.positions[symbol] = markToMarket(pos, price)
	a.recomputeTotalAsset()
	saveErr := a.persist(ctx)
	a.publish(stream.EventPrice, symbol)

	logging.LogTick(a.logger, symbol, price)
	return saveErr
}

// Reset destructively replaces the account with fresh zero-history state.
func (a *Account) Reset(ctx context.Context, initialCapital float64, currency string) error {
	if initialCapital <= 0 {
		return errors.NewValidationError("initial_capital", initialCapital, "must be positive")
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.fresh(initialCapital, currency)
	saveErr := a.persist(ctx)
	a.publish(stream.EventReset, "")

	a.logger.Info().Float64("initial_capital", initialCapital).Str("currency", currency).Msg("Account reset")
	return saveErr
}

// DeletePosition removes a symbol's position outright. Missing symbols
// return ErrPositionNotFound.
func (a *Account) DeletePosition(ctx context.Context, symbol string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, held := a.positions[symbol]; !held {
		return errors.Wrapf(errors.ErrPositionNotFound, "delete position %s", symbol)
	}

	delete(a.positions, symbol)
	a.recomputeTotalAsset()
	saveErr := a.persist(ctx)
	a.publish(stream.EventCleanup, symbol)
	return saveErr
}

// PurgeZeroPositions drops any zero-quantity entries. Normal operation
// never produces them; this guards against hand-edited or pre-migration
// persisted state.
func (a *Account) PurgeZeroPositions(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	purged := false
	for symbol, pos := range a.positions {
		if pos.Quantity == 0 {
			delete(a.positions, symbol)
			purged = true
		}
	}
	if !purged {
		return nil
	}

	a.recomputeTotalAsset()
	saveErr := a.persist(ctx)
	a.publish(stream.EventCleanup, "")
	return saveErr
}

// Snapshot returns a read-only projection of the account. The maps and
// slices are copies; callers cannot mutate ledger state through them.
func (a *Account) Snapshot() models.Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()

	positions := make(map[string]models.Position, len(a.positions))
	for symbol, pos := range a.positions {
		positions[symbol] = pos
	}
	history := make([]models.Trade, len(a.history))
	copy(history, a.history)

	pnl := a.totalAsset - a.initialCapital
	var pnlRatio float64
	if a.initialCapital != 0 {
		pnlRatio = pnl / a.initialCapital
	}

	return models.Snapshot{
		Cash:           a.cash,
		TotalAsset:     a.totalAsset,
		InitialCapital: a.initialCapital,
		PnL:            pnl,
		PnLRatio:       pnlRatio,
		Currency:       a.currency,
		Positions:      positions,
		History:        history,
		LastUpdated:    a.lastUpdated,
	}
}

// recomputeTotalAsset recomputes cash + Σ quantity·lastPrice from scratch.
// Always a full pass: incremental updates drift. Caller holds the write
// lock.
func (a *Account) recomputeTotalAsset() {
	total := a.cash
	for _, pos := range a.positions {
		total += pos.MarketValue()
	}
	a.totalAsset = total
	a.lastUpdated = time.Now()
}

// persist writes the full ledger through the store. Failures are logged
// and returned so the composing application can warn; the in-memory state
// stays authoritative either way. Caller holds the write lock.
func (a *Account) persist(ctx context.Context) error {
	if a.store == nil {
		return nil
	}

	rec := &store.Record{
		Cash:           a.cash,
		TotalAsset:     a.totalAsset,
		InitialCapital: a.initialCapital,
		Currency:       a.currency,
		Positions:      a.positions,
		History:        a.history,
		LastUpdated:    a.lastUpdated,
	}
	if err := a.store.Save(ctx, rec); err != nil {
		a.logger.Warn().Err(err).Msg("Ledger save failed, state is in memory only")
		return err
	}
	return nil
}

func (a *Account) publish(kind stream.EventKind, symbol string) {
	if a.hub == nil {
		return
	}
	a.hub.Publish(stream.Event{Kind: kind, Symbol: symbol})
}

func validateOrder(symbol string, side models.Side, price float64, quantity int) error {
	if symbol == "" {
		return errors.NewValidationError("symbol", symbol, "must not be empty")
	}
	if !side.Valid() {
		return errors.NewValidationError("side", side, "must be BUY or SELL")
	}
	if price <= 0 {
		return errors.NewValidationError("price", price, "must be positive")
	}
	if quantity <= 0 {
		return errors.NewValidationError("quantity", quantity, "must be positive")
	}
	return nil
}
