package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ghost-mann/binance-ingest/internal/api"
	"github.com/ghost-mann/binance-ingest/internal/metrics"
	"github.com/ghost-mann/binance-ingest/internal/model"
	"github.com/ghost-mann/binance-ingest/internal/normalize"
)

// Exchange is the fetch capability consumed by the pipeline.
// Implemented by *api.Client.
type Exchange interface {
	RecentTrades(ctx context.Context, symbol string, limit int) ([]api.Trade, error)
	TickerPrice(ctx context.Context, symbol string) (api.TickerPrice, error)
	OrderBook(ctx context.Context, symbol string, limit int) (api.Depth, error)
	Ticker24h(ctx context.Context, symbol string) (api.Ticker24h, error)
	Klines(ctx context.Context, symbol, interval string, limit int) ([]api.KlineRow, error)
}

// Store is the persistence capability consumed by the pipeline.
// Implemented by *writer.Writer.
type Store interface {
	WriteRecentTrades(ctx context.Context, rows []model.RecentTrade) error
	WriteLatestPrice(ctx context.Context, row model.LatestPrice) error
	WriteOrderBook(ctx context.Context, rows []model.OrderBookLevel) error
	WriteTickerStats(ctx context.Context, row model.TickerStats) error
	WriteKlines(ctx context.Context, rows []model.Kline) error
}

// Config holds pipeline settings.
type Config struct {
	TradeLimit    int           // recent trades per poll
	DepthLimit    int           // order-book levels per side per poll
	KlineInterval string        // bar interval (e.g., "1m")
	KlineLimit    int           // bars per poll
	Concurrency   int           // max concurrent (symbol, endpoint) pairs
	Timeout       time.Duration // per-pair deadline
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		TradeLimit:    20,
		DepthLimit:    100,
		KlineInterval: "1m",
		KlineLimit:    100,
		Concurrency:   4,
		Timeout:       10 * time.Second,
	}
}

// Pipeline runs the per-pair fetch → normalize → write sequence.
type Pipeline struct {
	cfg      Config
	exchange Exchange
	store    Store
	logger   *slog.Logger
}

// New creates a Pipeline.
func New(cfg Config, exchange Exchange, store Store, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &Pipeline{
		cfg:      cfg,
		exchange: exchange,
		store:    store,
		logger:   logger,
	}
}

// RunCycle evaluates every (symbol, endpoint) pair once and returns one
// outcome per pair, ordered by symbol then endpoint. It always completes:
// failures are carried in the outcomes, never returned.
func (p *Pipeline) RunCycle(ctx context.Context, symbols []string) []Outcome {
	start := time.Now()
	cycleID := uuid.NewString()
	logger := p.logger.With("cycle_id", cycleID)

	outcomes := make([]Outcome, len(symbols)*len(model.Endpoints))

	// Semaphore for bounded concurrency.
	sem := make(chan struct{}, p.cfg.Concurrency)
	var wg sync.WaitGroup

	for si, symbol := range symbols {
		for ei, endpoint := range model.Endpoints {
			idx := si*len(model.Endpoints) + ei
			wg.Add(1)
			go func(idx int, symbol string, endpoint model.Endpoint) {
				defer wg.Done()

				select {
				case sem <- struct{}{}:
					defer func() { <-sem }()
				case <-ctx.Done():
					outcomes[idx] = Outcome{
						Symbol:   symbol,
						Endpoint: endpoint,
						State:    StateFailed,
						Stage:    StageFetch,
						Err:      ctx.Err(),
					}
					return
				}

				outcomes[idx] = p.runPair(ctx, logger, symbol, endpoint)
			}(idx, symbol, endpoint)
		}
	}

	wg.Wait()

	var written, failed int
	for _, o := range outcomes {
		if o.Failed() {
			failed++
		} else {
			written++
		}
	}

	metrics.CyclesTotal.Inc()
	metrics.CycleDuration.Observe(time.Since(start).Seconds())

	logger.Info("cycle complete",
		"symbols", len(symbols),
		"pairs", len(outcomes),
		"written", written,
		"failed", failed,
		"duration", time.Since(start),
	)

	return outcomes
}

// runPair drives one (symbol, endpoint) pair through
// fetch → normalize → write and reports its terminal state.
func (p *Pipeline) runPair(ctx context.Context, logger *slog.Logger, symbol string, endpoint model.Endpoint) Outcome {
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	rows, stage, err := p.process(ctx, symbol, endpoint)
	if err != nil {
		metrics.PairFailures.WithLabelValues(string(endpoint), string(stage)).Inc()
		logger.Warn("pair failed",
			"symbol", symbol,
			"endpoint", endpoint,
			"stage", stage,
			"err", err,
		)
		return Outcome{
			Symbol:   symbol,
			Endpoint: endpoint,
			State:    StateFailed,
			Stage:    stage,
			Err:      err,
		}
	}

	metrics.RowsWritten.WithLabelValues(string(endpoint)).Add(float64(rows))
	return Outcome{
		Symbol:   symbol,
		Endpoint: endpoint,
		State:    StateWritten,
		Rows:     rows,
	}
}

// process returns the written row count, or the failing stage and error.
// An empty normalized result short-circuits the write and is not an error.
func (p *Pipeline) process(ctx context.Context, symbol string, endpoint model.Endpoint) (int, Stage, error) {
	switch endpoint {
	case model.EndpointRecentTrades:
		raw, err := p.exchange.RecentTrades(ctx, symbol, p.cfg.TradeLimit)
		if err != nil {
			return 0, StageFetch, err
		}
		rows, err := normalize.RecentTrades(symbol, raw)
		if err != nil {
			return 0, StageNormalize, err
		}
		if len(rows) == 0 {
			return 0, "", nil
		}
		if err := p.store.WriteRecentTrades(ctx, rows); err != nil {
			return 0, StageWrite, err
		}
		return len(rows), "", nil

	case model.EndpointLatestPrice:
		raw, err := p.exchange.TickerPrice(ctx, symbol)
		if err != nil {
			return 0, StageFetch, err
		}
		row, err := normalize.LatestPrice(symbol, raw)
		if err != nil {
			return 0, StageNormalize, err
		}
		if err := p.store.WriteLatestPrice(ctx, row); err != nil {
			return 0, StageWrite, err
		}
		return 1, "", nil

	case model.EndpointOrderBook:
		raw, err := p.exchange.OrderBook(ctx, symbol, p.cfg.DepthLimit)
		if err != nil {
			return 0, StageFetch, err
		}
		rows, err := normalize.OrderBook(symbol, raw)
		if err != nil {
			return 0, StageNormalize, err
		}
		if len(rows) == 0 {
			return 0, "", nil
		}
		if err := p.store.WriteOrderBook(ctx, rows); err != nil {
			return 0, StageWrite, err
		}
		return len(rows), "", nil

	case model.EndpointTickerStats:
		raw, err := p.exchange.Ticker24h(ctx, symbol)
		if err != nil {
			return 0, StageFetch, err
		}
		row, err := normalize.TickerStats(symbol, raw)
		if err != nil {
			return 0, StageNormalize, err
		}
		if err := p.store.WriteTickerStats(ctx, row); err != nil {
			return 0, StageWrite, err
		}
		return 1, "", nil

	case model.EndpointKlines:
		raw, err := p.exchange.Klines(ctx, symbol, p.cfg.KlineInterval, p.cfg.KlineLimit)
		if err != nil {
			return 0, StageFetch, err
		}
		rows, err := normalize.Klines(symbol, raw)
		if err != nil {
			return 0, StageNormalize, err
		}
		if len(rows) == 0 {
			return 0, "", nil
		}
		if err := p.store.WriteKlines(ctx, rows); err != nil {
			return 0, StageWrite, err
		}
		return len(rows), "", nil
	}

	panic("pipeline: unknown endpoint " + string(endpoint))
}
