package mutation

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/iudanet/vaultkeeper/internal/clock"
)

// Значения по умолчанию для поллинга сходимости
const (
	DefaultBaseDelay   = time.Second
	DefaultMaxAttempts = 10

	maxAttempts = 30
)

// PollConfig настройки поллинга: задержка попытки i равна BaseDelay * 2^i,
// i в диапазоне [0, MaxAttempts).
type PollConfig struct {
	BaseDelay   time.Duration
	MaxAttempts int
}

// DefaultPollConfig возвращает настройки по умолчанию (1s, 10 попыток)
func DefaultPollConfig() PollConfig {
	return PollConfig{
		BaseDelay:   DefaultBaseDelay,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Validate проверяет настройки. Сумма всех задержек должна помещаться в time.Duration.
func (c PollConfig) Validate() error {
	if c.BaseDelay <= 0 {
		return fmt.Errorf("poll base delay must be positive, got %s", c.BaseDelay)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("poll max attempts must be positive, got %d", c.MaxAttempts)
	}
	if c.MaxAttempts > maxAttempts {
		return fmt.Errorf("poll max attempts must not exceed %d, got %d", maxAttempts, c.MaxAttempts)
	}
	if c.BaseDelay > time.Duration(math.MaxInt64>>uint(c.MaxAttempts)) {
		return fmt.Errorf("poll base delay %s with %d attempts overflows the schedule", c.BaseDelay, c.MaxAttempts)
	}
	return nil
}

// Backoff новое расписание задержек: экспоненциальное без джиттера,
// ровно MaxAttempts значений. Конфигурация должна быть валидной.
func (c PollConfig) Backoff() retry.Backoff {
	return retry.WithMaxRetries(uint64(c.MaxAttempts), retry.NewExponential(c.BaseDelay))
}

// Delays возвращает полную последовательность задержек
func (c PollConfig) Delays() []time.Duration {
	out := make([]time.Duration, 0, c.MaxAttempts)
	b := c.Backoff()
	for {
		d, stop := b.Next()
		if stop {
			return out
		}
		out = append(out, d)
	}
}

// Budget суммарное время ожидания при исчерпании всех попыток
func (c PollConfig) Budget() time.Duration {
	var total time.Duration
	for _, d := range c.Delays() {
		total += d
	}
	return total
}

// Reader авторитетное чтение затронутого набора сущностей
type Reader[S any] func(ctx context.Context) (S, error)

// PollResult итог поллинга
type PollResult[S any] struct {
	Last      S
	Attempts  int
	Waited    time.Duration
	Converged bool
	HaveLast  bool // HaveLast хотя бы одно чтение было успешным
}

// Poller перечитывает состояние с экспоненциальной задержкой до сходимости
type Poller[S any] struct {
	clock  clock.Clock
	logger *slog.Logger
	cfg    PollConfig
}

// NewPoller создает Poller
func NewPoller[S any](cfg PollConfig, clk clock.Clock, logger *slog.Logger) *Poller[S] {
	if clk == nil {
		clk = clock.Real{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("Invalid poll config, using defaults", "error", err)
		cfg = DefaultPollConfig()
	}
	return &Poller[S]{cfg: cfg, clock: clk, logger: logger}
}

// Config возвращает настройки поллера
func (p *Poller[S]) Config() PollConfig {
	return p.cfg
}

// Poll ждет очередную задержку из Backoff, читает состояние и передает его в refresh при каждом
// успешном чтении, затем проверяет converged. Ошибка чтения делает попытку
// неубедительной. Возвращает ошибку только при отмене ctx.
func (p *Poller[S]) Poll(ctx context.Context, read Reader[S], converged func(S) bool, refresh func(S)) (PollResult[S], error) {
	var result PollResult[S]
	backoff := p.cfg.Backoff()

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		delay, stop := backoff.Next()
		if stop {
			break
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-p.clock.After(delay):
		}
		result.Waited += delay
		result.Attempts = attempt + 1

		state, err := read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			p.logger.Warn("Poll read failed, attempt inconclusive",
				"attempt", attempt,
				"delay", delay,
				"error", &ReadError{Attempt: attempt, Err: err})
			continue
		}

		result.Last = state
		result.HaveLast = true
		if refresh != nil {
			refresh(state)
		}

		if converged(state) {
			result.Converged = true
			p.logger.Debug("Converged", "attempt", attempt, "waited", result.Waited)
			return result, nil
		}

		p.logger.Debug("Not converged yet", "attempt", attempt, "waited", result.Waited)
	}

	return result, nil
}
