// Package vault клиентские операции над хранилищами и NFT.
// Каждая изменяющая операция проходит через mutation.Runner:
// оптимистичное изменение локального представления, отправка, затем поллинг или откат.
package vault

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/vaultkeeper/internal/client/ledger"
	"github.com/iudanet/vaultkeeper/internal/client/mutation"
	"github.com/iudanet/vaultkeeper/internal/client/storage"
	"github.com/iudanet/vaultkeeper/internal/clock"
	"github.com/iudanet/vaultkeeper/internal/models"
)

// persistTimeout ограничивает сохранение снимка в локальную БД из подписчика
const persistTimeout = 5 * time.Second

// Config параметры сервиса
type Config struct {
	Clock clock.Clock
	Poll  mutation.PollConfig
}

// Service операции над хранилищами подключенного кошелька
type Service struct {
	ledger ledger.Client
	views  storage.ViewStorage
	meta   storage.MetadataStorage
	runner *mutation.Runner[models.OwnedView]
	clock  clock.Clock
	logger *slog.Logger

	mu       sync.RWMutex
	selected string
}

// NewService создает сервис
func NewService(
	l ledger.Client,
	views storage.ViewStorage,
	meta storage.MetadataStorage,
	cfg Config,
	logger *slog.Logger,
) (*Service, error) {
	if err := cfg.Poll.Validate(); err != nil {
		return nil, err
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.Real{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Service{
		ledger: l,
		views:  views,
		meta:   meta,
		clock:  cfg.Clock,
		logger: logger,
	}

	store := mutation.NewStore(models.OwnedView{}, mutation.WithClone(models.OwnedView.Clone))
	store.Subscribe(s.persist)

	s.runner = mutation.NewRunner(
		store,
		mutation.NewSubmitter(l, logger),
		mutation.NewPoller[models.OwnedView](cfg.Poll, cfg.Clock, logger),
		s.readView,
		logger,
	)
	return s, nil
}

// View текущее локальное представление объектов кошелька
func (s *Service) View() models.OwnedView {
	return s.runner.Store().State()
}

// Load поднимает сохраненный снимок подключенного кошелька из локальной БД.
// Отсутствие снимка не ошибка.
func (s *Service) Load(ctx context.Context) error {
	owner, err := s.ledger.Address(ctx)
	if err != nil {
		return err
	}

	view, err := s.views.GetView(ctx, owner)
	if err != nil {
		if errors.Is(err, storage.ErrViewNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load cached view: %w", err)
	}

	if _, err := s.runner.Store().Dispatch(mutation.AuthoritativeReplace("", *view)); err != nil {
		return fmt.Errorf("failed to restore cached view: %w", err)
	}
	checkpoint, err := s.meta.GetLastCheckpoint(ctx)
	if err != nil {
		return fmt.Errorf("failed to load last checkpoint: %w", err)
	}
	s.logger.Debug("Cached view loaded",
		"owner", owner,
		"refreshed_at", view.RefreshedAt,
		"last_checkpoint", checkpoint)
	return nil
}

// Refresh заменяет локальное представление свежим чтением из леджера
func (s *Service) Refresh(ctx context.Context) (models.OwnedView, error) {
	view, err := s.readView(ctx)
	if err != nil {
		return models.OwnedView{}, err
	}
	if _, err := s.runner.Store().Dispatch(mutation.AuthoritativeReplace("", view)); err != nil {
		return models.OwnedView{}, err
	}
	return s.View(), nil
}

// Select выбирает хранилище для отображения
func (s *Service) Select(vaultID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = vaultID
}

// Selected возвращает выбранное хранилище
func (s *Service) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

func (s *Service) deselect(vaultID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == vaultID {
		s.selected = ""
	}
}

// readView авторитетное чтение объектов подключенного кошелька
func (s *Service) readView(ctx context.Context) (models.OwnedView, error) {
	owner, err := s.ledger.Address(ctx)
	if err != nil {
		return models.OwnedView{}, err
	}

	vaults, err := s.ledger.OwnedVaults(ctx, owner)
	if err != nil {
		return models.OwnedView{}, fmt.Errorf("failed to list owned vaults: %w", err)
	}

	nfts, err := s.ledger.OwnedArt(ctx, owner)
	if err != nil {
		return models.OwnedView{}, fmt.Errorf("failed to list owned art: %w", err)
	}

	return models.OwnedView{
		RefreshedAt: s.clock.Now(),
		Owner:       owner,
		Vaults:      vaults,
		NFTs:        nfts,
	}, nil
}

// persist сохраняет только авторитетные снимки, оптимистичные изменения в БД не попадают
func (s *Service) persist(change mutation.Change[models.OwnedView]) {
	if !change.Authoritative() || change.State.Owner == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	view := change.State
	if err := s.views.SaveView(ctx, &view); err != nil {
		s.logger.Error("Failed to persist owned view",
			"owner", view.Owner,
			"generation", change.Generation,
			"error", err)
	}
}

// run выполняет мутацию и фиксирует checkpoint подтвержденной транзакции
func (s *Service) run(ctx context.Context, m mutation.Mutation[models.OwnedView]) (mutation.Outcome, error) {
	outcome, err := s.runner.Run(ctx, m)
	if err != nil {
		return outcome, err
	}

	if outcome.State == mutation.StateConverged && outcome.Receipt != nil {
		if err := s.meta.SaveLastCheckpoint(ctx, outcome.Receipt.Checkpoint); err != nil {
			s.logger.Warn("Failed to save checkpoint", "checkpoint", outcome.Receipt.Checkpoint, "error", err)
		}
	}
	return outcome, nil
}
