package vault

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/iudanet/vaultkeeper/internal/client/mutation"
	"github.com/iudanet/vaultkeeper/internal/models"
	"github.com/iudanet/vaultkeeper/internal/validation"
)

// pendingPrefix префикс ID оптимистичных заглушек до подтверждения леджером
const pendingPrefix = "pending-"

// Result итог изменяющей операции
type Result struct {
	// ObjectID созданный объект (для create и mint), пусто для остальных операций
	ObjectID string
	Outcome  mutation.Outcome
}

func newResult(outcome mutation.Outcome, objectType string) Result {
	r := Result{Outcome: outcome}
	if objectType != "" {
		r.ObjectID, _ = outcome.Receipt.Created(objectType)
	}
	return r
}

// CreateVault создает хранилище. В представление сразу добавляется заглушка,
// сходимость наступает когда созданный объект появляется в списке владельца.
func (s *Service) CreateVault(ctx context.Context, name, color, story string) (Result, error) {
	if err := validation.ValidateVaultFields(name, color, story); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	req, err := models.NewMutationRequest(models.OpCreateVault, "", models.CreateVaultParams{
		Name:  name,
		Color: color,
		Story: story,
	})
	if err != nil {
		return Result{}, err
	}

	now := s.clock.Now()
	placeholder := models.Vault{
		ObjectID:  pendingPrefix + uuid.NewString(),
		Name:      name,
		Color:     color,
		Story:     story,
		CreatedAt: now,
		Memories:  []models.Memory{},
		Pending:   true,
	}

	outcome, err := s.run(ctx, mutation.Mutation[models.OwnedView]{
		Request: req,
		Optimistic: func(view models.OwnedView) models.OwnedView {
			v := placeholder
			v.Owner = view.Owner
			view.Vaults = append(view.Vaults, v)
			return view
		},
		Converged: createdIn(models.ObjectTypeVault),
	})
	return newResult(outcome, models.ObjectTypeVault), err
}

// RecordDeposit записывает депозит в хранилище
func (s *Service) RecordDeposit(ctx context.Context, vaultID string, amount uint64, note string, multiplier *uint64) (Result, error) {
	return s.record(ctx, models.OpRecordDeposit, vaultID, amount, note, multiplier)
}

// RecordWithdrawal записывает списание. Баланс проверяет леджер,
// при нехватке средств квитанция failure приводит к откату.
func (s *Service) RecordWithdrawal(ctx context.Context, vaultID string, amount uint64, note string, multiplier *uint64) (Result, error) {
	return s.record(ctx, models.OpRecordWithdrawal, vaultID, amount, note, multiplier)
}

func (s *Service) record(
	ctx context.Context,
	op models.Operation,
	vaultID string,
	amount uint64,
	note string,
	multiplier *uint64,
) (Result, error) {
	if err := validation.ValidateObjectID(vaultID); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := validation.ValidateAmount(amount); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := validation.ValidateNote(note); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	current, _, err := s.ownedVault(ctx, vaultID)
	if err != nil {
		return Result{}, err
	}

	req, err := models.NewMutationRequest(op, vaultID, models.RecordParams{
		VaultID:    vaultID,
		Amount:     amount,
		Note:       note,
		Multiplier: multiplier,
	})
	if err != nil {
		return Result{}, err
	}

	isDeposit := op == models.OpRecordDeposit
	memory := models.Memory{
		Amount:     amount,
		Note:       note,
		IsDeposit:  isDeposit,
		Multiplier: multiplier,
		Timestamp:  s.clock.Now(),
	}

	outcome, err := s.run(ctx, mutation.Mutation[models.OwnedView]{
		Request: req,
		Optimistic: patchVault(current, func(v *models.Vault) {
			v.Memories = append(v.Memories, memory)
			if isDeposit {
				v.TotalDeposits += amount
			} else {
				v.TotalWithdrawals += amount
			}
		}),
		Converged: versionPast(vaultID, current.Version),
	})
	return newResult(outcome, ""), err
}

// CustomizeVault меняет название, цвет и историю хранилища
func (s *Service) CustomizeVault(ctx context.Context, vaultID, name, color, story string) (Result, error) {
	if err := validation.ValidateObjectID(vaultID); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := validation.ValidateVaultFields(name, color, story); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	current, _, err := s.ownedVault(ctx, vaultID)
	if err != nil {
		return Result{}, err
	}

	req, err := models.NewMutationRequest(models.OpCustomizeVault, vaultID, models.CustomizeVaultParams{
		VaultID: vaultID,
		Name:    name,
		Color:   color,
		Story:   story,
	})
	if err != nil {
		return Result{}, err
	}

	outcome, err := s.run(ctx, mutation.Mutation[models.OwnedView]{
		Request: req,
		Optimistic: patchVault(current, func(v *models.Vault) {
			v.Name = name
			v.Color = color
			v.Story = story
		}),
		Converged: versionPast(vaultID, current.Version),
	})
	return newResult(outcome, ""), err
}

// TransferVault передает хранилище другому адресу.
// Хранилище сразу убирается из списка, сходимость наступает когда индекс леджера
// перестает считать его принадлежащим кошельку.
func (s *Service) TransferVault(ctx context.Context, vaultID, recipient string) (Result, error) {
	if err := validation.ValidateObjectID(vaultID); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := validation.ValidateAddress(recipient); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	_, owner, err := s.ownedVault(ctx, vaultID)
	if err != nil {
		return Result{}, err
	}
	if recipient == owner {
		return Result{}, fmt.Errorf("%w: cannot transfer vault to its current owner", ErrInvalidInput)
	}

	req, err := models.NewMutationRequest(models.OpTransferVault, vaultID, models.TransferVaultParams{
		VaultID:   vaultID,
		Recipient: recipient,
	})
	if err != nil {
		return Result{}, err
	}

	outcome, err := s.run(ctx, mutation.Mutation[models.OwnedView]{
		Request: req,
		Optimistic: func(view models.OwnedView) models.OwnedView {
			kept := view.Vaults[:0]
			for _, v := range view.Vaults {
				if v.ObjectID != vaultID {
					kept = append(kept, v)
				}
			}
			view.Vaults = kept
			return view
		},
		Converged: func(view models.OwnedView, _ *models.Receipt) bool {
			_, owned := view.FindVault(vaultID)
			return !owned
		},
	})
	if err == nil {
		s.deselect(vaultID)
	}
	return newResult(outcome, ""), err
}

// ArtInput поля выпускаемого NFT
type ArtInput struct {
	VaultID     string
	Name        string
	Description string
	URL         string
	Rarity      string
	Creator     string
}

// CreateVaultArt выпускает NFT хранилища
func (s *Service) CreateVaultArt(ctx context.Context, in ArtInput) (Result, error) {
	return s.mint(ctx, models.OpCreateVaultArt, models.ArtKindVault, in, nil)
}

// CreateMemoryArt выпускает NFT для записи хранилища с индексом memoryIndex
func (s *Service) CreateMemoryArt(ctx context.Context, in ArtInput, memoryIndex uint64) (Result, error) {
	return s.mint(ctx, models.OpCreateMemoryArt, models.ArtKindMemory, in, &memoryIndex)
}

// CreateFortuneArt выпускает NFT с предсказанием. Описание формирует леджер.
func (s *Service) CreateFortuneArt(ctx context.Context, in ArtInput) (Result, error) {
	in.Description = ""
	return s.mint(ctx, models.OpCreateFortuneArt, models.ArtKindFortune, in, nil)
}

func (s *Service) mint(
	ctx context.Context,
	op models.Operation,
	kind models.ArtKind,
	in ArtInput,
	memoryIndex *uint64,
) (Result, error) {
	if err := validation.ValidateObjectID(in.VaultID); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := validation.ValidateArtFields(in.Name, in.URL, in.Rarity, in.Creator); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	current, owner, err := s.ownedVault(ctx, in.VaultID)
	if err != nil {
		return Result{}, err
	}
	if memoryIndex != nil && *memoryIndex >= uint64(len(current.Memories)) {
		return Result{}, fmt.Errorf("%w: memory index %d out of range, vault has %d memories",
			ErrInvalidInput, *memoryIndex, len(current.Memories))
	}

	now := s.clock.Now()
	req, err := models.NewMutationRequest(op, in.VaultID, models.ArtParams{
		VaultID:     in.VaultID,
		MemoryIndex: memoryIndex,
		Name:        in.Name,
		Description: in.Description,
		URL:         in.URL,
		Rarity:      in.Rarity,
		Creator:     in.Creator,
		Timestamp:   now.UnixMilli(),
	})
	if err != nil {
		return Result{}, err
	}

	placeholder := models.VaultArt{
		ObjectID:    pendingPrefix + uuid.NewString(),
		VaultID:     in.VaultID,
		Kind:        kind,
		Name:        in.Name,
		Description: in.Description,
		URL:         in.URL,
		Rarity:      in.Rarity,
		Creator:     in.Creator,
		MemoryIndex: memoryIndex,
		Owner:       owner,
		Timestamp:   now,
		Pending:     true,
	}

	outcome, err := s.run(ctx, mutation.Mutation[models.OwnedView]{
		Request: req,
		Optimistic: func(view models.OwnedView) models.OwnedView {
			view.NFTs = append(view.NFTs, placeholder)
			return view
		},
		Converged: createdIn(models.ObjectTypeVaultArt),
	})
	return newResult(outcome, models.ObjectTypeVaultArt), err
}

// patchVault применяет fn к хранилищу в представлении.
// Если индекс леджера еще не отдал хранилище, в представление добавляется прочитанная копия.
func patchVault(current *models.Vault, fn func(v *models.Vault)) func(models.OwnedView) models.OwnedView {
	return func(view models.OwnedView) models.OwnedView {
		if v, ok := view.FindVault(current.ObjectID); ok {
			fn(v)
			v.Pending = true
			return view
		}
		v := current.Clone()
		fn(v)
		v.Pending = true
		view.Vaults = append(view.Vaults, *v)
		return view
	}
}

// versionPast сходимость для изменений существующего хранилища
func versionPast(vaultID string, version uint64) func(models.OwnedView, *models.Receipt) bool {
	return func(view models.OwnedView, _ *models.Receipt) bool {
		v, ok := view.FindVault(vaultID)
		return ok && v.Version > version
	}
}

// createdIn сходимость для операций, создающих объект
func createdIn(objectType string) func(models.OwnedView, *models.Receipt) bool {
	return func(view models.OwnedView, receipt *models.Receipt) bool {
		id, ok := receipt.Created(objectType)
		if !ok {
			return false
		}
		switch objectType {
		case models.ObjectTypeVault:
			_, ok = view.FindVault(id)
		case models.ObjectTypeVaultArt:
			_, ok = view.FindNFT(id)
		default:
			ok = false
		}
		return ok
	}
}
