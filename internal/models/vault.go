package models

import "time"

// Vault представляет on-chain объект хранилища.
// Баланс не хранится отдельно, он вычисляется из TotalDeposits и TotalWithdrawals.
type Vault struct {
	CreatedAt        time.Time `json:"created_at"`        // CreatedAt время создания хранилища
	ObjectID         string    `json:"object_id"`         // ObjectID идентификатор объекта в леджере
	Digest           string    `json:"digest"`            // Digest хеш текущей версии объекта
	Name             string    `json:"name"`              // Name название хранилища
	Color            string    `json:"color"`             // Color цвет (для отображения)
	Story            string    `json:"story"`             // Story история хранилища
	Owner            string    `json:"owner"`             // Owner адрес владельца
	Memories         []Memory  `json:"memories"`          // Memories история депозитов и списаний
	Version          uint64    `json:"version"`           // Version монотонно растущая версия объекта
	TotalDeposits    uint64    `json:"total_deposits"`    // TotalDeposits сумма всех депозитов
	TotalWithdrawals uint64    `json:"total_withdrawals"` // TotalWithdrawals сумма всех списаний
	Pending          bool      `json:"pending,omitempty"` // Pending локальный флаг оптимистичного изменения
}

// Memory представляет одну запись о депозите или списании.
type Memory struct {
	Timestamp  time.Time `json:"timestamp"`
	Multiplier *uint64   `json:"multiplier,omitempty"`
	Note       string    `json:"note"`
	Amount     uint64    `json:"amount"`
	IsDeposit  bool      `json:"is_deposit"`
}

// Balance возвращает текущий баланс хранилища.
func (v *Vault) Balance() uint64 {
	if v.TotalWithdrawals > v.TotalDeposits {
		return 0
	}
	return v.TotalDeposits - v.TotalWithdrawals
}

// Clone создает глубокую копию хранилища
func (v *Vault) Clone() *Vault {
	c := *v
	if v.Memories != nil {
		c.Memories = make([]Memory, len(v.Memories))
		for i, m := range v.Memories {
			c.Memories[i] = m
			if m.Multiplier != nil {
				mult := *m.Multiplier
				c.Memories[i].Multiplier = &mult
			}
		}
	}
	return &c
}

// VaultSummary агрегированная информация о хранилище (read-only вызов контракта).
type VaultSummary struct {
	VaultID          string `json:"vault_id"`
	Name             string `json:"name"`
	Balance          uint64 `json:"balance"`
	TotalDeposits    uint64 `json:"total_deposits"`
	TotalWithdrawals uint64 `json:"total_withdrawals"`
	DepositCount     int    `json:"deposit_count"`
	WithdrawalCount  int    `json:"withdrawal_count"`
	MemoryCount      int    `json:"memory_count"`
}

// ArtKind тип NFT, выпущенного для хранилища
type ArtKind string

const (
	ArtKindVault   ArtKind = "vault"
	ArtKindMemory  ArtKind = "memory"
	ArtKindFortune ArtKind = "fortune"
)

// VaultArt представляет NFT, привязанный к событию хранилища.
type VaultArt struct {
	Timestamp   time.Time `json:"timestamp"`
	MemoryIndex *uint64   `json:"memory_index,omitempty"` // MemoryIndex только для ArtKindMemory
	ObjectID    string    `json:"object_id"`
	VaultID     string    `json:"vault_id"`
	Kind        ArtKind   `json:"kind"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Rarity      string    `json:"rarity"`
	Creator     string    `json:"creator"`
	Owner       string    `json:"owner"`
	Version     uint64    `json:"version"`
	Pending     bool      `json:"pending,omitempty"`
}

// OwnedView снимок объектов, принадлежащих подключенному кошельку.
// Это локальное представление удаленного состояния на клиенте.
type OwnedView struct {
	RefreshedAt time.Time  `json:"refreshed_at"` // RefreshedAt время последнего авторитетного чтения
	Owner       string     `json:"owner"`
	Vaults      []Vault    `json:"vaults"`
	NFTs        []VaultArt `json:"nfts"`
}

// FindVault возвращает хранилище из снимка по ID
func (v OwnedView) FindVault(id string) (*Vault, bool) {
	for i := range v.Vaults {
		if v.Vaults[i].ObjectID == id {
			return &v.Vaults[i], true
		}
	}
	return nil, false
}

// FindNFT возвращает NFT из снимка по ID
func (v OwnedView) FindNFT(id string) (*VaultArt, bool) {
	for i := range v.NFTs {
		if v.NFTs[i].ObjectID == id {
			return &v.NFTs[i], true
		}
	}
	return nil, false
}

// Clone создает глубокую копию снимка, чтобы патчи не меняли исходные слайсы
func (v OwnedView) Clone() OwnedView {
	c := OwnedView{
		RefreshedAt: v.RefreshedAt,
		Owner:       v.Owner,
	}
	if v.Vaults != nil {
		c.Vaults = make([]Vault, 0, len(v.Vaults))
		for i := range v.Vaults {
			c.Vaults = append(c.Vaults, *v.Vaults[i].Clone())
		}
	}
	if v.NFTs != nil {
		c.NFTs = make([]VaultArt, len(v.NFTs))
		copy(c.NFTs, v.NFTs)
	}
	return c
}
