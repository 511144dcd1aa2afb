package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// AddressPattern определяет формат адреса кошелька и ID объекта:
// префикс 0x и 64 hex символа (32 байта)
var AddressPattern = regexp.MustCompile(`^0x[0-9a-f]{64}$`)

const (
	// MaxNameLen максимальная длина названия хранилища или NFT
	MaxNameLen = 64
	// MaxStoryLen максимальная длина истории хранилища
	MaxStoryLen = 2048
	// MaxNoteLen максимальная длина заметки к депозиту/списанию
	MaxNoteLen = 512
)

// ValidateAddress проверяет формат адреса кошелька
func ValidateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("address cannot be empty")
	}
	if !AddressPattern.MatchString(address) {
		return fmt.Errorf("invalid address %q: expected 0x followed by 64 lowercase hex characters", address)
	}
	return nil
}

// ValidateObjectID проверяет формат ID объекта (тот же формат, что и адрес)
func ValidateObjectID(id string) error {
	if id == "" {
		return fmt.Errorf("object id cannot be empty")
	}
	if !AddressPattern.MatchString(id) {
		return fmt.Errorf("invalid object id %q", id)
	}
	return nil
}

// ValidateVaultFields проверяет обязательные поля хранилища
func ValidateVaultFields(name, color, story string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("vault name is required")
	}
	if strings.TrimSpace(color) == "" {
		return fmt.Errorf("vault color is required")
	}
	if strings.TrimSpace(story) == "" {
		return fmt.Errorf("vault story is required")
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("vault name must not exceed %d characters", MaxNameLen)
	}
	if len(story) > MaxStoryLen {
		return fmt.Errorf("vault story must not exceed %d characters", MaxStoryLen)
	}
	return nil
}

// ValidateAmount проверяет сумму депозита или списания
func ValidateAmount(amount uint64) error {
	if amount == 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// ValidateNote проверяет заметку к записи
func ValidateNote(note string) error {
	if len(note) > MaxNoteLen {
		return fmt.Errorf("note must not exceed %d characters", MaxNoteLen)
	}
	return nil
}

// ValidateArtFields проверяет поля NFT
func ValidateArtFields(name, url, rarity, creator string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("art name is required")
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("art name must not exceed %d characters", MaxNameLen)
	}
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("art url is required")
	}
	if strings.TrimSpace(rarity) == "" {
		return fmt.Errorf("art rarity is required")
	}
	if strings.TrimSpace(creator) == "" {
		return fmt.Errorf("art creator is required")
	}
	return nil
}
