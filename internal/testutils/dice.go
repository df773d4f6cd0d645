package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ManualRoller implements dice.Roller with predetermined results
type ManualRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
	sizes     []int
}

var _ dice.Roller = (*ManualRoller)(nil)

// NewManualRoller creates a roller that returns rolls in order
func NewManualRoller(rolls ...int) *ManualRoller {
	return &ManualRoller{rolls: rolls}
}

// SetRolls replaces the remaining rolls
func (m *ManualRoller) SetRolls(rolls ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Sizes returns the die sizes requested so far
func (m *ManualRoller) Sizes() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.sizes...)
}

// Roll implements dice.Roller.Roll
func (m *ManualRoller) Roll(size int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	if roll < 1 || roll > size {
		return 0, fmt.Errorf("invalid roll %d for d%d", roll, size)
	}
	m.rollIndex++
	m.sizes = append(m.sizes, size)
	return roll, nil
}

// RollN implements dice.Roller.RollN
func (m *ManualRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for range count {
		roll, err := m.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, roll)
	}
	return out, nil
}
