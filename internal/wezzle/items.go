package wezzle

import (
	"math/rand"

	"github.com/vovakirdan/tui-wezzle/internal/config"
)

// ItemManager decides which special tile a drop may carry.
type ItemManager struct {
	cfg config.ItemsConfig
	rng *rand.Rand
}

// NewItemManager creates an item manager drawing from rng.
func NewItemManager(cfg config.ItemsConfig, rng *rand.Rand) *ItemManager {
	return &ItemManager{cfg: cfg, rng: rng}
}

// MaximumItems returns how many item tiles may be on the board at once.
func (m *ItemManager) MaximumItems() int {
	if !m.cfg.Enabled {
		return 0
	}
	return m.cfg.MaxItems
}

// MaximumMultipliers returns how many multiplier tiles may be on the board at once.
func (m *ItemManager) MaximumMultipliers() int {
	if !m.cfg.Enabled {
		return 0
	}
	return m.cfg.MaxMultipliers
}

// GetItem picks a special tile type by weight among the kinds still below
// their maximum, or TileNormal when none is eligible.
func (m *ItemManager) GetItem(items, multipliers int) TileType {
	type choice struct {
		typ    TileType
		weight int
	}
	var choices []choice
	total := 0
	add := func(t TileType, w int) {
		if w > 0 {
			choices = append(choices, choice{t, w})
			total += w
		}
	}

	w := m.cfg.Weights
	if items < m.MaximumItems() {
		add(TileRocket, w.Rocket)
		add(TileBomb, w.Bomb)
		add(TileStar, w.Star)
	}
	if multipliers < m.MaximumMultipliers() {
		add(TileX2, w.X2)
		add(TileX3, w.X3)
		add(TileX4, w.X4)
	}
	if total == 0 {
		return TileNormal
	}

	n := m.rng.Intn(total)
	for _, c := range choices {
		if n < c.weight {
			return c.typ
		}
		n -= c.weight
	}
	return TileNormal
}
