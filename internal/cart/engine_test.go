package cart

import (
	"testing"

	"github.com/dmtumanov/beanline-backend/internal/catalog"
	"github.com/dmtumanov/beanline-backend/internal/options"
	"github.com/dmtumanov/beanline-backend/pkg/enums"
	pkgerrors "github.com/dmtumanov/beanline-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func milkPtr(m enums.MilkVariant) *enums.MilkVariant  { return &m }
func syrupPtr(s enums.SyrupFlavor) *enums.SyrupFlavor { return &s }

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(catalog.Default())
}

func TestAddItem_MergesIdenticalConfigurations(t *testing.T) {
	engine := newTestEngine(t)
	coconut := options.Selection{Milk: milkPtr(enums.MilkCoconut)}

	// Cappuccino 250ml (190) + coconut milk (70) = 260 per unit.
	first, err := engine.AddItem("cappuccino", 0, 2, coconut, 520)
	require.NoError(t, err)
	assert.Equal(t, 260, first.UnitPrice)
	assert.Equal(t, 520, first.TotalPrice)

	merged, err := engine.AddItem("cappuccino", 0, 1, coconut, 260)
	require.NoError(t, err)
	assert.Equal(t, first.Key, merged.Key)
	assert.Equal(t, 3, merged.Quantity)
	assert.Equal(t, 780, merged.TotalPrice)

	assert.Len(t, engine.Lines(), 1)
	assert.Equal(t, 780, engine.Total())
	assert.Equal(t, 3, engine.ItemCount())
}

func TestAddItem_CarriesCallerPrice(t *testing.T) {
	engine := newTestEngine(t)

	first, err := engine.AddItem("cappuccino", 0, 1, options.Selection{}, 190)
	require.NoError(t, err)
	require.Equal(t, 190, first.TotalPrice)

	// The merge sums the carried totals instead of recomputing from the
	// catalog, so a caller-side price change survives as handed in.
	merged, err := engine.AddItem("cappuccino", 0, 2, options.Selection{}, 350)
	require.NoError(t, err)
	assert.Equal(t, 3, merged.Quantity)
	assert.Equal(t, 540, merged.TotalPrice)
	assert.Equal(t, 540, engine.Total())
}

func TestAddItem_DifferentConfigurationsStaySeparate(t *testing.T) {
	engine := newTestEngine(t)

	plain, err := engine.AddItem("cappuccino", 0, 1, options.Selection{}, 190)
	require.NoError(t, err)

	withMilk, err := engine.AddItem("cappuccino", 0, 1, options.Selection{Milk: milkPtr(enums.MilkAlmond)}, 260)
	require.NoError(t, err)

	otherSize, err := engine.AddItem("cappuccino", 1, 1, options.Selection{}, 230)
	require.NoError(t, err)

	assert.NotEqual(t, plain.Key, withMilk.Key)
	assert.NotEqual(t, plain.Key, otherSize.Key)
	assert.Len(t, engine.Lines(), 3)
}

func TestAddItem_RejectsBadReferences(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.AddItem("flat-white", 0, 1, options.Selection{}, 190)
	domainErr := pkgerrors.As(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, pkgerrors.CodeInvalidProductReference, domainErr.Code())

	_, err = engine.AddItem("cappuccino", 9, 1, options.Selection{}, 190)
	domainErr = pkgerrors.As(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, pkgerrors.CodeInvalidVariantIndex, domainErr.Code())

	_, err = engine.AddItem("cappuccino", 0, 0, options.Selection{}, 190)
	domainErr = pkgerrors.As(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, pkgerrors.CodeValidation, domainErr.Code())

	_, err = engine.AddItem("cappuccino", 0, 1, options.Selection{}, -1)
	domainErr = pkgerrors.As(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, pkgerrors.CodeValidation, domainErr.Code())
}

func TestRemoveItem(t *testing.T) {
	engine := newTestEngine(t)

	first, err := engine.AddItem("cappuccino", 0, 1, options.Selection{}, 190)
	require.NoError(t, err)
	second, err := engine.AddItem("latte", 0, 1, options.Selection{}, 210)
	require.NoError(t, err)

	require.True(t, engine.RemoveItem(first.Key))
	assert.False(t, engine.RemoveItem(first.Key))

	lines := engine.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, second.Key, lines[0].Key)

	// Re-adding after removal starts a fresh line.
	again, err := engine.AddItem("cappuccino", 0, 1, options.Selection{}, 190)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Quantity)
}

func TestClear(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.AddItem("cheesecake", 0, 2, options.Selection{}, 360)
	require.NoError(t, err)

	engine.Clear()
	assert.True(t, engine.Empty())
	assert.Zero(t, engine.Total())
	assert.Zero(t, engine.ItemCount())
}

func TestLineKey_Deterministic(t *testing.T) {
	sel := options.Selection{Milk: milkPtr(enums.MilkCoconut), SugarGrams: 3}
	assert.Equal(t, LineKey("cappuccino", 0, sel), LineKey("cappuccino", 0, sel))
	assert.NotEqual(t, LineKey("cappuccino", 0, sel), LineKey("cappuccino", 1, sel))
}

func TestManager_PricesSurchargesIntoLines(t *testing.T) {
	manager := NewManager(catalog.Default())

	line, err := manager.AddItem("alice", "latte", 0, 1, options.Selection{
		Milk:  milkPtr(enums.MilkBanana),
		Syrup: syrupPtr(enums.SyrupRaspberry),
	})
	require.NoError(t, err)

	// 210 base + 70 milk + 40 syrup.
	assert.Equal(t, 320, line.UnitPrice)
	assert.Equal(t, 320, line.TotalPrice)
}

func TestManager_InvalidOptionLeavesCartUntouched(t *testing.T) {
	manager := NewManager(catalog.Default())

	_, err := manager.AddItem("alice", "bumble-coffee", 0, 1, options.Selection{Milk: milkPtr(enums.MilkCoconut)})
	require.Error(t, err)
	assert.Zero(t, manager.Snapshot("alice").ItemCount)
}

func TestManager_RejectsBadReferences(t *testing.T) {
	manager := NewManager(catalog.Default())

	_, err := manager.AddItem("alice", "flat-white", 0, 1, options.Selection{})
	domainErr := pkgerrors.As(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, pkgerrors.CodeInvalidProductReference, domainErr.Code())

	_, err = manager.AddItem("alice", "cappuccino", 9, 1, options.Selection{})
	domainErr = pkgerrors.As(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, pkgerrors.CodeInvalidVariantIndex, domainErr.Code())
}

func TestManager_IsolatesCustomers(t *testing.T) {
	manager := NewManager(catalog.Default())

	_, err := manager.AddItem("alice", "cappuccino", 0, 1, options.Selection{})
	require.NoError(t, err)

	assert.Equal(t, 1, manager.Snapshot("alice").ItemCount)
	assert.Zero(t, manager.Snapshot("bob").ItemCount)

	manager.Clear("alice")
	assert.Zero(t, manager.Snapshot("alice").ItemCount)
}
