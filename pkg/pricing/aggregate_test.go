package pricing

import (
	"testing"

	"github.com/google/uuid"
)

func TestAggregateLinesScalesProductsByDays(t *testing.T) {
	t.Parallel()

	lines := []LineItem{
		{ProductID: uuid.New(), Quantity: 2, PricePerPeriodOre: 50_000},
	}
	got := AggregateLines(lines, nil, 3)

	if got.ProductSubtotal != 300_000 {
		t.Fatalf("expected 3000kr subtotal, got %d", got.ProductSubtotal)
	}
	if got.LineCount != 1 {
		t.Fatalf("expected one line, got %d", got.LineCount)
	}
	if got.ProductDiscount != 0 {
		t.Fatalf("expected no discount for one line, got %d", got.ProductDiscount)
	}
}

func TestAggregateLinesWrappingIsFlatPerLine(t *testing.T) {
	t.Parallel()

	lines := []LineItem{
		{Quantity: 5, PricePerPeriodOre: 10_000, WrappingSelected: true, WrappingCostOre: 2_500},
		{Quantity: 1, PricePerPeriodOre: 10_000, WrappingSelected: false, WrappingCostOre: 2_500},
	}
	got := AggregateLines(lines, nil, 4)

	// Wrapping neither scales with quantity nor with days.
	if got.WrappingTotal != 2_500 {
		t.Fatalf("expected 25kr wrapping total, got %d", got.WrappingTotal)
	}
}

func TestAggregateLinesAddonsAreOneTime(t *testing.T) {
	t.Parallel()

	addons := []AddonSelection{
		{Selected: true, PriceOre: 5_000, Quantity: 2},
		{Selected: true, PriceOre: 3_000},  // quantity defaults to 1
		{Selected: false, PriceOre: 9_999}, // unselected entries are ignored
	}
	got := AggregateLines(nil, addons, 7)

	if got.AddonsTotal != 13_000 {
		t.Fatalf("expected 130kr addons total, got %d", got.AddonsTotal)
	}
}

func TestAggregateLinesDiscountThreshold(t *testing.T) {
	t.Parallel()

	two := []LineItem{
		{Quantity: 10, PricePerPeriodOre: 100_000},
		{Quantity: 10, PricePerPeriodOre: 100_000},
	}
	if got := AggregateLines(two, nil, 1); got.ProductDiscount != 0 {
		t.Fatalf("two lines must not discount; got %d", got.ProductDiscount)
	}

	three := []LineItem{
		{Quantity: 1, PricePerPeriodOre: 100_000},
		{Quantity: 1, PricePerPeriodOre: 100_000},
		{Quantity: 1, PricePerPeriodOre: 100_000},
	}
	got := AggregateLines(three, nil, 1)
	if got.ProductDiscount != 30_000 {
		t.Fatalf("expected 10%% of 3000kr, got %d", got.ProductDiscount)
	}
}

func TestAggregateLinesCountsDistinctLinesNotUnits(t *testing.T) {
	t.Parallel()

	// 30 units across two lines: still below the threshold.
	lines := []LineItem{
		{Quantity: 15, PricePerPeriodOre: 10_000},
		{Quantity: 15, PricePerPeriodOre: 10_000},
	}
	if got := AggregateLines(lines, nil, 1); got.ProductDiscount != 0 {
		t.Fatalf("unit count must not trigger the discount; got %d", got.ProductDiscount)
	}
}

func TestAggregateLinesZeroQuantityLineIsExcluded(t *testing.T) {
	t.Parallel()

	lines := []LineItem{
		{Quantity: 0, PricePerPeriodOre: 10_000, WrappingSelected: true, WrappingCostOre: 1_000},
		{Quantity: 2, PricePerPeriodOre: 10_000},
	}
	got := AggregateLines(lines, nil, 1)
	if got.LineCount != 1 {
		t.Fatalf("zero-quantity line must not count, got %d", got.LineCount)
	}
	if got.ProductSubtotal != 20_000 {
		t.Fatalf("expected 200kr subtotal, got %d", got.ProductSubtotal)
	}
	// Wrapping was still selected on the zero-qty line.
	if got.WrappingTotal != 1_000 {
		t.Fatalf("expected wrapping kept, got %d", got.WrappingTotal)
	}
}

func TestAggregateLinesClampsNegatives(t *testing.T) {
	t.Parallel()

	lines := []LineItem{
		{Quantity: -3, PricePerPeriodOre: 10_000},
		{Quantity: 1, PricePerPeriodOre: -500},
	}
	addons := []AddonSelection{
		{Selected: true, PriceOre: -100, Quantity: 1},
		{Selected: true, PriceOre: 100, Quantity: -2},
	}
	got := AggregateLines(lines, addons, 1)

	if got.ProductSubtotal != 0 {
		t.Fatalf("negative inputs must clamp to zero, got subtotal %d", got.ProductSubtotal)
	}
	if got.AddonsTotal != 0 {
		t.Fatalf("negative addon inputs must clamp to zero, got %d", got.AddonsTotal)
	}
}
