package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromInt(100), NPR)
	require.NoError(t, err)
	assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
	assert.Equal(t, NPR, m.Currency())

	_, err = NewMoney(decimal.NewFromInt(100), "")
	assert.Error(t, err)
}

func TestMoneyAdd(t *testing.T) {
	a := NewMoneyNPRFromFloat(100.50)
	b := NewMoneyNPRFromFloat(49.50)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "150.00", sum.StringFixed(2))

	usd, _ := NewMoney(decimal.NewFromInt(10), USD)
	_, err = a.Add(usd)
	assert.Error(t, err)
}

func TestMoneyMultiplyByInt(t *testing.T) {
	price := NewMoneyNPRFromFloat(100)
	total := price.MultiplyByInt(2)
	assert.Equal(t, "200.00", total.StringFixed(2))
}

func TestMoneyApplyDiscount(t *testing.T) {
	price := NewMoneyNPR(decimal.NewFromInt(1000))

	discounted := price.ApplyDiscount(decimal.NewFromInt(10))
	assert.Equal(t, "900.00", discounted.StringFixed(2))

	// zero discount leaves the price untouched
	same := price.ApplyDiscount(decimal.Zero)
	assert.True(t, same.Equals(price))
}

func TestMoneyComparison(t *testing.T) {
	a := NewMoneyNPRFromFloat(50)
	b := NewMoneyNPRFromFloat(100)

	less, err := a.LessThan(b)
	require.NoError(t, err)
	assert.True(t, less)

	greater, err := b.GreaterThan(a)
	require.NoError(t, err)
	assert.True(t, greater)
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m := NewMoneyNPRFromFloat(249.99)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equals(m))
}

func TestMoneyScan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan("123.45"))
	assert.Equal(t, "123.45", m.StringFixed(2))
	assert.Equal(t, DefaultCurrency, m.Currency())

	require.NoError(t, m.Scan(nil))
	assert.True(t, m.IsZero())
}
