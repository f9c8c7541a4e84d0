package types

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveBillStatus(t *testing.T) {
	cases := []struct {
		name   string
		total  string
		paid   string
		expect BillStatus
	}{
		{"fully paid", "650", "650.0", BillStatusPaid},
		{"nothing paid", "650", "0", BillStatusPending},
		{"partially paid", "650", "300", BillStatusPartial},
		{"overpaid", "650", "700", BillStatusPartial},
		{"zero total zero paid", "0", "0", BillStatusPaid},
		{"decimal exactness", "0.3", "0.3", BillStatusPaid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			total := decimal.RequireFromString(tc.total)
			paid := decimal.RequireFromString(tc.paid)
			assert.Equal(t, tc.expect, DeriveBillStatus(total, paid))
		})
	}
}

func TestPaymentMethodValid(t *testing.T) {
	valid := []PaymentMethod{
		"", PaymentMethodCash, PaymentMethodCreditCard,
		PaymentMethodDebitCard, PaymentMethodInsurance, PaymentMethodOnline,
	}
	for _, m := range valid {
		assert.True(t, m.Valid(), string(m))
	}

	assert.False(t, PaymentMethod("Barter").Valid())
	assert.False(t, PaymentMethod("cash").Valid())
}

func TestNewRecordID(t *testing.T) {
	id := NewRecordID(PrefixBill)
	assert.True(t, strings.HasPrefix(id, "BILL"))
	assert.Len(t, id, len(PrefixBill)+8)

	// Two generated ids should differ
	assert.NotEqual(t, id, NewRecordID(PrefixBill))
}
