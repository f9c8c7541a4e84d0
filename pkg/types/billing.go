package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is one of the fixed set of accepted payment methods.
// The empty string means the method was not recorded.
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "Cash"
	PaymentMethodCreditCard PaymentMethod = "Credit Card"
	PaymentMethodDebitCard  PaymentMethod = "Debit Card"
	PaymentMethodInsurance  PaymentMethod = "Insurance"
	PaymentMethodOnline     PaymentMethod = "Online"
)

// Valid reports whether the payment method is one of the accepted values or unset
func (m PaymentMethod) Valid() bool {
	switch m {
	case "", PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodInsurance, PaymentMethodOnline:
		return true
	}
	return false
}

// BillStatus is the derived payment status of a bill
type BillStatus string

const (
	BillStatusPaid    BillStatus = "Paid"
	BillStatusPartial BillStatus = "Partial"
	BillStatusPending BillStatus = "Pending"
)

// DeriveBillStatus computes the payment status from the billed total and the
// amount already paid: Paid when nothing is due, Partial when some payment was
// made, Pending otherwise. The zero check is exact; amounts are decimals, not
// floats, so parsed currency values compare without rounding surprises.
func DeriveBillStatus(totalAmount, paidAmount decimal.Decimal) BillStatus {
	due := totalAmount.Sub(paidAmount)
	switch {
	case due.IsZero():
		return BillStatusPaid
	case paidAmount.IsPositive():
		return BillStatusPartial
	default:
		return BillStatusPending
	}
}

// LineItem is one priced entry on a bill. LineTotal is fixed at the moment the
// item is added; items are never edited afterwards.
type LineItem struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// DisplayRow renders the item as the listing tuple
// (name, description, quantity, price, line total) with currency formatting.
// The decimal fields remain the canonical values; these strings are for
// display and export only.
func (li LineItem) DisplayRow() []string {
	return []string{
		li.Name,
		li.Description,
		li.Quantity.String(),
		"$" + li.UnitPrice.StringFixed(2),
		"$" + li.LineTotal.StringFixed(2),
	}
}

// Bill is a finalized, persisted bill. Bills are immutable once created;
// corrections require a new bill record.
type Bill struct {
	BillID           string          `json:"bill_id"`
	PatientID        string          `json:"patient_id"`
	PatientName      string          `json:"patient_name"`
	BillDate         string          `json:"bill_date"`
	BillTime         string          `json:"bill_time"`
	Items            []LineItem      `json:"items"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	PaidAmount       decimal.Decimal `json:"paid_amount"`
	DueAmount        decimal.Decimal `json:"due_amount"`
	PaymentMethod    PaymentMethod   `json:"payment_method"`
	InsuranceCovered decimal.Decimal `json:"insurance_covered"`
	Status           BillStatus      `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

// DisplayItems renders every line item as its listing tuple
func (b *Bill) DisplayItems() [][]string {
	rows := make([][]string, 0, len(b.Items))
	for _, item := range b.Items {
		rows = append(rows, item.DisplayRow())
	}
	return rows
}

// PatientRef is the patient directory's answer to a lookup: the snapshot of
// identity a bill records at finalize time.
type PatientRef struct {
	PatientID string `json:"patient_id"`
	Name      string `json:"name"`
}

// BillFilters narrows bill listings
type BillFilters struct {
	PatientID string
	Status    BillStatus
	BillDate  string
	Limit     int
	Offset    int
}
