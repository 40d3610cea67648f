package quotepdf

import (
	"fmt"
	"math"
	"time"
)

// LocalizedText is a primary/secondary text pair (e.g. zh/en). The render
// locale selects one branch; the engine never translates.
type LocalizedText struct {
	Primary   string
	Secondary string
}

// IsZero reports whether both branches are empty.
func (t LocalizedText) IsZero() bool {
	return t.Primary == "" && t.Secondary == ""
}

// LineItem is one row of the items table.
type LineItem struct {
	Description LocalizedText
	Quantity    float64
	UnitPrice   float64
	LineTotal   float64
}

// Installment is one row of the optional payment-term schedule.
type Installment struct {
	Index      int       // 1-based term index
	Percentage float64   // percent of the total
	DueDate    time.Time // zero time when absent
	Amount     float64
}

// BankDetails are the optional remittance details drawn by the supplementary
// media stage.
type BankDetails struct {
	BankName      string
	AccountNumber string
	BankCode      string
}

// DocumentSnapshot is the fully prepared, immutable input of one generation.
// The surrounding application validates it before rendering; Validate is
// available for callers who want the boundary check anyway.
//
// Image references (logo, signature, passbook) are URLs or filesystem paths;
// an empty string means absent. Fetch or decode failures are non-fatal: the
// document renders without the image.
type DocumentSnapshot struct {
	DocumentNumber string
	IssueDate      time.Time
	ExpiryDate     time.Time

	CounterpartyName  LocalizedText
	IssuerDisplayName *LocalizedText

	LineItems []LineItem

	Subtotal     float64
	TaxRate      float64 // percent
	TaxAmount    float64
	Total        float64
	CurrencyCode string

	Notes               *LocalizedText
	InstallmentSchedule []Installment
	Bank                *BankDetails

	LogoRef      string
	SignatureRef string
	PassbookRef  string
}

// amountTolerance absorbs currency rounding when checking totals.
const amountTolerance = 0.01

// Validate checks the arithmetic invariants of the snapshot: the line totals
// must sum to the subtotal and subtotal plus tax must equal the total, both
// within currency rounding. Installment percentages are deliberately not
// checked against 100.
func (s *DocumentSnapshot) Validate() error {
	var sum float64
	for _, it := range s.LineItems {
		sum += it.LineTotal
	}
	if math.Abs(sum-s.Subtotal) > amountTolerance {
		return fmt.Errorf("quotepdf: line totals sum %.2f does not match subtotal %.2f", sum, s.Subtotal)
	}
	if math.Abs(s.Subtotal+s.TaxAmount-s.Total) > amountTolerance {
		return fmt.Errorf("quotepdf: subtotal %.2f + tax %.2f does not match total %.2f", s.Subtotal, s.TaxAmount, s.Total)
	}
	return nil
}
