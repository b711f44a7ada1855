package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentStatusCreated  = "CREATED"
	PaymentStatusVerified = "VERIFIED"
)

// PaymentOrder is the idempotency ledger for the payment workflow. A row is
// written at capture time and flipped to VERIFIED inside the enrollment
// transaction; a replayed webhook finds the VERIFIED row and is a no-op.
type PaymentOrder struct {
	gorm.Model
	OrderID string `json:"orderId" gorm:"index;not null"`
	// Nil until the payment is verified; unique so a payment id can settle
	// at most one ledger row.
	PaymentID *string `json:"paymentId" gorm:"uniqueIndex"`

	UserID  uint                      `json:"userId" gorm:"index;not null"`
	Amount  int64                     `json:"amount" gorm:"not null"` // minor currency units
	Receipt string                    `json:"receipt"`
	Courses datatypes.JSONSlice[uint] `json:"courses"`
	Status  string                    `json:"status" gorm:"default:'CREATED'"`
}
