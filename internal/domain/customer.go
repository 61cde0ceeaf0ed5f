package domain

import (
	"errors"
	"time"
)

var (
	// ErrCustomerNotFound is returned when no customer matches the requested account.
	ErrCustomerNotFound = errors.New("customer not found")
)

type CustomerStatus string

const (
	CustomerStatusActive       CustomerStatus = "ACTIVE"
	CustomerStatusDisconnected CustomerStatus = "DISCONNECTED"
)

type Customer struct {
	ID           int32          `json:"id"`
	AccountNo    string         `json:"account_no"`
	Name         string         `json:"name"`
	Address      string         `json:"address"`
	Barangay     string         `json:"barangay"`
	MeterNo      string         `json:"meter_no"`
	Status       CustomerStatus `json:"status"`
	BalanceCents int64          `json:"balance_cents"` // last posted balance, audited against the recomputed ledger
	CreatedAt    time.Time      `json:"created_at"`
}
