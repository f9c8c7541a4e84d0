package types

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// Record identifier prefixes
const (
	PrefixPatient      = "PAT"
	PrefixDoctor       = "DOC"
	PrefixAppointment  = "APT"
	PrefixBill         = "BILL"
	PrefixStaff        = "STF"
	PrefixInventory    = "INV"
	PrefixPrescription = "PRE"
	PrefixRoom         = "ROOM"
	PrefixAdmission    = "ADM"
	PrefixLabTest      = "LAB"
	PrefixOperation    = "OPR"
)

// NewRecordID generates a prefixed record identifier such as BILL7F3A21C4.
// The random part comes from a UUID, so collisions are a persistence-layer
// concern enforced by the unique column rather than checked here.
func NewRecordID(prefix string) string {
	id := uuid.New()
	return prefix + strings.ToUpper(hex.EncodeToString(id[:4]))
}
