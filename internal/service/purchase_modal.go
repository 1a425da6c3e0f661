package service

import (
	"crimson-store/internal/model"
	"strings"
)

const (
	msgMissingIGN   = "Please enter your in-game name (IGN)."
	msgInvalidEmail = "Please enter a valid email address."
)

// PurchaseModal collects the IGN and email for one catalog item.
// It owns no pricing and no persistence; Submit hands the cleaned
// values to the caller's callback.
type PurchaseModal struct {
	item *model.CatalogItem
	err  string
}

func (m *PurchaseModal) Open(item model.CatalogItem) {
	m.item = &item
	m.err = ""
}

// Close dismisses the dialog and drops transient state.
func (m *PurchaseModal) Close() {
	m.item = nil
	m.err = ""
}

func (m *PurchaseModal) IsOpen() bool {
	return m.item != nil
}

func (m *PurchaseModal) Item() (model.CatalogItem, bool) {
	if m.item == nil {
		return model.CatalogItem{}, false
	}
	return *m.item, true
}

// Error is the field message shown under the form, if any.
func (m *PurchaseModal) Error() string {
	return m.err
}

func (m *PurchaseModal) Submit(ign, email string, onSubmit func(ign, email string) error) error {
	if err := ValidatePurchaseInput(ign, email); err != nil {
		m.err = err.Message
		return err
	}

	m.err = ""
	return onSubmit(strings.TrimSpace(ign), strings.TrimSpace(email))
}

func ValidatePurchaseInput(ign, email string) *FieldError {
	if strings.TrimSpace(ign) == "" {
		return fieldError("ign", msgMissingIGN)
	}
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return fieldError("email", msgInvalidEmail)
	}
	return nil
}
