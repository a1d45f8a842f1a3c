package order

import (
	"fmt"
	"strconv"
	"strings"

	"cargofresh/internal/pkg/errs"
)

const idPrefix = "ORD-"

// ID identifies an order, e.g. "ORD-001". IDs are issued from a monotonic sequence.
type ID string

// NewID formats the sequence number seq as an order ID.
func NewID(seq int) (ID, error) {
	if seq <= 0 {
		return "", errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("sequence %d is not greater than 0", seq))
	}
	return ID(fmt.Sprintf("%s%03d", idPrefix, seq)), nil
}

// ParseID accepts IDs of the form ORD-<digits> and returns the canonical spelling,
// so "ORD-7" and "ORD-0007" both name ORD-007.
func ParseID(s string) (ID, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError("order id")
	}

	seq, err := parseSequence(trimmed)
	if err != nil {
		return "", err
	}
	return NewID(seq)
}

// Sequence returns the numeric part of the ID, or 0 for an invalid ID.
func (id ID) Sequence() int {
	seq, err := parseSequence(string(id))
	if err != nil {
		return 0
	}
	return seq
}

// Validate accepts only canonical IDs, as produced by NewID.
func (id ID) Validate() error {
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}

	seq, err := parseSequence(string(id))
	if err != nil {
		return err
	}
	if canonical, _ := NewID(seq); canonical != id {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%q is not canonical, use %q", string(id), string(canonical)))
	}
	return nil
}

func parseSequence(s string) (int, error) {
	digits, ok := strings.CutPrefix(s, idPrefix)
	if !ok || digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%q is not of the form %sNNN", s, idPrefix))
	}

	seq, err := strconv.Atoi(digits)
	if err != nil || seq <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%q has no valid sequence", s))
	}
	return seq, nil
}

func (id ID) String() string {
	return string(id)
}
