package umb

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadParameter is returned by Apply for an unrecognized parameter name
// or a recognized name missing its value.
var ErrBadParameter = errors.New("unknown or incomplete parameter")

// maskValue stands in for a secret in diagnostics. The mask tracks the
// input length, capped at the field maximum, so a "too long" report stays
// plausible without echoing the value.
func maskValue(s string, maxlen int) string {
	n := len(s)
	if n > maxlen {
		n = maxlen
	}
	return strings.Repeat("*", n)
}

// Apply walks name/value token pairs in order and applies each validated
// update to the record. The record should be freshly fetched from the
// device so fields not named here keep their current values. Later
// duplicates overwrite earlier ones. On the first failure the rest of the
// batch is abandoned; updates already applied are left in place, since a
// failed record is never written back to the device.
func (p *Parameter) Apply(tokens []string) error {
	for i := 0; i < len(tokens); i++ {
		switch {
		case tokens[i] == "apn" && i+1 < len(tokens):
			n, err := EncodeString(tokens[i+1], p.APN[:])
			if err != nil {
				return fmt.Errorf("APN %q: %w", tokens[i+1], ErrTooLong)
			}
			p.APNLen = int32(n)
			i++
		case tokens[i] == "username" && i+1 < len(tokens):
			n, err := EncodeString(tokens[i+1], p.Username[:])
			if err != nil {
				return fmt.Errorf("username %q: %w", tokens[i+1], ErrTooLong)
			}
			p.UsernameLen = int32(n)
			i++
		case tokens[i] == "password" && i+1 < len(tokens):
			n, err := EncodeString(tokens[i+1], p.Password[:])
			if err != nil {
				return fmt.Errorf("password %s: %w", maskValue(tokens[i+1], PasswordMaxLen), ErrTooLong)
			}
			p.PasswordLen = int32(n)
			i++
		case tokens[i] == "pin" && i+1 < len(tokens):
			p.IsPUK = 0
			p.PINOp = PINOpEnter
			n, err := EncodeString(tokens[i+1], p.PIN[:])
			if err != nil {
				return fmt.Errorf("PIN %s: %w", maskValue(tokens[i+1], PINMaxLen), ErrTooLong)
			}
			p.PINLen = int32(n)
			i++
		case tokens[i] == "puk" && i+1 < len(tokens):
			p.IsPUK = 1
			p.PINOp = PINOpEnter
			n, err := EncodeString(tokens[i+1], p.PIN[:])
			if err != nil {
				return fmt.Errorf("PUK %s: %w", maskValue(tokens[i+1], PINMaxLen), ErrTooLong)
			}
			p.PINLen = int32(n)
			i++
		case tokens[i] == "roaming" && i+1 < len(tokens):
			switch tokens[i+1] {
			case "on":
				p.Roaming = 1
			case "off":
				p.Roaming = 0
			default:
				return fmt.Errorf("roaming %q: %w", tokens[i+1], ErrBadParameter)
			}
			i++
		case tokens[i] == "class" && i+1 < len(tokens):
			classes := DataClassNone
			for _, name := range strings.Split(tokens[i+1], ",") {
				val, ok := DataClassValue(name)
				if !ok {
					return fmt.Errorf("data class %q: %w", name, ErrBadParameter)
				}
				classes |= val
			}
			p.PreferredClasses = classes
			i++
		default:
			return fmt.Errorf("%q: %w", tokens[i], ErrBadParameter)
		}
	}
	return nil
}
