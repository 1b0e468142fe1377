package umb

import "strings"

// ValDescr pairs one driver value with its description.
type ValDescr struct {
	Val   uint32
	Descr string
}

const unknownDescr = "unknown"

// Descr returns the description of val in table, or "unknown" when the
// table does not list it. It never fails.
func Descr(table []ValDescr, val uint32) string {
	for _, d := range table {
		if d.Val == val {
			return d.Descr
		}
	}
	return unknownDescr
}

var StateDescrs = []ValDescr{
	{StateDown, "down"},
	{StateOpen, "open"},
	{StateRadio, "radio on"},
	{StateSIMReady, "SIM ready"},
	{StateAttached, "attached"},
	{StateConnected, "connected"},
	{StateUp, "up"},
}

var RegModeDescrs = []ValDescr{
	{RegModeUnknown, "unknown"},
	{RegModeAutomatic, "automatic"},
	{RegModeManual, "manual"},
}

var RegStateDescrs = []ValDescr{
	{RegStateUnknown, "unknown"},
	{RegStateDeregistered, "not registered"},
	{RegStateSearching, "searching"},
	{RegStateHome, "home network"},
	{RegStateRoaming, "roaming"},
	{RegStatePartner, "partner network"},
	{RegStateDenied, "denied"},
}

var DataClassDescrs = []ValDescr{
	{DataClassNone, "none"},
	{DataClassGPRS, "GPRS"},
	{DataClassEDGE, "EDGE"},
	{DataClassUMTS, "UMTS"},
	{DataClassHSDPA, "HSDPA"},
	{DataClassHSUPA, "HSUPA"},
	{DataClassLTE, "LTE"},
	{DataClassCustom, "custom"},
}

var BERDescrs = []ValDescr{
	{BERExcellent, "excellent"},
	{BERVeryGood, "very good"},
	{BERGood, "good"},
	{BEROK, "ok"},
	{BERMedium, "medium"},
	{BERBad, "bad"},
	{BERVeryBad, "very bad"},
	{BERExtremelyBad, "extremely bad"},
}

// DataClassValue resolves a data class name, case-insensitively, back to
// its bit value.
func DataClassValue(name string) (uint32, bool) {
	for _, d := range DataClassDescrs {
		if strings.EqualFold(d.Descr, name) {
			return d.Val, true
		}
	}
	return 0, false
}
