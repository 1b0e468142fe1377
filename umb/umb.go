// Package umb models the records exchanged with an MBIM ("umb") network
// interface driver over its control-request surface, along with the
// fixed-width UTF-16 string codec and value description tables needed to
// build and render them.
package umb

// Maximum lengths, in 16-bit units, of the fixed-width strings embedded in
// the driver records. Byte capacities are twice these values.
const (
	APNMaxLen         = 100
	UsernameMaxLen    = 255
	PasswordMaxLen    = 255
	PINMaxLen         = 32
	ProviderMaxLen    = 20
	PhoneMaxLen       = 22
	RoamingTextMaxLen = 63
	FWInfoMaxLen      = 30
	HWInfoMaxLen      = 30
)

// Internal readiness states of the interface.
const (
	StateDown uint32 = iota
	StateOpen
	StateRadio
	StateSIMReady
	StateAttached
	StateConnected
	StateUp
)

// Registration modes.
const (
	RegModeUnknown uint32 = iota
	RegModeAutomatic
	RegModeManual
)

// Carrier registration states.
const (
	RegStateUnknown uint32 = iota
	RegStateDeregistered
	RegStateSearching
	RegStateHome
	RegStateRoaming
	RegStatePartner
	RegStateDenied
)

// Data classes. These are bits: an interface may support several at once
// even though only one is active on a connection.
const (
	DataClassNone   uint32 = 0x00000000
	DataClassGPRS   uint32 = 0x00000001
	DataClassEDGE   uint32 = 0x00000002
	DataClassUMTS   uint32 = 0x00000004
	DataClassHSDPA  uint32 = 0x00000008
	DataClassHSUPA  uint32 = 0x00000010
	DataClassLTE    uint32 = 0x00000020
	DataClassCustom uint32 = 0x80000000
)

// Bit error rate levels reported by the modem.
const (
	BERExcellent uint32 = iota
	BERVeryGood
	BERGood
	BEROK
	BERMedium
	BERBad
	BERVeryBad
	BERExtremelyBad
)

// PIN operations.
const (
	PINOpEnter uint32 = iota
	PINOpEnable
	PINOpDisable
	PINOpChange
)

// Parameter is the connection parameter record transferred by the
// get-parameters and set-parameters control requests. String fields are
// fixed-capacity little-endian UTF-16 buffers; the companion length fields
// count the bytes actually in use. The record is flat so it can be handed
// to the driver as a raw payload.
type Parameter struct {
	Roaming          uint32
	PreferredClasses uint32

	APNLen int32
	APN    [2 * APNMaxLen]byte

	UsernameLen int32
	Username    [2 * UsernameMaxLen]byte

	PasswordLen int32
	Password    [2 * PasswordMaxLen]byte

	IsPUK  uint32
	PINOp  uint32
	PINLen int32
	PIN    [2 * PINMaxLen]byte
}

// Info is the status record returned by the get-info control request.
type Info struct {
	State         uint32
	RegMode       uint32
	RegState      uint32
	CellClass     uint32
	BER           uint32
	EnableRoaming uint32

	Provider    [2 * ProviderMaxLen]byte
	PhoneNumber [2 * PhoneMaxLen]byte
	RoamingText [2 * RoamingTextMaxLen]byte
	APN         [2 * APNMaxLen]byte

	UplinkSpeed   uint64
	DownlinkSpeed uint64

	FWInfo [2 * FWInfoMaxLen]byte
	HWInfo [2 * HWInfoMaxLen]byte
}
