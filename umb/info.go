package umb

import (
	"fmt"
	"strings"
)

// FormatInfo renders the status report for an interface. Decoding the text
// fields is lossy but total, so formatting has no failure path.
func FormatInfo(ifname string, info *Info) string {
	provider := DecodeString(info.Provider[:], ProviderMaxLen)
	phone := DecodeString(info.PhoneNumber[:], PhoneMaxLen)
	roaming := DecodeString(info.RoamingText[:], RoamingTextMaxLen)
	apn := DecodeString(info.APN[:], APNMaxLen)
	fwinfo := DecodeString(info.FWInfo[:], FWInfoMaxLen)
	hwinfo := DecodeString(info.HWInfo[:], HWInfoMaxLen)

	allowed := "denied"
	if info.EnableRoaming != 0 {
		allowed = "allowed"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: state %s, mode %s, registration %s\n",
		ifname, Descr(StateDescrs, info.State),
		Descr(RegModeDescrs, info.RegMode),
		Descr(RegStateDescrs, info.RegState))
	fmt.Fprintf(&b, "\tprovider %q, dataclass %s, signal %s\n",
		provider, Descr(DataClassDescrs, info.CellClass),
		Descr(BERDescrs, info.BER))
	fmt.Fprintf(&b, "\tphone number %q, roaming %q (%s)\n",
		phone, roaming, allowed)
	fmt.Fprintf(&b, "\tAPN %q, TX %d, RX %d\n",
		apn, info.UplinkSpeed, info.DownlinkSpeed)
	fmt.Fprintf(&b, "\tfirmware %q, hardware %q\n", fwinfo, hwinfo)
	return b.String()
}
