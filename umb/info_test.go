package umb_test

import (
	"testing"

	"github.com/DRuggeri/umbctl/umb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInfo(t *testing.T) {
	info := &umb.Info{
		State:         umb.StateUp,
		RegMode:       umb.RegModeAutomatic,
		RegState:      umb.RegStateHome,
		CellClass:     umb.DataClassLTE,
		BER:           umb.BERGood,
		EnableRoaming: 1,
		UplinkSpeed:   50000000,
		DownlinkSpeed: 100000000,
	}
	_, err := umb.EncodeString("Carrier", info.Provider[:])
	require.NoError(t, err)
	_, err = umb.EncodeString("15551234567", info.PhoneNumber[:])
	require.NoError(t, err)
	_, err = umb.EncodeString("Welcome abroad", info.RoamingText[:])
	require.NoError(t, err)
	_, err = umb.EncodeString("internet", info.APN[:])
	require.NoError(t, err)
	_, err = umb.EncodeString("FW 1.2.3", info.FWInfo[:])
	require.NoError(t, err)
	_, err = umb.EncodeString("HW rev A", info.HWInfo[:])
	require.NoError(t, err)

	report := umb.FormatInfo("umb0", info)

	assert.Contains(t, report, "umb0: state up, mode automatic, registration home network")
	assert.Contains(t, report, `provider "Carrier", dataclass LTE, signal good`)
	assert.Contains(t, report, `phone number "15551234567", roaming "Welcome abroad" (allowed)`)
	assert.Contains(t, report, `APN "internet", TX 50000000, RX 100000000`)
	assert.Contains(t, report, `firmware "FW 1.2.3", hardware "HW rev A"`)
}

func TestFormatInfoZeroRecord(t *testing.T) {
	// an all-zero record still renders, with table fallbacks where needed
	report := umb.FormatInfo("umb1", &umb.Info{BER: 0xffff})

	assert.Contains(t, report, "umb1: state down")
	assert.Contains(t, report, "signal unknown")
	assert.Contains(t, report, "(denied)")
}
