// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package softdevice

// Error is an error code returned by a SoftDevice call.
type Error uint32

// Error code bases from nrf_error.h.
const (
	errBaseSDM = 0x1000
	errBaseSoC = 0x2000
	errBaseSTK = 0x3000
	errBaseEnd = 0x4000
)

var globalErrors = [...]string{
	"no error",
	"SVC handler is missing",
	"SoftDevice has not been enabled",
	"internal error",
	"no memory for operation",
	"not found",
	"not supported",
	"invalid parameter",
	"invalid state, operation disallowed in this state",
	"invalid length",
	"invalid flags",
	"invalid data",
	"invalid data size",
	"operation timed out",
	"null pointer",
	"forbidden operation",
	"bad memory address",
	"busy",
	"maximum connection count exceeded",
	"not enough resources for operation",
}

var sdmErrors = [...]string{
	"unknown LFCLK source",
	"incorrect interrupt configuration",
	"incorrect CLENR0",
}

func (e Error) Error() string {
	switch {
	case e < errBaseSDM:
		if int(e) < len(globalErrors) {
			return globalErrors[e]
		}
		return "other global error"
	case e < errBaseSoC:
		if i := int(e - errBaseSDM); i < len(sdmErrors) {
			return sdmErrors[i]
		}
		return "other SDM error"
	case e < errBaseSTK:
		return "other SoC error"
	case e < errBaseEnd:
		return "other STK error"
	default:
		return "other error"
	}
}

// makeError returns nil for code 0 and an Error otherwise.
func makeError(code uint32) error {
	if code != 0 {
		return Error(code)
	}
	return nil
}
