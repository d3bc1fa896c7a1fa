package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Experimental usage gate (4000..4099)
	ExpUsageWarning Code = 4001
	ExpUsageError   Code = 4002
	// ExpNonSourceUse is reserved for hosts that demote the non-source
	// usage assert to a diagnostic instead of a panic.
	ExpNonSourceUse Code = 4003

	// Marker and opt-in declaration validation (4100..4199)
	ExpOptInNoArgs      Code = 4101
	ExpOptInNotMarker   Code = 4102
	ExpOptInBinaryScope Code = 4103
	ExpMarkerBadTarget  Code = 4104
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	ExpUsageWarning: "Usage of experimental API",
	ExpUsageError:   "Usage of experimental API",
	ExpNonSourceUse: "Usage check on non-source element",

	ExpOptInNoArgs:      "Opt-in without arguments",
	ExpOptInNotMarker:   "Opt-in argument is not a marker",
	ExpOptInBinaryScope: "Opt-in argument has binary scope",
	ExpMarkerBadTarget:  "Experimental annotation has a disallowed target",
}

func (c Code) ID() string {
	if ic := int(c); ic >= 4000 && ic < 5000 {
		return fmt.Sprintf("EXP%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
