package xgxreport

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

// dumper renders the alternate form: the error's Go structure, field by
// field. Error and Stringer methods are not consulted, and addresses and
// capacities are left out so two dumps of the same value are identical.
var dumper = spew.ConfigState{
	Indent:                  "    ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// dump writes the structural representation of err to w.
func dump(w io.Writer, err error) error {
	_, werr := io.WriteString(w, dumper.Sdump(err))
	return werr
}
