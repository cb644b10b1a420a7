package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tasktimer/internal/report"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value accepting YYYY-MM-DD dates, so malformed dates
// fail at flag parse time with a uniform message.
type dateValue struct {
	dest *string
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(dest *string) *dateValue {
	return &dateValue{dest: dest}
}

func (d *dateValue) String() string {
	if d.dest == nil {
		return ""
	}
	return *d.dest
}

func (d *dateValue) Set(v string) error {
	if _, err := time.ParseInLocation(report.DateLayout, v, time.Local); err != nil {
		return fmt.Errorf("invalid date %q: use YYYY-MM-DD", v)
	}
	*d.dest = v
	return nil
}

func (d *dateValue) Type() string {
	return "date"
}
