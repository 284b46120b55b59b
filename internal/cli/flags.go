package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*reprFlag)(nil)
	_ pflag.Value = (*reportFlag)(nil)
)

type reprFlag string

const (
	reprMatrix reprFlag = "matrix"
	reprStars  reprFlag = "stars"
)

func (r *reprFlag) String() string { return string(*r) }

func (r *reprFlag) Set(val string) error {
	switch v := reprFlag(strings.ToLower(val)); v {
	case reprMatrix, reprStars:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid representation %q, want one of %s", val, strings.Join(r.Values(), "|"))
	}
}

func (r *reprFlag) Type() string { return "repr" }

// Values lists the accepted representations.
func (reprFlag) Values() []string {
	return []string{string(reprMatrix), string(reprStars)}
}

type reportFlag string

const (
	reportText reportFlag = "text"
	reportJSON reportFlag = "json"
)

func (r *reportFlag) String() string { return string(*r) }

func (r *reportFlag) Set(val string) error {
	switch v := reportFlag(strings.ToLower(val)); v {
	case reportText, reportJSON:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid report format %q, want one of %s", val, strings.Join(r.Values(), "|"))
	}
}

func (r *reportFlag) Type() string { return "report" }

// Values lists the accepted report formats.
func (reportFlag) Values() []string {
	return []string{string(reportText), string(reportJSON)}
}
