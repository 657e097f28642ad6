package batch

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/ajroetker/go-cfv/cfv"
)

// Column is one candidate configuration of the summary table: a library
// at a dtype on a device.
type Column struct {
	Library cfv.Library
	Dtype   cfv.Dtype
	Device  string

	// Baseline marks the reference library at a lower precision; its label
	// omits the device.
	Baseline bool
}

// Function returns the named function of the column.
func (c Column) Function(name string) cfv.Function {
	return c.Library.Function(name, c.Dtype, c.Device)
}

// Label returns the table header of the column, "<Library> <device>: <dtype>".
func (c Column) Label() string {
	if c.Baseline {
		return fmt.Sprintf("%s: %v", c.Library.Name(), c.Dtype)
	}
	return fmt.Sprintf("%s %s: %v", c.Library.Name(), c.Device, c.Dtype)
}

// Plan is the functions x columns grid of a batch run.
type Plan struct {
	Reference Column
	Functions []string
	Columns   []Column
}

// NewPlan returns the plan comparing every library of others, on every
// dtype and every device, against ref. The first column is ref's library at
// complex64 on ref's device.
func NewPlan(ref Column, others []cfv.Library, dtypes []cfv.Dtype, functions []string) Plan {
	baseline := Column{Library: ref.Library, Dtype: cfv.Complex64, Device: ref.Device, Baseline: true}
	columns := lo.FlatMap(others, func(lib cfv.Library, _ int) []Column {
		return lo.FlatMap(dtypes, func(d cfv.Dtype, _ int) []Column {
			return lo.Map(lib.Devices(), func(device string, _ int) Column {
				return Column{Library: lib, Dtype: d, Device: device}
			})
		})
	})
	return Plan{
		Reference: ref,
		Functions: functions,
		Columns:   append([]Column{baseline}, columns...),
	}
}

// Labels returns the column labels, "Function" first.
func (p Plan) Labels() []string {
	return append([]string{"Function"}, lo.Map(p.Columns, func(c Column, _ int) string { return c.Label() })...)
}

// Libraries returns the distinct libraries of the plan, reference first.
func (p Plan) Libraries() []cfv.Library {
	libs := append([]cfv.Library{p.Reference.Library}, lo.Map(p.Columns, func(c Column, _ int) cfv.Library { return c.Library })...)
	return lo.UniqBy(libs, func(l cfv.Library) string { return l.Name() })
}
