package chart

import "fmt"

type AxisOptions struct {
	X []string `json:"x"`
	Y []string `json:"y"`
}

var axisTable = map[ChartType]AxisOptions{
	ChartTypeBar: {
		X: []string{"Position", "Department", "State"},
		Y: []string{"Salary", "Absences", "SpecialProjectsCount"},
	},
	ChartTypePie: {
		X: []string{"Department", "EmploymentStatus", "Position"},
		Y: []string{CountColumn},
	},
	ChartTypeLine: {
		X: []string{"DateofHire", "DateofTermination"},
		Y: []string{"Salary", "DaysLateLast30", "SpecialProjectsCount"},
	},
	ChartTypeScatter: {
		X: []string{"Salary", "SpecialProjectsCount"},
		Y: []string{"Absences", "DaysLateLast30"},
	},
	ChartTypeArea: {
		X: []string{"DateofHire", "DateofTermination"},
		Y: []string{"Salary", "SpecialProjectsCount"},
	},
}

// AllowedAxes returns a copy of the X and Y options for a chart type.
func AllowedAxes(t ChartType) (AxisOptions, error) {
	opts, ok := axisTable[t]
	if !ok {
		return AxisOptions{}, fmt.Errorf("%w: %q", ErrUnknownChartType, t)
	}
	return AxisOptions{
		X: append([]string(nil), opts.X...),
		Y: append([]string(nil), opts.Y...),
	}, nil
}

func (o AxisOptions) Allows(x, y string) bool {
	return contains(o.X, x) && contains(o.Y, y)
}

// Validate checks a request against the axis table. A pie request may leave
// the Y column empty; it is filled with CountColumn.
func Validate(req ChartRequest) (ChartRequest, error) {
	opts, err := AllowedAxes(req.ChartType)
	if err != nil {
		return req, err
	}
	if req.ChartType == ChartTypePie && req.YColumn == "" {
		req.YColumn = CountColumn
	}
	if !opts.Allows(req.XColumn, req.YColumn) {
		return req, fmt.Errorf("%w: %s x=%q y=%q", ErrAxisNotAllowed, req.ChartType, req.XColumn, req.YColumn)
	}
	return req, nil
}

// Normalize replaces an unknown chart type with Bar and any axis outside the
// option set with the first option, the way a select control falls back when
// its options change.
func Normalize(req ChartRequest) ChartRequest {
	opts, err := AllowedAxes(req.ChartType)
	if err != nil {
		req.ChartType = ChartTypes[0]
		opts, _ = AllowedAxes(req.ChartType)
	}
	if !contains(opts.X, req.XColumn) {
		req.XColumn = opts.X[0]
	}
	if !contains(opts.Y, req.YColumn) {
		req.YColumn = opts.Y[0]
	}
	return req
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
