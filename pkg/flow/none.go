package flow

// None is the unit value of results that carry no data.
type None struct{}

// NoneValue is the only value of None.
var NoneValue = None{}

func (None) String() string {
	return "Ø"
}
