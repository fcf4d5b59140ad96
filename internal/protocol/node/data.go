package node

import "strconv"

// Tag identifies which variant a Data value currently holds.
type Tag int

const (
	TagAbsent Tag = iota
	TagString
	TagInt
	TagFloat
)

func (t Tag) String() string {
	switch t {
	case TagString:
		return "string"
	case TagInt:
		return "int32"
	case TagFloat:
		return "float32"
	default:
		return "absent"
	}
}

// Data is the tagged current value of a value-holding node. The zero
// value is the "absent" variant. Setters are change-detecting: see
// SetString/SetInt/SetFloat.
type Data struct {
	tag Tag
	str string
	i   int32
	f   float32
}

// Tag reports the active variant.
func (d Data) Tag() Tag {
	return d.tag
}

// SetString assigns the string variant. It returns true if the tag or
// the contents changed, false if this is a no-op re-assertion of the
// same string value.
func (d *Data) SetString(v string) bool {
	if d.tag == TagString && d.str == v {
		return false
	}
	d.tag = TagString
	d.str = v
	d.i = 0
	d.f = 0
	return true
}

// SetInt assigns the int32 variant. It returns true if the tag or the
// value changed.
func (d *Data) SetInt(v int32) bool {
	if d.tag == TagInt && d.i == v {
		return false
	}
	d.tag = TagInt
	d.i = v
	d.str = ""
	d.f = 0
	return true
}

// SetFloat assigns the float32 variant. It returns true if the tag or
// the value changed.
func (d *Data) SetFloat(v float32) bool {
	if d.tag == TagFloat && d.f == v {
		return false
	}
	d.tag = TagFloat
	d.f = v
	d.str = ""
	d.i = 0
	return true
}

// AsString coerces the current value to a string: the string variant
// returned as-is, int/float formatted as decimal, absent as "".
func (d Data) AsString() string {
	switch d.tag {
	case TagString:
		return d.str
	case TagInt:
		return strconv.FormatInt(int64(d.i), 10)
	case TagFloat:
		return strconv.FormatFloat(float64(d.f), 'g', -1, 32)
	default:
		return ""
	}
}

// AsInt coerces the current value to an int32: the int variant returned
// as-is, float truncated, string parsed as a decimal integer (0 on
// parse failure), absent as 0.
func (d Data) AsInt() int32 {
	switch d.tag {
	case TagInt:
		return d.i
	case TagFloat:
		return int32(d.f)
	case TagString:
		v, err := strconv.ParseInt(d.str, 10, 32)
		if err != nil {
			return 0
		}
		return int32(v)
	default:
		return 0
	}
}

// AsFloat coerces the current value to a float32: the float variant
// returned as-is, int widened, string parsed as a decimal number (0 on
// parse failure), absent as 0.
func (d Data) AsFloat() float32 {
	switch d.tag {
	case TagFloat:
		return d.f
	case TagInt:
		return float32(d.i)
	case TagString:
		v, err := strconv.ParseFloat(d.str, 32)
		if err != nil {
			return 0
		}
		return float32(v)
	default:
		return 0
	}
}
