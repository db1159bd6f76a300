package model

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindNull is the JSON literal null.
	KindNull Kind = iota
	// KindBool is true or false.
	KindBool
	// KindNumber is a JSON number kept as its literal text.
	KindNumber
	// KindString is a JSON string holding its unescaped content.
	KindString
	// KindArray is an ordered list of values.
	KindArray
	// KindObject is a set of uniquely named members.
	KindObject
)

var kindNames = map[Kind]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "invalid"
}

// Value is a parsed JSON document node.
//
// Only the fields relevant to Kind are populated: Bool for KindBool, Text for
// KindNumber (the literal as written) and KindString (the unescaped content),
// Items for KindArray and Members for KindObject.
type Value struct {
	Kind    Kind
	Bool    bool
	Text    string
	Items   []Value
	Members []Member
}

// Member is a single name/value pair of an object.
type Member struct {
	Name  string
	Value Value
}

// Null returns the null value.
func Null() Value {
	return Value{Kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// Number returns a number value holding literal exactly as given.
func Number(literal string) Value {
	return Value{Kind: KindNumber, Text: literal}
}

// String returns a string value.
func String(s string) Value {
	return Value{Kind: KindString, Text: s}
}

// Array returns an array value with the given items.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}

	return Value{Kind: KindArray, Items: items}
}

// Object returns an object value with the given members.
func Object(members ...Member) Value {
	if members == nil {
		members = []Member{}
	}

	return Value{Kind: KindObject, Members: members}
}

// Lookup returns the value of the member called name.
func (v Value) Lookup(name string) (Value, bool) {
	for _, member := range v.Members {
		if member.Name == name {
			return member.Value, true
		}
	}

	return Value{}, false
}

// Equal reports whether v and other hold the same data. Member order inside
// objects is not significant; item order inside arrays is.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}

	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool == other.Bool
	case KindNumber, KindString:
		return v.Text == other.Text
	case KindArray:
		if len(v.Items) != len(other.Items) {
			return false
		}

		for i := range v.Items {
			if !v.Items[i].Equal(other.Items[i]) {
				return false
			}
		}

		return true
	case KindObject:
		if len(v.Members) != len(other.Members) {
			return false
		}

		for _, member := range v.Members {
			theirs, ok := other.Lookup(member.Name)
			if !ok || !member.Value.Equal(theirs) {
				return false
			}
		}

		return true
	}

	return false
}
