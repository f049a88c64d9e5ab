package zenum

// A Method is behavior shared by every constant of an enum type.  It is
// invoked with the receiving constant so it can read that constant's
// attributes.
type Method func(recv *Constant, args ...interface{}) (interface{}, error)

func asMethod(v interface{}) (Method, bool) {
	switch m := v.(type) {
	case Method:
		return m, m != nil
	case func(*Constant, ...interface{}) (interface{}, error):
		return m, m != nil
	}
	return nil, false
}

// IsMethod reports whether v can be called as a Method, either because it
// is one or because it is a non-nil func of the same signature.
func IsMethod(v interface{}) bool {
	_, ok := asMethod(v)
	return ok
}
