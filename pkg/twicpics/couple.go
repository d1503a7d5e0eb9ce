package twicpics

// couple encodes a pair of optional values (width/height or x/y) as one
// token: "AxB", "A" when only the first is set, "-xB" when only the second
// is set. Both absent yields an absent token.
func couple(first, second value) value {
	switch {
	case first.absent() && second.absent():
		return value{}
	case first.absent():
		return present("-x" + second.text)
	case second.absent():
		return first
	}
	return present(first.text + "x" + second.text)
}
