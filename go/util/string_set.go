package util

// StringSet is a set of strings, represented by the keys of a map.
type StringSet map[string]bool

// NewStringSet returns the given list(s) of strings as a StringSet.
func NewStringSet(lists ...[]string) StringSet {
	s := StringSet{}
	for _, list := range lists {
		for _, entry := range list {
			s[entry] = true
		}
	}
	return s
}

// Keys returns the keys of a StringSet.
func (s StringSet) Keys() []string {
	if s == nil {
		return []string{}
	}
	ret := make([]string, 0, len(s))
	for v := range s {
		ret = append(ret, v)
	}
	return ret
}

// Copy returns a copy of the given StringSet such that reflect.DeepEqual
// returns true for the given set and its copy. In particular, a nil set is
// copied as nil.
func (s StringSet) Copy() StringSet {
	if s == nil {
		return nil
	}
	m := make(StringSet, len(s))
	for k, v := range s {
		m[k] = v
	}
	return m
}

// Intersect returns a new StringSet containing all elements that are members
// of both sets.
func (s StringSet) Intersect(other StringSet) StringSet {
	resultSet := make(StringSet, len(s))
	for val := range s {
		if other[val] {
			resultSet[val] = true
		}
	}
	return resultSet
}

// Complement returns a new StringSet containing all elements of this set that
// are not members of the other set.
func (s StringSet) Complement(other StringSet) StringSet {
	resultSet := make(StringSet, len(s))
	for val := range s {
		if !other[val] {
			resultSet[val] = true
		}
	}
	return resultSet
}

// Union returns a new StringSet containing all elements of both sets.
func (s StringSet) Union(other StringSet) StringSet {
	resultSet := make(StringSet, len(s)+len(other))
	for val := range s {
		resultSet[val] = true
	}
	for val := range other {
		resultSet[val] = true
	}
	return resultSet
}

// Equals returns true if the two sets contain exactly the same elements.
func (s StringSet) Equals(other StringSet) bool {
	if len(s) != len(other) {
		return false
	}
	for val := range s {
		if !other[val] {
			return false
		}
	}
	return true
}
