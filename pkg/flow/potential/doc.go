// Package potential provides Potential[T], an optional value.
//
// A Potential either holds a value or is empty. Unlike flow.Result there is
// no failure to carry, which makes it the right return type for lookups that
// may legitimately find nothing:
//
//	p := potential.From(cache[key])
//	name := potential.Match(p,
//		func() string { return "anonymous" },
//		func(u *User) string { return u.Name })
//
// Sequence and Traverse collapse slices and stop at the first empty element.
package potential
