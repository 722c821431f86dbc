// Package must turns (value, error) returns into panics, for
// places like command line tools where an error can only be fatal.
package must

// Must2 returns p1, or panics with err if it is not nil.
//
//	n := must.Must2(strconv.Atoi(s))
func Must2[T1 any](p1 T1, err error) T1 {
	if err != nil {
		panic(err)
	}
	return p1
}
