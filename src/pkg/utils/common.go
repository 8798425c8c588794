package utils

// Must unwraps a (value, error) pair, panicking on error. Reserved for
// process bootstrap paths where a failure is unrecoverable anyway, such as
// logger or configuration construction.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
