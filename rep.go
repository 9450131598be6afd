package mal

// Rep reads one form from input, evaluates it against env, and returns
// its printed (readable) form. It is the single call both the REPL and
// a file run funnel through, so a file is evaluated exactly the way a
// REPL line would be.
func Rep(input string, env *Env) (string, error) {
	form, err := ReadStr(input)
	if err != nil {
		return "", err
	}
	result, err := Eval(form, env)
	if err != nil {
		return "", err
	}
	return PrStr(result, true), nil
}

// IsReadNothing reports whether err is the sentinel ReadStr returns
// for input with no form in it, so a caller can treat it as a silent
// no-op instead of printing an error. Exported so cmd/mal can
// special-case it without reaching into unexported reader internals.
func IsReadNothing(err error) bool {
	return isReadNothing(err)
}
