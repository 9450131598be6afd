package mal

// librarySource holds the handful of forms defined in terms of the
// built-in namespace itself rather than implemented as Go primitives.
var librarySource = []string{
	`(def! not (fn* (a) (if a false true)))`,
	`(def! load-file (fn* (f) (eval (read-string (str "(do " (slurp f) "\nnil)")))))`,
	`(defmacro! cond (fn* (& xs) (if (> (count xs) 0) (list 'if (first xs) (if (> (count xs) 1) (nth xs 1) (throw "odd number of forms to cond")) (cons 'cond (rest (rest xs)))))))`,
}

// loadLibrary evaluates each library form against env, in order.
func loadLibrary(env *Env) error {
	for _, src := range librarySource {
		form, err := ReadStr(src)
		if err != nil {
			return err
		}
		if _, err := Eval(form, env); err != nil {
			return err
		}
	}
	return nil
}
