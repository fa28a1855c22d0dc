package reactive

// Reducer is a Signal whose only write path is dispatching a message
// through reduce. It returns the read-only view of the state and a
// dispatch function; there is no way to bypass reduce and write the state
// directly, which is the whole point of reaching for Reducer instead of a
// plain Signal.
func Reducer[U any, Msg any](s *Scope, initial U, reduce func(state U, msg Msg) U) (ReadSignal[U], func(Msg)) {
	s.assertLive()
	sig := CreateSignal(s, initial)

	dispatch := func(msg Msg) {
		current := sig.GetUntracked()
		sig.Set(reduce(current, msg))
	}

	return sig.AsReadSignal(), dispatch
}
