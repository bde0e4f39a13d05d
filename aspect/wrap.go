package aspect

// WrapBefore calls hook and then op. A failing hook prevents op from running.
func WrapBefore[T any](identity string, op Operation[T], hook Hook) (T, error) {
	if hook != nil {
		if err := hook(identity); err != nil {
			var zero T
			return zero, hookFailure(identity, KindBefore, err)
		}
	}
	return op()
}

// WrapAfter calls op and then hook, also when op fails or panics. The
// failure of op always takes precedence over the failure of hook.
func WrapAfter[T any](identity string, op Operation[T], hook Hook) (result T, err error) {
	if hook == nil {
		return op()
	}
	returned := false
	defer func() {
		hookErr := hook(identity)
		if returned && err == nil && hookErr != nil {
			var zero T
			result, err = zero, hookFailure(identity, KindAfter, hookErr)
		}
	}()
	result, err = op()
	returned = true
	return result, err
}

// WrapAround times a single call of op and reports it to sink, whatever the
// outcome of op.
func WrapAround[T any](identity string, op Operation[T], sink TimingSink) (result T, err error) {
	if sink == nil {
		return op()
	}
	inv := Invocation{Identity: identity}
	watch := NewStopWatch()
	returned := false
	defer func() {
		watch.Stop()
		inv.Start, inv.Elapsed = watch.StartTime(), watch.Elapsed()
		sinkErr := sink(inv.Identity, inv.Elapsed)
		if returned && err == nil && sinkErr != nil {
			var zero T
			result, err = zero, hookFailure(identity, KindAround, sinkErr)
		}
	}()
	watch.Start()
	result, err = op()
	returned = true
	return result, err
}

// Wrap applies a single advice of any kind.
func Wrap[T any](identity string, op Operation[T], advice Advice) (T, error) {
	switch advice.Kind {
	case KindBefore:
		return WrapBefore(identity, op, advice.Hook)
	case KindAfter:
		return WrapAfter(identity, op, advice.Hook)
	case KindAround:
		return WrapAround(identity, op, advice.Sink)
	default:
		return op()
	}
}
