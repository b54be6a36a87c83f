package result

// Match calls onSuccess when r succeeded and onFailure otherwise, returning
// whatever the chosen continuation returns. Exactly one continuation runs.
func Match[O any](r Result, onSuccess func() O, onFailure func(Result) O) O {
	if r.IsSuccess() {
		return onSuccess()
	}
	return onFailure(r)
}

// MatchOf is Match for results carrying a value.
func MatchOf[T, O any](r Of[T], onSuccess func(T) O, onFailure func(Of[T]) O) O {
	if r.IsSuccess() {
		return onSuccess(r.value)
	}
	return onFailure(r)
}
