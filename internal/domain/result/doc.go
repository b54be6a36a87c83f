// Package result provides the outcome type used by every command, query and
// domain operation: a Result is either a success or a failure carrying a
// structured Error, and Of[T] additionally carries a value on success.
//
// Recoverable domain errors travel as data:
//
//	func (p *Project) Rename(name string) result.Result {
//	    if name == p.name {
//	        return result.Failure(ErrNameUnchanged)
//	    }
//	    ...
//	    return result.Success()
//	}
//
// Programming errors panic instead: constructing a Result whose success flag
// disagrees with its error, or reading the value of a failed Of[T].
//
// Response is a sealed constraint satisfied only by Result and Of[T]. Generic
// pipeline code uses it to build the failure variant of a handler's response
// shape without inspecting types at runtime:
//
//	func reject[R result.Response[R]](err result.Error) R {
//	    var zero R
//	    return zero.AsFailure(err)
//	}
package result
