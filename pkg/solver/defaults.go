package solver

// RegisterDefaults registers all three built-in backends — Assignment,
// RandomizedBacktracking, RejectionSampling — under the instantiation
// K,V. Safe to call once per (K,V) pair a caller actually uses; a second
// call with the same K,V panics via Register's duplicate-registration
// guard, the same way teacher's synthesis package treats re-registration
// as a programming error.
func RegisterDefaults[K comparable, V comparable]() {
	Register[K, V](NameAssignment, NewAssignmentBackend[K, V]())
	Register[K, V](NameRandomizedBacktracking, NewRandomizedBacktrackingBackend[K, V]())
	Register[K, V](NameRejectionSampling, NewRejectionSamplingBackend[K, V]())
}
