package harness

// failSignal and passSignal are the sentinel values panicked by Fail, Pass,
// and the assertion primitives. The engine's per-test recover block converts
// them into the outcome stored on the Record; they never escape Run.
type failSignal struct{}

type passSignal struct{}

func raiseFailed() {
	panic(failSignal{})
}

func raisePassed() {
	panic(passSignal{})
}
