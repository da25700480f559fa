// Package termination provides the stopping criteria a driver consults once
// per iteration. Every TerminationFunction shares one lifecycle: Init resets
// any internal counters before a run starts, KeepRunning is polled to decide
// whether another iteration should execute, CheckVariable and
// CheckNewVariable feed criteria that depend on the annealing temperature or
// the objective trace respectively, and IterationDone advances counters once
// the iteration has completed. And and Or compose child criteria and
// propagate SetGoal, Init, IterationDone, and CheckNewVariable to all of
// them; CheckVariable is not propagated.
package termination
