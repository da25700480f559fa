// Package cooling provides the two schedules Simulated Annealing consults
// every temperature step: a CoolingFunction that shrinks the temperature,
// and an IterationsTemperature that decides how many iterations to spend
// at each temperature before cooling again.
package cooling
