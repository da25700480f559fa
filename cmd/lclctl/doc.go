// Command lclctl is a small CLI around the search engine: "run" executes a
// single configured search and streams its trace as JSON, and "bench" runs
// one configured search (a single problem file and algorithm) once per seed
// and summarizes the best scores and elapsed times.
package main
