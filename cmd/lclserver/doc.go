// Command lclserver exposes the search engine's host façade over HTTP:
// POST /problems builds a Problem from a move/eval spec, POST /searches
// attaches a driver and runs it, and POST /searches/{id}/reset resets a
// previously built problem.
package main
