package main

const (
	// defaultSteps samples one second of curve at a typical frame rate.
	defaultSteps = 60

	minSteps = 1
)
