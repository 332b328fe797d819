// SPDX-License-Identifier: MIT

package experiment

// Trials returns a fresh copy of the recorded trial results, ACO first, then
// GA, each ordered by requested orders.
func Trials() []Observation {
	return []Observation{
		{Algorithm: "ACO", Orders: 50, Delivered: 50, OnTimePct: 100, Seconds: 43.774, Fitness: 26351},
		{Algorithm: "ACO", Orders: 50, Delivered: 50, OnTimePct: 100, Seconds: 43.006, Fitness: 26351},
		{Algorithm: "ACO", Orders: 50, Delivered: 50, OnTimePct: 100, Seconds: 41.858, Fitness: 26351},
		{Algorithm: "ACO", Orders: 50, Delivered: 50, OnTimePct: 100, Seconds: 42.637, Fitness: 26351},
		{Algorithm: "ACO", Orders: 50, Delivered: 50, OnTimePct: 100, Seconds: 43.497, Fitness: 26351},
		{Algorithm: "ACO", Orders: 100, Delivered: 100, OnTimePct: 100, Seconds: 90.071, Fitness: 52140},
		{Algorithm: "ACO", Orders: 100, Delivered: 100, OnTimePct: 100, Seconds: 90.759, Fitness: 52140},
		{Algorithm: "ACO", Orders: 100, Delivered: 100, OnTimePct: 100, Seconds: 91.8, Fitness: 52140},
		{Algorithm: "ACO", Orders: 100, Delivered: 100, OnTimePct: 100, Seconds: 90.861, Fitness: 52140},
		{Algorithm: "ACO", Orders: 100, Delivered: 100, OnTimePct: 100, Seconds: 91.507, Fitness: 52140},
		{Algorithm: "ACO", Orders: 150, Delivered: 133, OnTimePct: 89.3, Seconds: 116.328, Fitness: 49858},
		{Algorithm: "ACO", Orders: 150, Delivered: 136, OnTimePct: 91.3, Seconds: 115.878, Fitness: 48318},
		{Algorithm: "ACO", Orders: 150, Delivered: 135, OnTimePct: 90, Seconds: 121.776, Fitness: 48042},
		{Algorithm: "ACO", Orders: 150, Delivered: 136, OnTimePct: 90.7, Seconds: 130.293, Fitness: 49406},
		{Algorithm: "ACO", Orders: 150, Delivered: 135, OnTimePct: 90, Seconds: 130.293, Fitness: 47802},
		{Algorithm: "ACO", Orders: 200, Delivered: 155, OnTimePct: 77.5, Seconds: 147.499, Fitness: 13193},
		{Algorithm: "ACO", Orders: 200, Delivered: 159, OnTimePct: 79.5, Seconds: 164.671, Fitness: 19489},
		{Algorithm: "ACO", Orders: 200, Delivered: 166, OnTimePct: 83, Seconds: 164.393, Fitness: 32717},
		{Algorithm: "ACO", Orders: 200, Delivered: 167, OnTimePct: 83.5, Seconds: 165.047, Fitness: 42545},
		{Algorithm: "ACO", Orders: 200, Delivered: 168, OnTimePct: 84, Seconds: 168.555, Fitness: 40909},
		{Algorithm: "GA", Orders: 50, Delivered: 50, OnTimePct: 100, Seconds: 77, Fitness: 52.8},
		{Algorithm: "GA", Orders: 50, Delivered: 50, OnTimePct: 100, Seconds: 80, Fitness: 52.55},
		{Algorithm: "GA", Orders: 50, Delivered: 50, OnTimePct: 100, Seconds: 53, Fitness: 52.74},
		{Algorithm: "GA", Orders: 50, Delivered: 50, OnTimePct: 100, Seconds: 59, Fitness: 52.73},
		{Algorithm: "GA", Orders: 50, Delivered: 50, OnTimePct: 100, Seconds: 63, Fitness: 52.71},
		{Algorithm: "GA", Orders: 100, Delivered: 100, OnTimePct: 100, Seconds: 184, Fitness: 102.4},
		{Algorithm: "GA", Orders: 100, Delivered: 100, OnTimePct: 100, Seconds: 155, Fitness: 102.35},
		{Algorithm: "GA", Orders: 100, Delivered: 100, OnTimePct: 100, Seconds: 189, Fitness: 102.36},
		{Algorithm: "GA", Orders: 100, Delivered: 100, OnTimePct: 100, Seconds: 188, Fitness: 102.38},
		{Algorithm: "GA", Orders: 100, Delivered: 100, OnTimePct: 100, Seconds: 185, Fitness: 102.35},
		{Algorithm: "GA", Orders: 150, Delivered: 150, OnTimePct: 100, Seconds: 219, Fitness: 151.95},
		{Algorithm: "GA", Orders: 150, Delivered: 148, OnTimePct: 98.67, Seconds: 243, Fitness: 147},
		{Algorithm: "GA", Orders: 150, Delivered: 149, OnTimePct: 99.33, Seconds: 220, Fitness: 149.49},
		{Algorithm: "GA", Orders: 150, Delivered: 150, OnTimePct: 100, Seconds: 207, Fitness: 151.98},
		{Algorithm: "GA", Orders: 150, Delivered: 149, OnTimePct: 99.33, Seconds: 222, Fitness: 149.49},
		{Algorithm: "GA", Orders: 200, Delivered: 184, OnTimePct: 92, Seconds: 514, Fitness: 161.76},
		{Algorithm: "GA", Orders: 200, Delivered: 185, OnTimePct: 92.5, Seconds: 546, Fitness: 162.8},
		{Algorithm: "GA", Orders: 200, Delivered: 184, OnTimePct: 92, Seconds: 541, Fitness: 161.75},
		{Algorithm: "GA", Orders: 200, Delivered: 185, OnTimePct: 92.5, Seconds: 552, Fitness: 164.26},
		{Algorithm: "GA", Orders: 200, Delivered: 183, OnTimePct: 91.5, Seconds: 387, Fitness: 159.31},
	}
}
