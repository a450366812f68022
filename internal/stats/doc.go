// Package stats implements the reduction and routine algorithms:
// generic folds and prefix scans, range statistics (sum, mean,
// variance, median, quantile), and argmax/argmin, all parametrized
// over element sequences so they operate uniformly on any expression
// through its iterators.
//
// The public facade for this package is github.com/nd-ml/nd/stats.
package stats
