// Package viz renders before/after views of a straightening run: a static
// PNG overlay via gonum/plot and a self-contained interactive HTML page via
// go-echarts. Both project the 3-D geometry onto the XY plane, which is
// where the example centerlines bend.
package viz
