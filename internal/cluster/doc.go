// Package cluster ranks objects with the taxonomic method and groups them
// with agglomerative complete-linkage clustering.
//
// The taxonomic score of an object is its weighted squared distance, in
// standardised units, from the ideal object that takes the best (largest)
// value of every feature. Lower scores are better.
package cluster
