// Package sdf computes exact Euclidean distance fields over pixel grids.
//
// The transform is the separable lower-envelope algorithm of Felzenszwalb
// and Huttenlocher ("Distance Transforms of Sampled Functions", 2012): one
// 1D pass over every row and one over every column, O(w*h) overall. Distances
// are measured between pixel centres.
//
// Two views are built on it:
//   - Interior: distance from each shape pixel to the nearest non-shape pixel,
//     with everything beyond the image border counting as non-shape.
//   - Dilate: soft morphological dilation of a shape by a radius.
package sdf
