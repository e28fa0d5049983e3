// Package filter provides the raster filters used by the relief pipeline.
//
// It contains:
//   - Gaussian blur (separable, O(n) per radius) for RGBA8 buffers and
//     float32 scalar fields
//   - Luminance-with-alpha extraction
//   - Sobel gradients over scalar fields
//   - Stencil compositing of a flat colour through a soft mask at an offset
//
// Buffers are plain slices: RGBA8 data is row-major with 4 bytes per pixel
// (index (y*w+x)*4+c); scalar fields hold one float32 per pixel (index y*w+x).
// Every filter takes a parallel.ForFunc that decides how rows are split;
// pass parallel.Serial for single-threaded use.
package filter
