// Package relief bakes a pseudo-3D embossed look for a flat decal into a
// raster image.
//
// # Overview
//
// Given a base image (for example a product photo) and a mask of the same
// size whose alpha marks the decal, ApplyRelief shades the base in place so
// the decal looks raised: a bevel along the rim, a broad cylindrical
// curvature, directional lighting with a narrow specular crest, ambient
// occlusion and an offset highlight and shadow lip around the outline.
//
// BuildNormalMap is a separate, simpler pipeline that turns the luminance of
// an image into a tangent-space normal map for 3D renderers.
//
// # Quick Start
//
//	base := relief.FromImage(photo)
//	mask := relief.FromImage(logo)
//
//	cfg := relief.DefaultConfig()
//	cfg.BevelPx = 24
//	if err := relief.ApplyRelief(base, mask, cfg); err != nil {
//		return err
//	}
//	_ = base.SavePNG("out.png")
//
// # Pipeline
//
// Each stage finishes before the next one starts:
//
//  1. The mask is blurred and reduced to a luminance-with-alpha field.
//  2. An exact Euclidean distance transform gives every decal pixel its
//     distance to the outline.
//  3. The distance becomes a bevel height, steep at the rim.
//  4. Normals blend the bevel gradient with a cylinder.
//  5. Diffuse, specular and ambient occlusion terms shade the base.
//  6. A dilated outline ring is composited twice: white towards the light,
//     black away from it.
//
// A mask without visible pixels leaves the base byte-for-byte unchanged.
//
// # Parallelism
//
// ApplyRelief is serial. A Renderer created with WithWorkers splits every
// stage into disjoint row bands on a worker pool for large images, and
// WithMaskCache reuses the mask stages when the same decal is applied to
// many bases. Results are identical to the serial path.
//
// # Logging
//
// relief is silent by default. See SetLogger.
package relief
