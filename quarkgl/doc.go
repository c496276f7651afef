// Package quarkgl is a small software 3D engine used to draw the orrery.
//
// It renders triangle meshes, line loops and point clouds into a caller-provided
// Target with a depth buffer, flat shading and per-object opacity. Objects are
// positioned through Node hierarchies; the camera can be unprojected into a Ray
// for picking.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → Clipping → Rasterization → Frame output.
//
// The renderer avoids allocations in the render hot path once its depth buffer
// has been sized.
package quarkgl
