// Package city holds the city records consumed by the assignment heuristic and
// the collaborators that surround the solver: file loading, display-space
// normalization, and deterministic random instances.
//
// Coordinates stored in City are the ORIGINAL, unnormalized values. Distances
// used for optimization are always computed from them; Normalize produces a
// separate display-space copy for renderers and never feeds back into a solve.
//
// Supported file formats:
//
//   - JSON: an array of {"x": <float>, "y": <float>, "name": <string, optional>}.
//   - YAML: a sequence of mappings with the same keys.
package city
