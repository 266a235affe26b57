// Package imaging implements the native image pipeline around the
// external background-removal processor: scanning the input folder,
// the transparency cleanup pass applied to processed PNGs, optional
// downscaling, and run summaries.
//
// Segmentation model inference is NOT done here; it stays in the
// external processing program. This package only covers the
// deterministic work before and after it.
package imaging
