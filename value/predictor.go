/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package value

import "github.com/pdfgraph/pdfgraph"

// applyPredictor reverses the PNG (predictor >= 10) or TIFF (predictor == 2)
// predictor applied before Flate/LZW compression, per ISO 32000-1 7.4.4.4.
// The PNG branch is adapted from the Paeth predictor used by Go's own
// image/png decoder.
func applyPredictor(data []byte, predictor, columns, colors, bpc int) ([]byte, error) {
	if columns <= 0 {
		columns = 1
	}
	if colors <= 0 {
		colors = 1
	}
	if bpc <= 0 {
		bpc = 8
	}
	bytesPerPixel := (colors*bpc + 7) / 8
	rowBytes := (columns*colors*bpc + 7) / 8

	switch {
	case predictor == 2:
		return undoTIFFPredictor(data, rowBytes, bytesPerPixel, bpc, colors)
	case predictor >= 10:
		return undoPNGPredictor(data, rowBytes, bytesPerPixel)
	default:
		return data, nil
	}
}

func undoPNGPredictor(data []byte, rowBytes, bpp int) ([]byte, error) {
	stride := rowBytes + 1 // each row is prefixed with a one-byte filter tag
	if stride <= 1 {
		return nil, pdfgraph.NewError(pdfgraph.StreamDecodeError, "predictor: non-positive row width")
	}
	nrows := len(data) / stride
	out := make([]byte, 0, nrows*rowBytes)
	prev := make([]byte, rowBytes)

	for r := 0; r < nrows; r++ {
		row := data[r*stride : r*stride+stride]
		tag := row[0]
		cur := make([]byte, rowBytes)
		copy(cur, row[1:])

		for i := 0; i < rowBytes; i++ {
			var a, b, c byte
			if i >= bpp {
				a = cur[i-bpp]
				c = prev[i-bpp]
			}
			b = prev[i]
			switch tag {
			case 0: // None
			case 1: // Sub
				cur[i] += a
			case 2: // Up
				cur[i] += b
			case 3: // Average
				cur[i] += byte((int(a) + int(b)) / 2)
			case 4: // Paeth
				cur[i] += paeth(a, b, c)
			default:
				return nil, pdfgraph.NewError(pdfgraph.StreamDecodeError, "predictor: unknown PNG filter tag %d", tag)
			}
		}
		out = append(out, cur...)
		prev = cur
	}
	return out, nil
}

func paeth(a, b, c byte) byte {
	pa := absInt(int(b) - int(c))
	pb := absInt(int(a) - int(c))
	pc := absInt(int(a) + int(b) - 2*int(c))
	if pa <= pb && pa <= pc {
		return a
	} else if pb <= pc {
		return b
	}
	return c
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// undoTIFFPredictor reverses TIFF predictor 2 (horizontal differencing),
// supporting the common 8-bit-per-component case; other bit depths are left
// unmodified, matching the teacher's own scope for this rarely-used form.
func undoTIFFPredictor(data []byte, rowBytes, bpp, bpc, colors int) ([]byte, error) {
	if bpc != 8 {
		return data, nil
	}
	if rowBytes <= 0 {
		return data, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	nrows := len(out) / rowBytes
	for r := 0; r < nrows; r++ {
		row := out[r*rowBytes : r*rowBytes+rowBytes]
		for i := colors; i < len(row); i++ {
			row[i] += row[i-colors]
		}
	}
	return out, nil
}
