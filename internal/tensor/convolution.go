package tensor

import "fmt"

// CrossCorrelation2D slides kernel over input without padding ("valid" mode).
//
// For input (H, W) and kernel (kH, kW) the result is (H-kH+1, W-kW+1) with
//
//	out[i][j] = Σ kernel[p][q] * input[i+p][j+q]
//
// Returns ErrIncompatibleShapes if either operand is not rank 2 or the
// kernel is larger than the input along an axis.
func CrossCorrelation2D[T DType](input, kernel *Tensor[T]) (*Tensor[T], error) {
	if input.Released() || kernel.Released() {
		return nil, ErrReleased
	}
	if input.Rank() != 2 || kernel.Rank() != 2 {
		return nil, fmt.Errorf("%w: cross-correlation of %v with %v", ErrIncompatibleShapes, input.shape.bounds, kernel.shape.bounds)
	}
	inRows, inCols := input.shape.bounds[0], input.shape.bounds[1]
	kRows, kCols := kernel.shape.bounds[0], kernel.shape.bounds[1]
	if inRows < kRows || inCols < kCols {
		return nil, fmt.Errorf("%w: kernel %v larger than input %v", ErrIncompatibleShapes, kernel.shape.bounds, input.shape.bounds)
	}

	rows, cols := inRows-kRows+1, inCols-kCols+1
	src, ker := input.view(), kernel.view()
	data := make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var sum T
			for p := 0; p < kRows; p++ {
				for q := 0; q < kCols; q++ {
					sum += ker[p*kCols+q] * src[(i+p)*inCols+j+q]
				}
			}
			data[i*cols+j] = sum
		}
	}
	return fromData(data, NewShape(rows, cols)), nil
}

// PadExpand2D surrounds input with kRows-1 rows and kCols-1 columns of fill
// on every side, the padding a full convolution with a (kRows, kCols) kernel
// needs.
//
// Returns ErrIncorrectShape for a non rank-2 input or a zero kernel size.
func PadExpand2D[T DType](input *Tensor[T], kRows, kCols int, fill T) (*Tensor[T], error) {
	if input.Released() {
		return nil, ErrReleased
	}
	if input.Rank() != 2 || kRows <= 0 || kCols <= 0 {
		return nil, fmt.Errorf("%w: padding %v for kernel %dx%d", ErrIncorrectShape, input.shape.bounds, kRows, kCols)
	}
	inRows, inCols := input.shape.bounds[0], input.shape.bounds[1]
	padR, padC := kRows-1, kCols-1
	src := input.view()
	return FromFunc([]int{inRows + 2*padR, inCols + 2*padC}, func(idx []int) T {
		i, j := idx[0]-padR, idx[1]-padC
		if i < 0 || i >= inRows || j < 0 || j >= inCols {
			return fill
		}
		return src[i*inCols+j]
	}), nil
}

// FullConvolution2D pads input with zeros and cross-correlates it with
// kernel, producing a (H+kH-1, W+kW-1) result.
func FullConvolution2D[T DType](input, kernel *Tensor[T]) (*Tensor[T], error) {
	if kernel.Released() {
		return nil, ErrReleased
	}
	if kernel.Rank() != 2 {
		return nil, fmt.Errorf("%w: kernel %v", ErrIncompatibleShapes, kernel.shape.bounds)
	}
	padded, err := PadExpand2D(input, kernel.shape.bounds[0], kernel.shape.bounds[1], 0)
	if err != nil {
		return nil, err
	}
	return CrossCorrelation2D(padded, kernel)
}
