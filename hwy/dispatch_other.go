//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures run the portable kernels at the 16-byte width.
	setScalarMode()
}
