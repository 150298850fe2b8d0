package swatches

const (
	tileGap     = int32(8)
	labelInset  = int32(6)
	borderWidth = 3

	markerHex      = "#ffffff"
	popoverBgHex   = "#1e293b"
	popoverFgHex   = "#e2e8f0"
	popoverPad     = int32(10)
	popoverLineGap = int32(4)
)
