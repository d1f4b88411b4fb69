//go:build !unix

package fileutils

func isCrossDevice(err error) bool {
	return false
}
