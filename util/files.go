package util

import (
	"os"
	"path"
)

// LocateFile searches for filename in the given directories, trying the
// bare name first. Returns the first location that exists.
func LocateFile(filename string, directories []string) (string, bool) {
	if Exists(filename) {
		return filename, true
	}
	for _, dir := range directories {
		candidate := path.Join(dir, filename)
		if Exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func Exists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}
