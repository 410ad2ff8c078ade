package validate

import "os"

// Exists reports whether a regular file is present at path. Missing
// paths, directories, and stat failures all count as "not present";
// absence is a boolean, never an error.
func Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
