package matchfile_test

import "os"

// writeGarbage drops bytes that are not a zip container at the given path,
// standing in for a corrupted workbook.
func writeGarbage(path string) error {
	return os.WriteFile(path, []byte("this is not a spreadsheet"), 0o644)
}
