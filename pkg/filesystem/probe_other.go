//go:build !unix

package filesystem

// accessWritable has no access(2) here, so it creates and removes a file
func accessWritable(dir string) (bool, error) {
	return tempFileWritable(dir)
}
