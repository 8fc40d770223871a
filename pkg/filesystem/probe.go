package filesystem

import "os"

// tempFileWritable creates and removes a scratch file inside dir. Permission
// errors mean not writable; anything else is returned.
func tempFileWritable(dir string) (bool, error) {
	f, err := os.CreateTemp(dir, ".foldergen-probe-*")
	if err != nil {
		if os.IsPermission(err) {
			return false, nil
		}
		return false, err
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true, nil
}
