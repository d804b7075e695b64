package scan

// canRemove is a no-op on Windows, where deletability depends on ACLs
// and open handles that a cheap probe cannot see. Dry runs assume the
// deletion would succeed.
func canRemove(path string) bool {
	return true
}
