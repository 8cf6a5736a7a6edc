package pin

const commitSHALength = 40

// IsCommitPin reports whether version is a full-length lowercase hex commit
// SHA. Uppercase hex, short SHAs, tags and branches are rejected.
func IsCommitPin(version string) bool {
	if len(version) != commitSHALength {
		return false
	}
	for i := 0; i < len(version); i++ {
		c := version[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
