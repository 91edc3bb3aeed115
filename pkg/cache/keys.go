package cache

// cache key for the current listings snapshot. There is exactly one.
func SnapshotKey() string {
	return "listings:snapshot"
}
